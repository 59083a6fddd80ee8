package utils

import (
	"flag"

	"github.com/spotahome/redis-sentinel-config/sentinel"
)

// CMDFlags are the flags used by the cmd
type CMDFlags struct {
	Master           string
	Nodes            string
	SentinelPassword string
	Password         string
	Debug            bool
}

// Init initializes and parse the flags
func (c *CMDFlags) Init() {
	// register flags
	flag.StringVar(&c.Master, "master", "", "logical name of the monitored master")
	flag.StringVar(&c.Nodes, "nodes", "", "comma separated list of sentinel host:port addresses")
	flag.StringVar(&c.SentinelPassword, "sentinel-password", "", "password used to talk to the sentinels")
	flag.StringVar(&c.Password, "password", "", "password used to talk to the data nodes")
	flag.BoolVar(&c.Debug, "debug", false, "enable debug mode")

	// Parse flags
	flag.Parse()
}

// ToPropertySource converts the flags to the property source the sentinel
// configuration is built from
func (c *CMDFlags) ToPropertySource() sentinel.MapPropertySource {
	props := sentinel.MapPropertySource{}
	if c.Master != "" {
		props[sentinel.MasterProperty] = c.Master
	}
	if c.Nodes != "" {
		props[sentinel.NodesProperty] = c.Nodes
	}
	if c.SentinelPassword != "" {
		props[sentinel.PasswordProperty] = c.SentinelPassword
	}
	return props
}
