package sentinel

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spotahome/redis-sentinel-config/log"
)

// ErrInvalidArgument marks every construction failure of this package so
// callers can test for it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// Config describes a redis deployment monitored by sentinels: the logical
// master name, the set of sentinel addresses and the credentials for both
// the sentinels and the data nodes they monitor.
//
// The sentinel password and the data node password are independent fields,
// changing one never affects the other. A Config is not safe for concurrent
// mutation, callers either synchronize or stop mutating once built.
type Config struct {
	master           *string
	nodes            map[Node]struct{}
	sentinelPassword Password
	password         Password
}

// NewConfig returns a Config monitoring the given master through the given
// "host:port" sentinel addresses. The address slice can be empty but not
// nil, and every element has to parse. The master name is stored verbatim,
// an empty one included.
func NewConfig(master string, addrs []string) (*Config, error) {
	if addrs == nil {
		return nil, fmt.Errorf("%w: sentinel address collection is required", ErrInvalidArgument)
	}

	c := newEmptyConfig()
	c.SetMaster(master)
	for _, addr := range addrs {
		node, err := ParseNode(addr)
		if err != nil {
			return nil, err
		}
		c.AddNode(node)
	}

	log.Debugf("sentinel configuration created for master %q with %d nodes", master, len(c.nodes))
	return c, nil
}

// NewConfigFromPropertySource returns a Config built from the recognized
// property keys. A source with none of the keys yields an empty Config,
// which is fine; a nodes value that doesn't parse is not.
func NewConfigFromPropertySource(src PropertySource) (*Config, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: property source is required", ErrInvalidArgument)
	}

	c := newEmptyConfig()
	if master, ok := src.GetProperty(MasterProperty); ok {
		c.SetMaster(master)
	}
	if nodes, ok := src.GetProperty(NodesProperty); ok {
		for _, addr := range strings.Split(nodes, ",") {
			node, err := ParseNode(addr)
			if err != nil {
				return nil, err
			}
			c.AddNode(node)
		}
	}
	if password, ok := src.GetProperty(PasswordProperty); ok {
		c.SetSentinelPassword(NewPassword(password))
	}

	log.Debugf("sentinel configuration created from property source with %d nodes", len(c.nodes))
	return c, nil
}

func newEmptyConfig() *Config {
	return &Config{nodes: map[Node]struct{}{}}
}

// SetMaster sets the logical name of the monitored master.
func (c *Config) SetMaster(name string) {
	c.master = &name
}

// Master returns the monitored master name and whether one has been set.
func (c *Config) Master() (string, bool) {
	if c.master == nil {
		return "", false
	}
	return *c.master, true
}

// AddNode adds a sentinel node. Adding an already known address is a no-op.
func (c *Config) AddNode(n Node) {
	c.nodes[n] = struct{}{}
}

// Nodes returns the sentinel nodes ordered by host and then port. The
// returned slice is a copy, mutating it doesn't touch the Config.
func (c *Config) Nodes() []Node {
	nodes := make([]Node, 0, len(c.nodes))
	for n := range c.nodes {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].Host != nodes[j].Host {
			return nodes[i].Host < nodes[j].Host
		}
		return nodes[i].Port < nodes[j].Port
	})
	return nodes
}

// SetSentinelPassword sets the password used to talk to the sentinels.
func (c *Config) SetSentinelPassword(p Password) {
	c.sentinelPassword = p
}

// SentinelPassword returns the password used to talk to the sentinels.
func (c *Config) SentinelPassword() Password {
	return c.sentinelPassword
}

// SetPassword sets the password used to talk to the data nodes the
// sentinels monitor. It never touches the sentinel password.
func (c *Config) SetPassword(p Password) {
	c.password = p
}

// Password returns the data node password.
func (c *Config) Password() Password {
	return c.password
}
