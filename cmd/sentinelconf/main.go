package main

import (
	"fmt"
	"os"

	"github.com/spotahome/redis-sentinel-config/cmd/utils"
	"github.com/spotahome/redis-sentinel-config/log"
	"github.com/spotahome/redis-sentinel-config/sentinel"
)

// Main is the  main runner.
type Main struct {
	flags  *utils.CMDFlags
	logger log.Logger
}

// New returns a Main object.
func New(logger log.Logger) Main {
	// Init flags.
	flgs := &utils.CMDFlags{}
	flgs.Init()

	return Main{
		logger: logger,
		flags:  flgs,
	}
}

// Run execs the program.
func (m *Main) Run() error {
	// Set correct logging.
	if m.flags.Debug {
		err := m.logger.Set("debug")
		if err != nil {
			return err
		}
		m.logger.Debugf("debug mode activated")
	}

	cfg, err := sentinel.NewConfigFromPropertySource(m.flags.ToPropertySource())
	if err != nil {
		return err
	}
	if m.flags.Password != "" {
		cfg.SetPassword(sentinel.NewPassword(m.flags.Password))
	}

	master, ok := cfg.Master()
	if !ok {
		master = "<none>"
	}
	fmt.Printf("master: %s\n", master)
	for _, node := range cfg.Nodes() {
		fmt.Printf("sentinel: %s\n", node)
	}
	fmt.Printf("sentinel password set: %t\n", cfg.SentinelPassword().IsSet())
	fmt.Printf("data node password set: %t\n", cfg.Password().IsSet())

	return nil
}

// Run app.
func main() {
	logger := log.Base()
	m := New(logger)

	if err := m.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error executing: %s", err)
		os.Exit(1)
	}
	os.Exit(0)
}
