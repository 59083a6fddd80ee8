package redis

import (
	"fmt"

	rediscli "github.com/go-redis/redis/v7"

	"github.com/spotahome/redis-sentinel-config/sentinel"
)

// FailoverOptions maps a sentinel configuration to the go-redis failover
// client options. The configuration needs a master name and at least one
// sentinel node, otherwise the client would have nothing to query.
func FailoverOptions(cfg *sentinel.Config) (*rediscli.FailoverOptions, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: configuration is required", sentinel.ErrInvalidArgument)
	}

	master, ok := cfg.Master()
	if !ok || master == "" {
		return nil, fmt.Errorf("%w: a master name is required to build a failover client", sentinel.ErrInvalidArgument)
	}

	nodes := cfg.Nodes()
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: at least one sentinel node is required", sentinel.ErrInvalidArgument)
	}

	addrs := make([]string, 0, len(nodes))
	for _, node := range nodes {
		addrs = append(addrs, node.String())
	}

	options := &rediscli.FailoverOptions{
		MasterName:    master,
		SentinelAddrs: addrs,
	}
	if password, ok := cfg.SentinelPassword().Get(); ok {
		options.SentinelPassword = password
	}
	if password, ok := cfg.Password().Get(); ok {
		options.Password = password
	}

	return options, nil
}

// NewFailoverClient returns a go-redis client that resolves the master
// through the configured sentinels. go-redis doesn't dial until the first
// command runs, so building the client performs no I/O.
func NewFailoverClient(cfg *sentinel.Config) (*rediscli.Client, error) {
	options, err := FailoverOptions(cfg)
	if err != nil {
		return nil, err
	}
	return rediscli.NewFailoverClient(options), nil
}
