package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spotahome/redis-sentinel-config/sentinel"
)

func TestCMDFlags_ToPropertySource(t *testing.T) {
	tests := []struct {
		name          string
		flags         CMDFlags
		expectedProps sentinel.MapPropertySource
	}{
		{
			name:          "no flags set",
			flags:         CMDFlags{},
			expectedProps: sentinel.MapPropertySource{},
		},
		{
			name: "all flags set",
			flags: CMDFlags{
				Master:           "mymaster",
				Nodes:            "localhost:26379,localhost:26380",
				SentinelPassword: "secret",
			},
			expectedProps: sentinel.MapPropertySource{
				sentinel.MasterProperty:   "mymaster",
				sentinel.NodesProperty:    "localhost:26379,localhost:26380",
				sentinel.PasswordProperty: "secret",
			},
		},
		{
			name: "data node password is not a property",
			flags: CMDFlags{
				Master:   "mymaster",
				Nodes:    "localhost:26379",
				Password: "data-secret",
			},
			expectedProps: sentinel.MapPropertySource{
				sentinel.MasterProperty: "mymaster",
				sentinel.NodesProperty:  "localhost:26379",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(test.expectedProps, test.flags.ToPropertySource())
		})
	}
}
