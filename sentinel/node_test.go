package sentinel_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spotahome/redis-sentinel-config/sentinel"
)

func TestParseNode(t *testing.T) {
	tests := []struct {
		name         string
		address      string
		expectedNode sentinel.Node
		expectError  bool
	}{
		{
			name:         "host and port",
			address:      "127.0.0.1:123",
			expectedNode: sentinel.Node{Host: "127.0.0.1", Port: 123},
		},
		{
			name:         "hostname and port",
			address:      "localhost:26379",
			expectedNode: sentinel.Node{Host: "localhost", Port: 26379},
		},
		{
			name:        "missing port",
			address:     "localhost",
			expectError: true,
		},
		{
			name:        "empty string",
			address:     "",
			expectError: true,
		},
		{
			name:        "empty host",
			address:     ":6379",
			expectError: true,
		},
		{
			name:        "empty port",
			address:     "localhost:",
			expectError: true,
		},
		{
			name:        "non numeric port",
			address:     "localhost:redis",
			expectError: true,
		},
		{
			name:        "more than one colon",
			address:     "localhost:6379:6380",
			expectError: true,
		},
		{
			name:        "port zero",
			address:     "localhost:0",
			expectError: true,
		},
		{
			name:        "port too big",
			address:     "localhost:65536",
			expectError: true,
		},
		{
			name:         "highest valid port",
			address:      "localhost:65535",
			expectedNode: sentinel.Node{Host: "localhost", Port: 65535},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert := assert.New(t)

			node, err := sentinel.ParseNode(test.address)

			if test.expectError {
				assert.Error(err)
				assert.True(errors.Is(err, sentinel.ErrInvalidArgument))
			} else {
				assert.NoError(err)
				assert.Equal(test.expectedNode, node)
			}
		})
	}
}

func TestNodeString(t *testing.T) {
	assert := assert.New(t)

	node := sentinel.Node{Host: "127.0.0.1", Port: 123}
	assert.Equal("127.0.0.1:123", node.String())
}

func TestNodeEquality(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(sentinel.Node{Host: "localhost", Port: 456}, sentinel.Node{Host: "localhost", Port: 456})
	assert.NotEqual(sentinel.Node{Host: "localhost", Port: 456}, sentinel.Node{Host: "localhost", Port: 789})
	assert.NotEqual(sentinel.Node{Host: "localhost", Port: 456}, sentinel.Node{Host: "127.0.0.1", Port: 456})
}
