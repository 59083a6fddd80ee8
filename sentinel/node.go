package sentinel

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	minPort = 1
	maxPort = 65535
)

// Node is the network address of a single sentinel process. Two nodes refer
// to the same sentinel when host and port are equal.
type Node struct {
	Host string
	Port int
}

// ParseNode parses a "host:port" string into a Node. The host can't be
// empty and the port has to be a number between 1 and 65535.
func ParseNode(addr string) (Node, error) {
	parts := strings.Split(addr, ":")
	if len(parts) != 2 || parts[0] == "" {
		return Node{}, fmt.Errorf("%w: %q is not a valid host:port sentinel address", ErrInvalidArgument, addr)
	}

	port, err := strconv.Atoi(parts[1])
	if err != nil {
		return Node{}, fmt.Errorf("%w: %q has a non numeric port", ErrInvalidArgument, addr)
	}
	if port < minPort || port > maxPort {
		return Node{}, fmt.Errorf("%w: %q has a port outside 1-65535", ErrInvalidArgument, addr)
	}

	return Node{Host: parts[0], Port: port}, nil
}

// String returns the node in "host:port" form.
func (n Node) String() string {
	return fmt.Sprintf("%s:%d", n.Host, n.Port)
}
