package model

import (
	"context"
	"net"
)

// SecurityLayer abstracts how the server's listener is opened (plain TCP
// or TLS).
type SecurityLayer interface {
	Listen(protocol, addr string) (net.Listener, error)
}

// Server is a network server with a managed lifecycle.
type Server interface {
	Start(securityLayer SecurityLayer) error
	Stop(ctx context.Context) error
	Address() string
}
