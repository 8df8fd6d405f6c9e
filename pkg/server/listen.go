package server

import (
	"context"
	"net"
)

// Listen listens on the TCP address addr. If reusePort is true, the socket
// is opened with SO_REUSEPORT where the platform supports it, so that
// several processes can share the address during a restart.
func Listen(ctx context.Context, addr string, reusePort bool) (net.Listener, error) {
	lc := net.ListenConfig{Control: controlFunc(reusePort)}
	return lc.Listen(ctx, "tcp", addr)
}
