//go:build !unix

package inspect

import "net"

func listenPrivate(path string) (net.Listener, error) {
	return net.Listen("unix", path)
}
