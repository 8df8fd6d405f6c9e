//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package server

import "syscall"

func controlFunc(bool) func(network, address string, c syscall.RawConn) error {
	return nil
}
