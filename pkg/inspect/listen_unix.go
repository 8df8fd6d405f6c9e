//go:build unix

package inspect

import (
	"net"
	"sync"

	"golang.org/x/sys/unix"
)

var umaskMu sync.Mutex

func listenPrivate(path string) (net.Listener, error) {
	// The umask is process-wide; hold it only while the socket is created.
	umaskMu.Lock()
	defer umaskMu.Unlock()
	old := unix.Umask(0077)
	defer unix.Umask(old)
	return net.Listen("unix", path)
}
