package server

import (
	"context"
	"errors"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// DefaultShutdownTimeout is used by Run when RunOpts.ShutdownTimeout is zero.
const DefaultShutdownTimeout = 5 * time.Second

// RunOpts keeps options that can be passed to Run.
type RunOpts struct {
	// If not nil, will be closed when the server is ready to serve requests.
	Ready chan<- struct{}
	// Causes the server to shut down if closed or sent any data. If nil, Run
	// will set up its own signal channel by listening to SIGINT and SIGTERM.
	Signals <-chan os.Signal
	// How long to wait for sessions to end after a signal.
	ShutdownTimeout time.Duration
}

// Run serves on l until a signal arrives, then shuts the server down
// gracefully.
func (s *Server) Run(l net.Listener, opts RunOpts) error {
	sigCh := opts.Signals
	if sigCh == nil {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT)
		defer signal.Stop(ch)
		sigCh = ch
	}
	timeout := opts.ShutdownTimeout
	if timeout == 0 {
		timeout = DefaultShutdownTimeout
	}

	serveErrCh := make(chan error, 1)
	go func() { serveErrCh <- s.Serve(l) }()
	if opts.Ready != nil {
		close(opts.Ready)
	}

	select {
	case sig := <-sigCh:
		logger.Info("received signal", "signal", sig)
	case err := <-serveErrCh:
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	err := s.Shutdown(ctx)
	return errors.Join(err, <-serveErrCh)
}
