// Package server serves sessions over HTTP and websockets.
//
// Each route registered with Server.Route serves the page that runs the
// remote renderer at <path>/, and accepts its websocket at <path>/ws. Every
// websocket connection gets its own session.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/net/websocket"

	"src.jubako.dev/pkg/logutil"
	"src.jubako.dev/pkg/render"
	"src.jubako.dev/pkg/session"
)

var logger = logutil.GetLogger("[server] ")

// ErrEmptyPath is returned by Route for the root path.
var ErrEmptyPath = errors.New("route path must not be empty")

// Options keeps options for New.
type Options struct {
	// If not empty, a directory whose files are served under each route,
	// taking precedence over the built-in page.
	Assets string
	// Render options of every session.
	Render render.Options
}

// Server routes HTTP requests to the pages and sessions of registered
// routes, and keeps track of live sessions.
type Server struct {
	opts Options
	mux  *http.ServeMux

	// Canceled by Shutdown to end all sessions.
	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	sessions map[string]*session.Session
	wg       sync.WaitGroup

	httpServer *http.Server
}

// New creates a Server with no routes.
func New(opts Options) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		opts:     opts,
		mux:      http.NewServeMux(),
		ctx:      ctx,
		cancel:   cancel,
		sessions: make(map[string]*session.Session),
	}
	s.httpServer = &http.Server{Handler: s.mux, ReadHeaderTimeout: 10 * time.Second}
	return s
}

// Route registers the page at <path>/ and <path>/index.html, static assets
// under <path>/, and the websocket at <path>/ws. Every websocket connection
// creates a session whose App is created by creator.
func (s *Server) Route(path string, creator session.Creator) error {
	name := strings.Trim(path, "/")
	if name == "" {
		return ErrEmptyPath
	}
	prefix := "/" + name
	s.mux.Handle(prefix+"/ws", s.wsHandler(name, creator))
	s.mux.Handle(prefix+"/", http.StripPrefix(prefix, assetHandler(s.opts.Assets)))
	logger.Info("route registered", "path", prefix+"/")
	return nil
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler { return s.mux }

func (s *Server) wsHandler(route string, creator session.Creator) http.Handler {
	return websocket.Server{
		// Browsers send an Origin header for pages on any host; the page
		// served by the route is the expected client.
		Handshake: func(*websocket.Config, *http.Request) error { return nil },
		Handler: func(conn *websocket.Conn) {
			remote := conn.Request().RemoteAddr
			ss := session.New(creator, session.Options{
				Route:  route,
				Remote: remote,
				Render: s.opts.Render,
			})
			if !s.add(ss) {
				ss.Close()
				conn.Close()
				return
			}
			defer s.remove(ss)
			if err := ss.Serve(s.ctx, &wsStream{conn: conn}); err != nil {
				logger.Error("session failed", "id", ss.ID(), "error", err)
			}
		},
	}
}

func (s *Server) add(ss *session.Session) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx.Err() != nil {
		return false
	}
	s.sessions[ss.ID()] = ss
	s.wg.Add(1)
	return true
}

func (s *Server) remove(ss *session.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, ss.ID())
	s.wg.Done()
}

// Sessions returns a summary of every live session, ordered by start time.
func (s *Server) Sessions() []session.Info {
	s.mu.Lock()
	infos := make([]session.Info, 0, len(s.sessions))
	for _, ss := range s.sessions {
		infos = append(infos, ss.Info())
	}
	s.mu.Unlock()
	sort.Slice(infos, func(i, j int) bool {
		if !infos[i].Started.Equal(infos[j].Started) {
			return infos[i].Started.Before(infos[j].Started)
		}
		return infos[i].ID < infos[j].ID
	})
	return infos
}

// Session returns the live session with the given id.
func (s *Server) Session(id string) (*session.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ss, ok := s.sessions[id]
	return ss, ok
}

// Tree returns the retained render trees of the live session with the given
// id.
func (s *Server) Tree(id string) (render.Snapshot, bool) {
	ss, ok := s.Session(id)
	if !ok {
		return render.Snapshot{}, false
	}
	return ss.Snapshot(), true
}

// Serve accepts connections on l until Shutdown is called. It returns nil
// after a Shutdown.
func (s *Server) Serve(l net.Listener) error {
	logger.Info("serving", "addr", l.Addr().String())
	err := s.httpServer.Serve(l)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops accepting connections, ends every session and waits for
// them to finish, until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	n := len(s.sessions)
	s.cancel()
	s.mu.Unlock()
	logger.Info("shutting down", "sessions", n)

	// Hijacked websocket connections are not tracked by http.Server, so
	// sessions are ended through s.ctx and waited for separately.
	err := s.httpServer.Shutdown(ctx)
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		err = errors.Join(err, fmt.Errorf("sessions still running: %w", ctx.Err()))
	}
	return err
}
