package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sourcegraph/jsonrpc2"

	"src.jubako.dev/pkg/logutil"
	"src.jubako.dev/pkg/render"
)

var logger = logutil.GetLogger("[session] ")

// DrawRequest is the message the remote side sends when it is ready for the
// next batch.
const DrawRequest = "DRAW"

// Options keeps options for New.
type Options struct {
	// Name of the route the session was created for.
	Route string
	// Address of the remote side, for diagnostics.
	Remote string
	Render render.Options
}

// Session is one application instance with its render state.
type Session struct {
	id      string
	route   string
	remote  string
	started time.Time

	// Guards app. The update loop locks it for writing, draws for reading.
	mu  sync.RWMutex
	app App

	dirty atomic.Bool
	proc  *render.Processor
	q     *queue

	updateOnce sync.Once
	done       chan struct{}
	closeOnce  sync.Once
}

// New creates a session and its App. The first draw always renders.
func New(creator Creator, opts Options) *Session {
	s := &Session{
		id:      uuid.NewString(),
		route:   opts.Route,
		remote:  opts.Remote,
		started: time.Now(),
		proc:    render.NewProcessor(opts.Render),
		q:       newQueue(),
		done:    make(chan struct{}),
	}
	s.dirty.Store(true)
	s.app = creator.Create(&Context{id: s.id, send: s.q.push, done: s.done})
	return s
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Done returns a channel that is closed when the session ends.
func (s *Session) Done() <-chan struct{} { return s.done }

// Serve runs the session over stream until the remote side disconnects, ctx
// is canceled, or an inbound event cannot be delivered. It starts the update
// loop and closes the session and the stream before returning. A disconnect
// or cancellation is not an error.
func (s *Session) Serve(ctx context.Context, stream jsonrpc2.ObjectStream) error {
	logger.Info("session started", "id", s.id, "route", s.route, "remote", s.remote)
	s.startUpdateLoop()
	defer func() {
		stream.Close()
		s.Close()
		logger.Info("session ended", "id", s.id, "duration", time.Since(s.started))
	}()
	go func() {
		select {
		case <-ctx.Done():
			stream.Close()
		case <-s.done:
		}
	}()

	for {
		var raw json.RawMessage
		err := stream.ReadObject(&raw)
		if err != nil {
			var syntaxErr *json.SyntaxError
			if errors.As(err, &syntaxErr) {
				logger.Debug("dropping malformed message", "id", s.id, "error", err)
				continue
			}
			if ctx.Err() != nil || errors.Is(err, io.EOF) || isClosed(s.done) {
				return nil
			}
			return fmt.Errorf("read: %w", err)
		}
		if err := s.handle(raw, stream); err != nil {
			logger.Error("aborting session", "id", s.id, "error", err)
			return err
		}
	}
}

// handle answers one inbound message.
func (s *Session) handle(raw json.RawMessage, stream jsonrpc2.ObjectStream) error {
	raw = bytes.TrimSpace(raw)
	switch {
	case len(raw) > 0 && raw[0] == '"':
		var req string
		if json.Unmarshal(raw, &req) != nil || req != DrawRequest {
			logger.Debug("dropping unknown request", "id", s.id, "request", string(raw))
			return nil
		}
		b, ok := s.Draw()
		if !ok {
			return nil
		}
		if err := stream.WriteObject(b); err != nil {
			return fmt.Errorf("write: %w", err)
		}
		return nil
	case len(raw) > 0 && raw[0] == '{':
		return s.HandleEvent(raw)
	}
	logger.Debug("dropping malformed message", "id", s.id, "message", string(raw))
	return nil
}

// Draw renders the view if it is dirty and returns the batch that brings the
// remote side up to date. If the view is clean, it returns false and does
// nothing.
func (s *Session) Draw() (render.Batch, bool) {
	// Cleared before rendering, so that an update applied while rendering
	// marks the view dirty again.
	if !s.dirty.CompareAndSwap(true, false) {
		return render.Batch{}, false
	}
	s.mu.RLock()
	view := s.app.View()
	s.mu.RUnlock()
	b := s.proc.Render(view, s.q.push)
	logger.Debug("drew", "id", s.id,
		"main", len(b.Main), "portals", len(b.Portals), "styles", len(b.Styles))
	return b, true
}

// HandleEvent decodes an inbound event and dispatches it to the handler
// registered for its handle id. Malformed events and events for stale
// handles are dropped. It returns an error only when the handler cannot
// deliver its message, which means the session has ended.
func (s *Session) HandleEvent(raw json.RawMessage) error {
	var e render.Event
	if err := json.Unmarshal(raw, &e); err != nil {
		logger.Debug("dropping malformed event", "id", s.id, "error", err)
		return nil
	}
	return s.proc.Dispatch(e)
}

func (s *Session) startUpdateLoop() {
	s.updateOnce.Do(func() { go s.updateLoop() })
}

// updateLoop applies queued messages until the session ends. It is the only
// writer of the application state.
func (s *Session) updateLoop() {
	for {
		select {
		case <-s.q.notify:
		case <-s.done:
			return
		}
		// Apply everything queued so far, in order.
		for _, msg := range s.q.drain() {
			select {
			case <-s.done:
				return
			default:
			}
			s.apply(msg)
		}
	}
}

func (s *Session) apply(msg any) {
	s.mu.Lock()
	flag := s.app.Update(msg)
	s.mu.Unlock()
	if flag == ShouldRender {
		s.dirty.Store(true)
	}
}

// Close ends the session: the update loop stops, queued and later messages
// are dropped, every handler is released and, if the App is a Disconnecter,
// its Disconnected method is called. It is safe to call Close more than
// once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.q.close()
		close(s.done)
		s.proc.Close()
		if d, ok := s.app.(Disconnecter); ok {
			s.mu.Lock()
			d.Disconnected()
			s.mu.Unlock()
		}
	})
}

// Info is a summary of the state of a session.
type Info struct {
	ID      string    `json:"id"`
	Route   string    `json:"route"`
	Remote  string    `json:"remote"`
	Started time.Time `json:"started"`
	Dirty   bool      `json:"dirty"`
	Queued  int       `json:"queued"`
	render.Stats
}

// Info returns a summary of the session.
func (s *Session) Info() Info {
	return Info{
		ID:      s.id,
		Route:   s.route,
		Remote:  s.remote,
		Started: s.started,
		Dirty:   s.dirty.Load(),
		Queued:  s.q.len(),
		Stats:   s.proc.Stats(),
	}
}

// Snapshot returns the retained render trees of the session.
func (s *Session) Snapshot() render.Snapshot { return s.proc.Snapshot() }

func isClosed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}
