// Package session runs one application instance for one remote connection.
//
// A session has two flows. The update loop owns the receiving end of the
// message queue: it applies each message to the application and marks the
// view dirty when the application asks for it. The transport loop, run by
// Serve, answers draw requests by rendering the view if it is dirty, and
// dispatches inbound events to the handlers of the rendered tree, which
// enqueue messages for the update loop.
package session

import (
	"errors"

	"src.jubako.dev/pkg/vdom"
)

// ErrClosed is returned when sending a message to a session that has ended.
var ErrClosed = errors.New("session closed")

// DirtyFlag is returned by App.Update to tell whether the view changed.
type DirtyFlag uint8

const (
	// NoRender means the view is unchanged.
	NoRender DirtyFlag = iota
	// ShouldRender means the next draw request must render the view.
	ShouldRender
)

func (f DirtyFlag) String() string {
	if f == ShouldRender {
		return "ShouldRender"
	}
	return "NoRender"
}

// App is the state of one application instance.
//
// Update and View are never called concurrently with Update. View may be
// called concurrently with View.
type App interface {
	Update(msg vdom.Msg) DirtyFlag
	View() vdom.Node
}

// Disconnecter may be implemented by an App to be told when its session ends.
type Disconnecter interface {
	Disconnected()
}

// Creator creates the App of each new session.
type Creator interface {
	Create(ctx *Context) App
}

// CreatorFunc adapts a function to Creator.
type CreatorFunc func(ctx *Context) App

func (f CreatorFunc) Create(ctx *Context) App { return f(ctx) }

// Context connects an App to its session.
type Context struct {
	id   string
	send func(vdom.Msg) error
	done <-chan struct{}
}

// ID returns the session id.
func (c *Context) ID() string { return c.id }

// Dispatch enqueues a message for the update loop. It never blocks. It is
// safe to call from any goroutine, and returns ErrClosed once the session has
// ended.
func (c *Context) Dispatch(msg vdom.Msg) error { return c.send(msg) }

// Done returns a channel that is closed when the session ends.
func (c *Context) Done() <-chan struct{} { return c.done }
