// Package vdom defines the declarative tree that applications build on every
// render, and the catalog of events the remote renderer can report back.
//
// A tree is a value with no identity across renders: the application returns
// a fresh one from its view function each cycle and the render package works
// out what changed. There are three kinds of nodes:
//
//   - [Text] is a text node.
//   - [Element] is a tagged element with classes, props, event handlers,
//     children and optional inline style text.
//   - [Portal] holds children that are rendered into a separate portal forest
//     instead of at the position where the portal appears.
//
// Event handlers are declared per event kind in [Handlers]. Each handler maps
// the typed payload of the event to a message, which is delivered to the
// application's update function.
package vdom

//go:generate go run src.jubako.dev/cmd/genevents -in events.yaml -out eventkind_gen.go

import "fmt"

// Msg is a message delivered to an application's update function.
type Msg = any

// Node is a node of the declarative tree. The set of implementations is
// closed: Text, Element (or *Element) and Portal (or *Portal).
type Node interface {
	isNode()
}

// Text is a text node.
type Text string

// Textf is like fmt.Sprintf, but returns a Text node.
func Textf(format string, args ...any) Text {
	return Text(fmt.Sprintf(format, args...))
}

// Element is an element node.
type Element struct {
	Tag string
	// Class names. Order is preserved on the wire.
	Class []string
	// Props are attributes in the form "key=value", or just "key" for
	// boolean attributes.
	Props    []string
	On       Handlers
	Children []Node
	// Style is inline CSS declaration text. It is replaced by a generated
	// class before reaching the wire; the empty string means no style.
	Style string
}

// Portal is a node whose children are rendered in the portal forest.
type Portal struct {
	Children []Node
}

func (Text) isNode()    {}
func (Element) isNode() {}
func (Portal) isNode()  {}

// El returns a new *Element with the given tag and children.
func El(tag string, children ...Node) *Element {
	return &Element{Tag: tag, Children: children}
}

// WithClass appends class names and returns the receiver.
func (e *Element) WithClass(names ...string) *Element {
	e.Class = append(e.Class, names...)
	return e
}

// WithProps appends props and returns the receiver.
func (e *Element) WithProps(props ...string) *Element {
	e.Props = append(e.Props, props...)
	return e
}

// WithStyle sets the inline style text and returns the receiver.
func (e *Element) WithStyle(css string) *Element {
	e.Style = css
	return e
}

// WithHandlers sets the event handlers and returns the receiver.
func (e *Element) WithHandlers(h Handlers) *Element {
	e.On = h
	return e
}

// NewPortal returns a *Portal holding the given children.
func NewPortal(children ...Node) *Portal {
	return &Portal{Children: children}
}

// Handler declares how an event whose payload has type E is turned into a
// message. The zero value is an unset handler.
type Handler[E any] struct {
	fn             func(E) Msg
	preventDefault bool
}

// Handle returns a Handler that calls fn with the event payload.
func Handle[E, M any](fn func(E) M) Handler[E] {
	return Handler[E]{fn: func(e E) Msg { return fn(e) }}
}

// HandlePreventDefault is like Handle, but the remote renderer also cancels
// the default action of the event.
func HandlePreventDefault[E, M any](fn func(E) M) Handler[E] {
	return Handler[E]{fn: func(e E) Msg { return fn(e) }, preventDefault: true}
}

// IsSet reports whether the handler has been declared.
func (h Handler[E]) IsSet() bool { return h.fn != nil }

// PreventsDefault reports whether the handler was declared with
// HandlePreventDefault.
func (h Handler[E]) PreventsDefault() bool { return h.fn != nil && h.preventDefault }

// call converts a decoded payload to a message. It returns false if the
// handler is unset or the payload has the wrong type.
func (h Handler[E]) call(payload any) (Msg, bool) {
	if h.fn == nil {
		return nil, false
	}
	e, ok := payload.(E)
	if !ok {
		return nil, false
	}
	return h.fn(e), true
}
