package render

import (
	"fmt"

	"src.jubako.dev/pkg/vdom"
)

// Sender delivers a message to the update loop of a session. It returns an
// error when the loop has terminated.
type Sender func(vdom.Msg) error

// bind converts a declarative tree into the transient tree, turning the
// handler declarations of each element into a BoundHandler that sends
// messages with send.
func bind(n vdom.Node, send Sender) *node {
	switch n := n.(type) {
	case vdom.Text:
		return &node{kind: textNode, text: string(n)}
	case *vdom.Element:
		return bindElement(n, send)
	case vdom.Element:
		return bindElement(&n, send)
	case *vdom.Portal:
		return &node{kind: portalNode, children: bindAll(n.Children, send)}
	case vdom.Portal:
		return &node{kind: portalNode, children: bindAll(n.Children, send)}
	}
	panic(fmt.Sprintf("render: unknown node type %T", n))
}

func bindAll(ns []vdom.Node, send Sender) []*node {
	children := make([]*node, 0, len(ns))
	for _, n := range ns {
		if n == nil {
			continue
		}
		children = append(children, bind(n, send))
	}
	return children
}

func bindElement(e *vdom.Element, send Sender) *node {
	return &node{
		kind:     elementNode,
		tag:      e.Tag,
		classes:  append([]string(nil), e.Class...),
		props:    append([]string(nil), e.Props...),
		style:    e.Style,
		handler:  bindHandlers(e.On, send),
		children: bindAll(e.Children, send),
	}
}

func bindHandlers(h vdom.Handlers, send Sender) *BoundHandler {
	events, preventDefault := h.Subscriptions()
	return &BoundHandler{
		Callback: func(kind vdom.EventKind, payload any) error {
			msg, ok := h.Handle(kind, payload)
			if !ok {
				return nil
			}
			return send(msg)
		},
		Events:         events,
		PreventDefault: preventDefault,
	}
}
