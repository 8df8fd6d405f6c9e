// Package render turns declarative trees into command batches for the remote
// renderer and routes remote events back to the handlers that produced them.
//
// Each render cycle runs four stages over a transient tree:
//
//	vdom.Node -> bind -> extractStyles -> expandPortals -> reconcile
//
// bind collapses the per-kind handler declarations of every element into one
// [BoundHandler]. extractStyles replaces inline style text with generated,
// deduplicated class names. expandPortals hoists portal children into a
// separate forest. reconcile diffs the main and portal forests against the
// trees retained from the previous cycle, updates them in place and emits
// [Command]s. [Processor] runs the stages and owns the state that persists
// across cycles.
package render

import "src.jubako.dev/pkg/vdom"

type nodeKind uint8

const (
	textNode nodeKind = iota
	elementNode
	portalNode
)

func (k nodeKind) String() string {
	switch k {
	case textNode:
		return "text"
	case elementNode:
		return "element"
	case portalNode:
		return "portal"
	}
	return "unknown"
}

// node is the transient tree shared by the pipeline stages. It is built by
// bind and consumed by reconcile within one cycle. After extractStyles, style
// is empty; after expandPortals, no node has kind portalNode.
type node struct {
	kind     nodeKind
	text     string
	tag      string
	classes  []string
	props    []string
	style    string
	handler  *BoundHandler
	children []*node
}

// Callback delivers one decoded remote event. It returns a non-nil error only
// when the message could not be delivered because the session has ended.
type Callback func(kind vdom.EventKind, payload any) error

// BoundHandler is the result of binding the handler declarations of one
// element to a message sender.
type BoundHandler struct {
	Callback Callback
	// Kinds with a plain handler, in catalog order.
	Events []vdom.EventKind
	// Kinds with a prevent-default handler, in catalog order.
	PreventDefault []vdom.EventKind
}

// Subscribed reports whether the handler subscribes to at least one kind.
func (h *BoundHandler) Subscribed() bool {
	return len(h.Events) > 0 || len(h.PreventDefault) > 0
}
