package render

import (
	"sync"

	"src.jubako.dev/pkg/logutil"
	"src.jubako.dev/pkg/vdom"
)

var logger = logutil.GetLogger("[render] ")

// Options configures a Processor.
type Options struct {
	// Compiles extracted styles. If nil, PlainStyles is used.
	Styles    StyleCompiler
	EventDiff EventDiffPolicy
}

// Processor runs the render pipeline for one session and owns the state that
// persists across cycles: the retained forests, the event registry and the
// style registry. All methods are safe for concurrent use; each call holds
// the processor exclusively for its whole duration.
type Processor struct {
	mu       sync.Mutex
	styles   *styleRegistry
	registry *Registry
	rec      reconciler
	cycles   int
}

// NewProcessor creates a Processor with empty state.
func NewProcessor(opts Options) *Processor {
	compiler := opts.Styles
	if compiler == nil {
		compiler = PlainStyles
	}
	registry := NewRegistry()
	styles := newStyleRegistry(compiler)
	styles.onCompile = func(class string, err error) {
		if err != nil {
			logger.Warn("cannot compile style, sending it unminified", "class", class, "error", err)
		}
	}
	return &Processor{
		styles:   styles,
		registry: registry,
		rec:      reconciler{registry: registry, policy: opts.EventDiff},
	}
}

// Render runs one cycle over the tree rooted at root, whose handlers send
// messages with send, and returns the commands that bring the remote side up
// to date. The root must not be a portal.
func (p *Processor) Render(root vdom.Node, send Sender) Batch {
	tree := bind(root, send)
	if tree.kind == portalNode {
		panic("render: portal root")
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	styles := p.styles.extractStyles(tree)
	main, portals := expandPortals(tree)
	mainCmds, portalCmds := p.rec.reconcile(main, portals)
	p.cycles++
	return Batch{Main: mainCmds, Portals: portalCmds, Styles: styles}
}

// Dispatch delivers an inbound event to the handler registered for its handle
// id. It returns a non-nil error only when the handler could not deliver its
// message. Events for unknown ids are dropped.
func (p *Processor) Dispatch(e Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	found, err := p.registry.Dispatch(e.HandleID, e.Kind, e.Payload)
	if !found {
		logger.Debug("event for stale handle", "handle", e.HandleID, "kind", e.Kind)
	}
	return err
}

// Close drops all retained state and releases every registered callback. A
// later Render starts from an empty remote tree.
func (p *Processor) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rec.clear()
	p.registry.Clear()
	p.styles.reset()
}

// Stats is a summary of the state of a Processor.
type Stats struct {
	Cycles  int `json:"cycles"`
	Handles int `json:"handles"`
	Styles  int `json:"styles"`
	// Number of retained nodes in each forest.
	MainNodes   int `json:"main_nodes"`
	PortalNodes int `json:"portal_nodes"`
}

// Stats returns a summary of the current state.
func (p *Processor) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Stats{
		Cycles:      p.cycles,
		Handles:     p.registry.Len(),
		Styles:      p.styles.len(),
		MainNodes:   countNodes(p.rec.main),
		PortalNodes: countNodes(p.rec.portals),
	}
}

func countNodes(list []*renderedNode) int {
	n := len(list)
	for _, rn := range list {
		n += countNodes(rn.children)
	}
	return n
}

// TreeNode is an exported copy of one retained node.
type TreeNode struct {
	Text           string           `json:"text,omitempty"`
	Tag            string           `json:"tag,omitempty"`
	Classes        []string         `json:"classes,omitempty"`
	Props          []string         `json:"props,omitempty"`
	HandleID       HandleID         `json:"handle_id,omitempty"`
	Events         []vdom.EventKind `json:"handle_events,omitempty"`
	PreventDefault []vdom.EventKind `json:"handle_prevent_default_events,omitempty"`
	Children       []TreeNode       `json:"children,omitempty"`
}

// Snapshot is a copy of the retained forests.
type Snapshot struct {
	Main    []TreeNode `json:"main"`
	Portals []TreeNode `json:"portals"`
}

// Snapshot returns a copy of the retained forests, which describe what the
// remote side shows after applying every batch returned so far.
func (p *Processor) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Snapshot{Main: exportList(p.rec.main), Portals: exportList(p.rec.portals)}
}

func exportList(list []*renderedNode) []TreeNode {
	nodes := make([]TreeNode, len(list))
	for i, rn := range list {
		if rn.kind == textNode {
			nodes[i] = TreeNode{Text: rn.text}
			continue
		}
		nodes[i] = TreeNode{
			Tag:            rn.tag,
			Classes:        append([]string(nil), rn.classes...),
			Props:          append([]string(nil), rn.props...),
			HandleID:       rn.handle,
			Events:         append([]vdom.EventKind(nil), rn.events...),
			PreventDefault: append([]vdom.EventKind(nil), rn.preventDefault...),
			Children:       exportList(rn.children),
		}
	}
	return nodes
}
