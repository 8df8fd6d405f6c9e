package render

import (
	"fmt"

	"src.jubako.dev/pkg/vdom"
)

// EventDiffPolicy decides when a changed subscription of a surviving element
// is sent to the remote side.
type EventDiffPolicy uint8

const (
	// EventDiffBoth sends an update only when both the plain and the
	// prevent-default subscriptions changed.
	EventDiffBoth EventDiffPolicy = iota
	// EventDiffEither sends an update when either subscription changed.
	EventDiffEither
)

// ParseEventDiffPolicy parses "both" or "either". The empty string is "both".
func ParseEventDiffPolicy(s string) (EventDiffPolicy, error) {
	switch s {
	case "", "both":
		return EventDiffBoth, nil
	case "either":
		return EventDiffEither, nil
	}
	return 0, fmt.Errorf("unknown event diff policy %q", s)
}

func (p EventDiffPolicy) String() string {
	if p == EventDiffEither {
		return "either"
	}
	return "both"
}

// renderedNode mirrors what the remote side currently shows. Element nodes
// carry the handle id and the subscriptions last sent for them.
type renderedNode struct {
	kind           nodeKind
	text           string
	tag            string
	classes        []string
	props          []string
	handle         HandleID
	events         []vdom.EventKind
	preventDefault []vdom.EventKind
	children       []*renderedNode
}

// reconciler owns the retained forests and keeps the registry in step with
// them.
type reconciler struct {
	registry *Registry
	policy   EventDiffPolicy
	main     []*renderedNode
	portals  []*renderedNode
}

func (r *reconciler) reconcile(main, portals []*node) (mainCmds, portalCmds []Command) {
	mainCmds = r.diffList(&r.main, main)
	portalCmds = r.diffList(&r.portals, portals)
	return mainCmds, portalCmds
}

// diffList updates the sibling list *cur to next and returns the commands that
// do the same on the remote side, addressed by position.
func (r *reconciler) diffList(cur *[]*renderedNode, next []*node) []Command {
	var cmds []Command
	list := *cur
	common := min(len(list), len(next))
	for i := 0; i < common; i++ {
		rn, cmd := r.diffNode(i, list[i], next[i])
		list[i] = rn
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	for i := common; i < len(next); i++ {
		rn, cmd := r.insert(i, next[i])
		list = append(list, rn)
		cmds = append(cmds, cmd)
	}
	// Each removal shifts the remaining stale nodes left, so all of them
	// are removed at the first stale index.
	for i := len(next); i < len(list); i++ {
		r.release(list[i])
		cmds = append(cmds, Remove{Index: len(next)})
	}
	clear(list[len(next):])
	*cur = list[:len(next)]
	return cmds
}

func (r *reconciler) diffNode(i int, cur *renderedNode, next *node) (*renderedNode, Command) {
	switch {
	case next.kind == portalNode:
		panic("render: portal reached the reconciler")
	case cur.kind == textNode && next.kind == textNode:
		if cur.text == next.text {
			return cur, nil
		}
		cur.text = next.text
		return cur, UpdateText{Index: i, NewText: next.text}
	case cur.kind == elementNode && next.kind == elementNode && cur.tag == next.tag:
		return cur, r.update(i, cur, next)
	case next.kind == textNode:
		r.release(cur)
		return &renderedNode{kind: textNode, text: next.text}, ReplaceToText{Index: i, Text: next.text}
	case next.kind == elementNode:
		r.release(cur)
		rn, children := r.create(next)
		return rn, ReplaceToElement{
			Index:    i,
			NewTag:   rn.tag,
			Classes:  rn.classes,
			Props:    rn.props,
			Event:    rn.handleEvent(),
			Children: children,
		}
	}
	panic(fmt.Sprintf("render: cannot reconcile %v with %v", cur.kind, next.kind))
}

// update diffs an element against a retained element with the same tag. It
// returns nil when nothing observable changed. The callback is refreshed
// either way.
func (r *reconciler) update(i int, cur *renderedNode, next *node) Command {
	r.register(cur.handle, next.handler)

	classDiff := diffNames(cur.classes, next.classes)
	propsDiff := diffNames(cur.props, next.props)
	cur.classes = applyNames(cur.classes, classDiff)
	cur.props = applyNames(cur.props, propsDiff)

	var eventDiff EventDiff
	plainChanged := !sameKinds(cur.events, next.handler.Events)
	pdChanged := !sameKinds(cur.preventDefault, next.handler.PreventDefault)
	if (plainChanged && pdChanged) || (r.policy == EventDiffEither && (plainChanged || pdChanged)) {
		cur.events = next.handler.Events
		cur.preventDefault = next.handler.PreventDefault
		ev := cur.handleEvent()
		eventDiff.Update = &ev
	}

	children := r.diffList(&cur.children, next.children)
	if len(classDiff) == 0 && len(propsDiff) == 0 && eventDiff.Update == nil && len(children) == 0 {
		return nil
	}
	return UpdateElement{
		Index:     i,
		ClassDiff: classDiff,
		PropsDiff: propsDiff,
		EventDiff: eventDiff,
		Children:  children,
	}
}

func (r *reconciler) insert(i int, n *node) (*renderedNode, Command) {
	if n.kind == textNode {
		return &renderedNode{kind: textNode, text: n.text}, InsertText{Index: i, Text: n.text}
	}
	if n.kind != elementNode {
		panic("render: portal reached the reconciler")
	}
	rn, children := r.create(n)
	return rn, InsertElement{
		Index:    i,
		Tag:      rn.tag,
		Classes:  rn.classes,
		Props:    rn.props,
		Event:    rn.handleEvent(),
		Children: children,
	}
}

// create builds the retained state for a new element and its subtree,
// registering its handler under a fresh id. The returned commands insert the
// children into the new element.
func (r *reconciler) create(n *node) (*renderedNode, []Command) {
	rn := &renderedNode{
		kind:           elementNode,
		tag:            n.tag,
		classes:        n.classes,
		props:          n.props,
		handle:         newHandleID(),
		events:         n.handler.Events,
		preventDefault: n.handler.PreventDefault,
	}
	r.register(rn.handle, n.handler)
	children := r.diffList(&rn.children, n.children)
	return rn, children
}

// register keeps id in the registry only while h subscribes to something.
func (r *reconciler) register(id HandleID, h *BoundHandler) {
	if h != nil && h.Subscribed() {
		r.registry.Set(id, h.Callback)
	} else {
		r.registry.Delete(id)
	}
}

// release deregisters every handle in the subtree of rn.
func (r *reconciler) release(rn *renderedNode) {
	if rn.kind != elementNode {
		return
	}
	r.registry.Delete(rn.handle)
	for _, child := range rn.children {
		r.release(child)
	}
}

func (r *reconciler) clear() {
	for _, rn := range r.main {
		r.release(rn)
	}
	for _, rn := range r.portals {
		r.release(rn)
	}
	r.main, r.portals = nil, nil
}

func (rn *renderedNode) handleEvent() HandleEvent {
	return HandleEvent{
		HandleID:       rn.handle,
		Events:         rn.events,
		PreventDefault: rn.preventDefault,
	}
}

// diffNames returns the changes that turn the set of names in cur into the
// set in next: removals in the order of cur, then additions in the order of
// next.
func diffNames(cur, next []string) []Change {
	in := func(names []string) map[string]bool {
		m := make(map[string]bool, len(names))
		for _, name := range names {
			m[name] = true
		}
		return m
	}
	inCur, inNext := in(cur), in(next)
	var changes []Change
	for _, name := range cur {
		if !inNext[name] {
			changes = append(changes, Change{Op: ChangeRemove, Name: name})
			inNext[name] = true
		}
	}
	for _, name := range next {
		if !inCur[name] {
			changes = append(changes, Change{Op: ChangeAdd, Name: name})
			inCur[name] = true
		}
	}
	return changes
}

// applyNames applies changes to names the way the remote side does: removed
// names are dropped and added names are appended. The order of names that
// stay is kept.
func applyNames(names []string, changes []Change) []string {
	if len(changes) == 0 {
		return names
	}
	removed := make(map[string]bool)
	for _, c := range changes {
		if c.Op == ChangeRemove {
			removed[c.Name] = true
		}
	}
	out := make([]string, 0, len(names)+len(changes))
	for _, name := range names {
		if !removed[name] {
			out = append(out, name)
		}
	}
	for _, c := range changes {
		if c.Op == ChangeAdd {
			out = append(out, c.Name)
		}
	}
	return out
}

// sameKinds compares two subscription lists. Both are in catalog order, so
// comparing them as sequences compares them as sets.
func sameKinds(a, b []vdom.EventKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
