package render

import (
	"sort"
	"testing"

	"src.jubako.dev/pkg/vdom"
)

// remote models the tree held by the remote renderer. Tests apply command
// batches to it and compare it with the tree they expect.
type remote struct {
	Text    string
	Tag     string
	Classes []string
	Props   []string
	Handle  HandleID
	// Subscriptions as last sent.
	Events         []vdom.EventKind
	PreventDefault []vdom.EventKind
	Children       []*remote
}

type remoteForests struct {
	Main, Portals []*remote
}

func (f *remoteForests) apply(t *testing.T, b Batch) {
	t.Helper()
	applyList(t, &f.Main, b.Main)
	applyList(t, &f.Portals, b.Portals)
}

func applyList(t *testing.T, list *[]*remote, cmds []Command) {
	t.Helper()
	at := func(i int) *remote {
		if i < 0 || i >= len(*list) {
			t.Fatalf("index %d out of range [0, %d)", i, len(*list))
		}
		return (*list)[i]
	}
	insert := func(i int, r *remote) {
		if i < 0 || i > len(*list) {
			t.Fatalf("insert index %d out of range [0, %d]", i, len(*list))
		}
		*list = append(*list, nil)
		copy((*list)[i+1:], (*list)[i:])
		(*list)[i] = r
	}
	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case UpdateElement:
			r := at(c.Index)
			if r.Tag == "" {
				t.Fatalf("UpdateElement at %d addresses a text node", c.Index)
			}
			r.Classes = applyChanges(r.Classes, c.ClassDiff)
			r.Props = applyChanges(r.Props, c.PropsDiff)
			if u := c.EventDiff.Update; u != nil {
				r.Handle, r.Events, r.PreventDefault = u.HandleID, u.Events, u.PreventDefault
			}
			applyList(t, &r.Children, c.Children)
		case UpdateText:
			at(c.Index).Text = c.NewText
		case ReplaceToElement:
			at(c.Index)
			(*list)[c.Index] = newRemoteElement(t, c.NewTag, c.Classes, c.Props, c.Event, c.Children)
		case ReplaceToText:
			at(c.Index)
			(*list)[c.Index] = &remote{Text: c.Text}
		case InsertElement:
			insert(c.Index, newRemoteElement(t, c.Tag, c.Classes, c.Props, c.Event, c.Children))
		case InsertText:
			insert(c.Index, &remote{Text: c.Text})
		case Remove:
			at(c.Index)
			*list = append((*list)[:c.Index], (*list)[c.Index+1:]...)
		default:
			t.Fatalf("unknown command %T", cmd)
		}
	}
}

func newRemoteElement(t *testing.T, tag string, classes, props []string, ev HandleEvent, children []Command) *remote {
	t.Helper()
	r := &remote{
		Tag:            tag,
		Classes:        append([]string(nil), classes...),
		Props:          append([]string(nil), props...),
		Handle:         ev.HandleID,
		Events:         ev.Events,
		PreventDefault: ev.PreventDefault,
	}
	applyList(t, &r.Children, children)
	return r
}

func applyChanges(names []string, changes []Change) []string {
	for _, c := range changes {
		if c.Op == ChangeAdd {
			names = append(names, c.Name)
			continue
		}
		for i, name := range names {
			if name == c.Name {
				names = append(names[:i], names[i+1:]...)
				break
			}
		}
	}
	return names
}

// normalize sorts classes and props, which the remote side treats as sets,
// and drops handle ids and subscriptions.
func normalize(list []*remote) []*remote {
	out := make([]*remote, len(list))
	for i, r := range list {
		n := &remote{Text: r.Text, Tag: r.Tag, Children: normalize(r.Children)}
		if r.Tag != "" {
			n.Classes = sortedCopy(r.Classes)
			n.Props = sortedCopy(r.Props)
		}
		out[i] = n
	}
	return out
}

func sortedCopy(s []string) []string {
	c := append([]string{}, s...)
	sort.Strings(c)
	return c
}

// expected returns the forests the remote side should show for a tree
// without inline styles.
func expected(root vdom.Node) remoteForests {
	main, portals := expandPortals(bind(root, nopSend))
	return remoteForests{Main: fromNodes(main), Portals: fromNodes(portals)}
}

func fromNodes(ns []*node) []*remote {
	list := make([]*remote, len(ns))
	for i, n := range ns {
		list[i] = &remote{Text: n.text, Tag: n.tag, Classes: n.classes, Props: n.props, Children: fromNodes(n.children)}
	}
	return list
}

func nopSend(vdom.Msg) error { return nil }
