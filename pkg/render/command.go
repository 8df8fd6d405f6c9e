package render

import (
	"encoding/json"

	"src.jubako.dev/pkg/vdom"
)

// Commands are serialized as {"type": <variant>, "content": <fields>}, the
// form the remote renderer switches on.

// Command is one index-addressed mutation of a sibling list. The index is the
// position among the addressed parent's current children at the time the
// command is applied.
type Command interface {
	json.Marshaler
	isCommand()
}

// UpdateElement updates an element in place and carries the commands for its
// children.
type UpdateElement struct {
	Index     int       `json:"index"`
	ClassDiff []Change  `json:"class_diff"`
	PropsDiff []Change  `json:"props_diff"`
	EventDiff EventDiff `json:"event_diff"`
	Children  []Command `json:"children"`
}

// UpdateText replaces the content of a text node.
type UpdateText struct {
	Index   int    `json:"index"`
	NewText string `json:"new_text"`
}

// ReplaceToElement replaces the node at Index with a new element built from
// the command, including its whole subtree.
type ReplaceToElement struct {
	Index    int         `json:"index"`
	NewTag   string      `json:"new_tag"`
	Classes  []string    `json:"classes"`
	Props    []string    `json:"props"`
	Event    HandleEvent `json:"event"`
	Children []Command   `json:"children"`
}

// ReplaceToText replaces the node at Index with a text node.
type ReplaceToText struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// InsertElement inserts a new element, including its whole subtree, before
// the node at Index.
type InsertElement struct {
	Index    int         `json:"index"`
	Tag      string      `json:"tag"`
	Classes  []string    `json:"classes"`
	Props    []string    `json:"props"`
	Event    HandleEvent `json:"event"`
	Children []Command   `json:"children"`
}

// InsertText inserts a text node before the node at Index.
type InsertText struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// Remove removes the node at Index.
type Remove struct {
	Index int `json:"index"`
}

func (UpdateElement) isCommand()    {}
func (UpdateText) isCommand()       {}
func (ReplaceToElement) isCommand() {}
func (ReplaceToText) isCommand()    {}
func (InsertElement) isCommand()    {}
func (InsertText) isCommand()       {}
func (Remove) isCommand()           {}

// Content types without methods, used to marshal the fields of each command
// without recursing into its MarshalJSON.
type (
	updateElementContent    UpdateElement
	updateTextContent       UpdateText
	replaceToElementContent ReplaceToElement
	replaceToTextContent    ReplaceToText
	insertElementContent    InsertElement
	insertTextContent       InsertText
	removeContent           Remove
)

func (c UpdateElement) MarshalJSON() ([]byte, error) {
	c.ClassDiff = nonNil(c.ClassDiff)
	c.PropsDiff = nonNil(c.PropsDiff)
	c.Children = nonNil(c.Children)
	return tagged("UpdateElement", updateElementContent(c))
}

func (c UpdateText) MarshalJSON() ([]byte, error) {
	return tagged("UpdateText", updateTextContent(c))
}

func (c ReplaceToElement) MarshalJSON() ([]byte, error) {
	c.Classes = nonNil(c.Classes)
	c.Props = nonNil(c.Props)
	c.Children = nonNil(c.Children)
	return tagged("ReplaceToElement", replaceToElementContent(c))
}

func (c ReplaceToText) MarshalJSON() ([]byte, error) {
	return tagged("ReplaceToText", replaceToTextContent(c))
}

func (c InsertElement) MarshalJSON() ([]byte, error) {
	c.Classes = nonNil(c.Classes)
	c.Props = nonNil(c.Props)
	c.Children = nonNil(c.Children)
	return tagged("InsertElement", insertElementContent(c))
}

func (c InsertText) MarshalJSON() ([]byte, error) {
	return tagged("InsertText", insertTextContent(c))
}

func (c Remove) MarshalJSON() ([]byte, error) {
	return tagged("Remove", removeContent(c))
}

// ChangeOp is the operation of a Change.
type ChangeOp uint8

const (
	ChangeAdd ChangeOp = iota
	ChangeRemove
)

// Change adds or removes one class or prop.
type Change struct {
	Op   ChangeOp
	Name string
}

func (c Change) MarshalJSON() ([]byte, error) {
	if c.Op == ChangeRemove {
		return tagged("Remove", c.Name)
	}
	return tagged("Add", c.Name)
}

// HandleEvent binds an element to a handle id and lists the event kinds the
// remote renderer should report for it.
type HandleEvent struct {
	HandleID       HandleID         `json:"handle_id"`
	Events         []vdom.EventKind `json:"handle_events"`
	PreventDefault []vdom.EventKind `json:"handle_prevent_default_events"`
}

type handleEventContent HandleEvent

func (h HandleEvent) MarshalJSON() ([]byte, error) {
	h.Events = nonNil(h.Events)
	h.PreventDefault = nonNil(h.PreventDefault)
	return json.Marshal(handleEventContent(h))
}

// EventDiff is either no change (Update is nil) or a new subscription for the
// element.
type EventDiff struct {
	Update *HandleEvent
}

func (d EventDiff) MarshalJSON() ([]byte, error) {
	if d.Update == nil {
		return json.Marshal(struct {
			Type string `json:"type"`
		}{"None"})
	}
	return tagged("Update", d.Update)
}

// StyleCommand adds or removes one generated style rule.
type StyleCommand interface {
	json.Marshaler
	isStyleCommand()
}

// AddStyle installs a minified CSS rule for ClassName.
type AddStyle struct {
	ClassName string `json:"class_name"`
	Value     string `json:"value"`
}

// RemoveStyle uninstalls the rule for ClassName.
type RemoveStyle struct {
	ClassName string `json:"class_name"`
}

type (
	addStyleContent    AddStyle
	removeStyleContent RemoveStyle
)

func (AddStyle) isStyleCommand()    {}
func (RemoveStyle) isStyleCommand() {}

func (c AddStyle) MarshalJSON() ([]byte, error) {
	return tagged("AddStyle", addStyleContent(c))
}

func (c RemoveStyle) MarshalJSON() ([]byte, error) {
	return tagged("RemoveStyle", removeStyleContent(c))
}

// Batch is everything one draw sends to the remote side.
type Batch struct {
	Main    []Command      `json:"main"`
	Portals []Command      `json:"portals"`
	Styles  []StyleCommand `json:"styles"`
}

type batchContent Batch

func (b Batch) MarshalJSON() ([]byte, error) {
	b.Main = nonNil(b.Main)
	b.Portals = nonNil(b.Portals)
	b.Styles = nonNil(b.Styles)
	return json.Marshal(batchContent(b))
}

// Empty reports whether the batch carries no commands.
func (b Batch) Empty() bool {
	return len(b.Main) == 0 && len(b.Portals) == 0 && len(b.Styles) == 0
}

func tagged(typ string, content any) ([]byte, error) {
	return json.Marshal(struct {
		Type    string `json:"type"`
		Content any    `json:"content"`
	}{typ, content})
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
