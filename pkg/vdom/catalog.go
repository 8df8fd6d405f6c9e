package vdom

import (
	"encoding/json"
	"errors"
	"fmt"
)

var errUnknownKind = errors.New("unknown event kind")

// EventKind identifies one kind of the event catalog. The zero value is not a
// valid kind. The constants and the [Handlers] struct are generated from
// events.yaml.
type EventKind uint8

var eventKindByName = make(map[string]EventKind, NumEventKinds)

func init() {
	for k, name := range eventKindNames {
		if name != "" {
			eventKindByName[name] = EventKind(k)
		}
	}
}

// ParseEventKind returns the kind with the given wire name.
func ParseEventKind(name string) (EventKind, bool) {
	k, ok := eventKindByName[name]
	return k, ok
}

// Kinds returns all event kinds in catalog order.
func Kinds() []EventKind {
	kinds := make([]EventKind, 0, NumEventKinds)
	for k := EventKind(1); int(k) <= NumEventKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// String returns the wire name of the kind.
func (k EventKind) String() string {
	if int(k) < len(eventKindNames) && eventKindNames[k] != "" {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

func (k EventKind) MarshalJSON() ([]byte, error) {
	if int(k) >= len(eventKindNames) || eventKindNames[k] == "" {
		return nil, fmt.Errorf("vdom: invalid event kind %d", uint8(k))
	}
	return json.Marshal(eventKindNames[k])
}

func (k *EventKind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	kind, ok := eventKindByName[name]
	if !ok {
		return fmt.Errorf("vdom: unknown event kind %q", name)
	}
	*k = kind
	return nil
}

type handlerSlot interface {
	IsSet() bool
	PreventsDefault() bool
	call(payload any) (Msg, bool)
}

// Subscriptions returns the kinds with a declared handler, split into plain
// handlers and prevent-default handlers. Both lists are in catalog order and
// never nil.
func (h *Handlers) Subscriptions() (plain, preventDefault []EventKind) {
	plain, preventDefault = []EventKind{}, []EventKind{}
	for k := EventKind(1); int(k) <= NumEventKinds; k++ {
		s := h.slot(k)
		switch {
		case s.PreventsDefault():
			preventDefault = append(preventDefault, k)
		case s.IsSet():
			plain = append(plain, k)
		}
	}
	return plain, preventDefault
}

// Handle converts a payload of the given kind to a message. It returns false
// when no handler is declared for the kind or the payload does not have the
// kind's payload type.
func (h *Handlers) Handle(k EventKind, payload any) (Msg, bool) {
	s := h.slot(k)
	if s == nil {
		return nil, false
	}
	return s.call(payload)
}

// DecodePayload decodes the JSON payload of an event of the given kind into
// the kind's payload type. An empty or null payload decodes to the zero value.
func DecodePayload(k EventKind, raw json.RawMessage) (any, error) {
	p, err := decodePayload(k, raw)
	if err != nil {
		return nil, fmt.Errorf("decode %v payload: %w", k, err)
	}
	return p, nil
}

func decodeAs[E any](raw json.RawMessage) (any, error) {
	var e E
	if len(raw) == 0 {
		return e, nil
	}
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, err
	}
	return e, nil
}
