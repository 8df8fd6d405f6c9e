package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"src.jubako.dev/pkg/vdom"
)

// Event is an inbound event reported by the remote renderer.
type Event struct {
	HandleID HandleID
	Kind     vdom.EventKind
	// Payload has the payload type of Kind, such as vdom.MouseEvent.
	Payload any
}

var errNoKind = errors.New("event without kind")

// UnmarshalJSON accepts both
//
//	{"handle_id": "...", "kind": {"type": "Click", "content": {...}}}
//
// and the flat form
//
//	{"handle_id": "...", "kind": "Click", "payload": {...}}
func (e *Event) UnmarshalJSON(data []byte) error {
	var wire struct {
		HandleID HandleID        `json:"handle_id"`
		Kind     json.RawMessage `json:"kind"`
		Payload  json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	kindData := bytes.TrimSpace(wire.Kind)
	if len(kindData) == 0 || bytes.Equal(kindData, []byte("null")) {
		return errNoKind
	}

	var name string
	raw := wire.Payload
	if kindData[0] == '"' {
		if err := json.Unmarshal(kindData, &name); err != nil {
			return err
		}
	} else {
		var tagged struct {
			Type    string          `json:"type"`
			Content json.RawMessage `json:"content"`
		}
		if err := json.Unmarshal(kindData, &tagged); err != nil {
			return err
		}
		name, raw = tagged.Type, tagged.Content
	}
	kind, ok := vdom.ParseEventKind(name)
	if !ok {
		return fmt.Errorf("unknown event kind %q", name)
	}
	payload, err := vdom.DecodePayload(kind, raw)
	if err != nil {
		return err
	}
	*e = Event{HandleID: wire.HandleID, Kind: kind, Payload: payload}
	return nil
}
