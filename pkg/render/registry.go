package render

import (
	"github.com/google/uuid"

	"src.jubako.dev/pkg/vdom"
)

// HandleID identifies one element's event callback registration. Ids are
// never reused.
type HandleID string

func newHandleID() HandleID { return HandleID(uuid.NewString()) }

// Registry maps handle ids to the callbacks of live elements. It is not safe
// for concurrent use; Processor serializes access to it.
type Registry struct {
	m map[HandleID]Callback
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{m: make(map[HandleID]Callback)}
}

// Set registers or replaces the callback for id.
func (r *Registry) Set(id HandleID, cb Callback) { r.m[id] = cb }

// Delete drops the callback for id, if any.
func (r *Registry) Delete(id HandleID) { delete(r.m, id) }

// Len returns the number of registered callbacks.
func (r *Registry) Len() int { return len(r.m) }

// Has reports whether id is registered.
func (r *Registry) Has(id HandleID) bool {
	_, ok := r.m[id]
	return ok
}

// Dispatch invokes the callback for id with the payload. An unknown id is
// ignored: the element may have been removed after the remote side sent the
// event. The second return value reports whether id was registered.
func (r *Registry) Dispatch(id HandleID, kind vdom.EventKind, payload any) (bool, error) {
	cb, ok := r.m[id]
	if !ok {
		return false, nil
	}
	return true, cb(kind, payload)
}

// Clear drops all callbacks.
func (r *Registry) Clear() {
	for id := range r.m {
		delete(r.m, id)
	}
}
