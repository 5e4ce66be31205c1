// Package bridge exposes Reset Chance components to callers that cannot hold
// Go pointers, such as a cgo export layer or an RPC handler. Components are
// addressed by opaque handles, and every call is serialized.
package bridge

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/npratt/splitchance/internal/component"
	"github.com/npratt/splitchance/internal/component/keyvalue"
	"github.com/npratt/splitchance/internal/component/resetchance"
	"github.com/npratt/splitchance/internal/timing"
)

// ErrUnknownHandle is returned for handles that were never issued or have
// already been released.
var ErrUnknownHandle = errors.New("unknown component handle")

// Handle identifies a component owned by a Registry. The zero handle is
// never issued.
type Handle uint64

// Registry owns components on behalf of external callers.
type Registry struct {
	mu         sync.Mutex
	next       Handle
	components map[Handle]*resetchance.Component
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{components: make(map[Handle]*resetchance.Component)}
}

// New creates a component with default settings and returns its handle.
func (r *Registry) New() Handle {
	return r.Adopt(resetchance.New())
}

// Adopt takes ownership of c and returns its handle.
func (r *Registry) Adopt(c *resetchance.Component) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.next++
	r.components[r.next] = c
	return r.next
}

// Drop destroys the component.
func (r *Registry) Drop(h Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.components[h]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	delete(r.components, h)
	return nil
}

// IntoGeneric releases the component from the registry and returns it as a
// generic component for use in a layout. The handle is invalid afterwards.
func (r *Registry) IntoGeneric(h Handle) (component.Component, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.components[h]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	delete(r.components, h)
	return c, nil
}

// State refreshes the component against the snapshot and returns its state.
func (r *Registry) State(h Handle, snapshot timing.Snapshot) (keyvalue.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.components[h]
	if !ok {
		return keyvalue.State{}, fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	return c.State(snapshot), nil
}

// StateAsJSON refreshes the component and returns its state encoded as JSON.
func (r *Registry) StateAsJSON(h Handle, snapshot timing.Snapshot) ([]byte, error) {
	state, err := r.State(h, snapshot)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := state.WriteJSON(&buf); err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return buf.Bytes(), nil
}

// Len returns the number of live components.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.components)
}
