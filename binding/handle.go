package binding

import (
	"slices"
	"sync"

	"github.com/google/uuid"

	"model-binder/internal/diagnostic"
	"model-binder/widget"
)

// Binding is the result of one Bind call.
type Binding struct {
	id        uuid.UUID
	mu        sync.Mutex
	disposers []widget.Disposer
	diags     diagnostic.Diagnostics
	unbound   bool
}

func newBinding() *Binding {
	return &Binding{id: uuid.New()}
}

// ID identifies the Bind call in log lines.
func (h *Binding) ID() uuid.UUID {
	return h.id
}

// Len returns the number of live widget bindings.
func (h *Binding) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.disposers)
}

// Diagnostics describes every failure recorded while binding.
func (h *Binding) Diagnostics() *diagnostic.Diagnostics {
	return &h.diags
}

// Err returns the joined setup failures, or nil.
func (h *Binding) Err() error {
	return h.diags.Error()
}

// Unbind detaches every listener registered by the Bind call, most recent
// first. Only the first call has an effect.
func (h *Binding) Unbind() {
	h.mu.Lock()
	if h.unbound {
		h.mu.Unlock()
		return
	}

	disposers := h.disposers
	h.disposers = nil
	h.unbound = true
	h.mu.Unlock()

	for _, dispose := range slices.Backward(disposers) {
		if dispose != nil {
			dispose()
		}
	}
}

func (h *Binding) add(d widget.Disposer) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.disposers = append(h.disposers, d)
}
