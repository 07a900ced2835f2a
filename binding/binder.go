package binding

import (
	"go.uber.org/zap"

	"model-binder/meta"
	"model-binder/widget"
)

// ViewUpdateFunc runs before a value is pushed to a view. value is the field
// value with pointers dereferenced, or nil. The returned value is pushed
// instead.
type ViewUpdateFunc func(value any, view widget.View) any

// ModelUpdateFunc runs before a widget change is written back. Returning
// true means the change was handled and the default write is skipped.
type ModelUpdateFunc func(view widget.View, field meta.FieldDescriptor) bool

// Binder binds models to views resolved through one resource namespace.
// Hooks must not be replaced while Bind runs.
type Binder struct {
	resources widget.Resources
	cfg       Config
	logger    *zap.Logger
	cache     *meta.Cache
	sources   []meta.Source

	onViewUpdate  ViewUpdateFunc
	onModelUpdate ModelUpdateFunc
}

// New returns a Binder resolving symbolic view ids through resources. A nil
// resources resolves numeric ids only.
func New(resources widget.Resources, opts ...Option) *Binder {
	b := &Binder{
		resources: resources,
		cfg:       DefaultConfig(),
		logger:    Logger(),
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.cache == nil {
		b.cache = meta.NewCache(b.sources...)
	}

	return b
}

// SetOnViewUpdateListener installs the hook run before every push. nil
// removes it.
func (b *Binder) SetOnViewUpdateListener(fn ViewUpdateFunc) {
	b.onViewUpdate = fn
}

// SetOnModelUpdateListener installs the hook run before every write-back. nil
// removes it. Listeners registered by earlier Bind calls observe the change.
func (b *Binder) SetOnModelUpdateListener(fn ModelUpdateFunc) {
	b.onModelUpdate = fn
}

// Config returns the binder's configuration.
func (b *Binder) Config() Config {
	return b.cfg
}

// Cache returns the metadata cache used by the binder.
func (b *Binder) Cache() *meta.Cache {
	return b.cache
}
