package store

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/georgemunganga/vendor-panel/internal/modules/notify"
	"github.com/georgemunganga/vendor-panel/internal/modules/vendor"
)

// Change describes one completed dispatch.
type Change struct {
	Action Action
	Prev   State
	Next   State
}

// VendorsChanged reports whether the dispatch altered the vendor collection.
func (c Change) VendorsChanged() bool {
	return c.Prev.VendorsVersion != c.Next.VendorsVersion
}

// Observer is told about every dispatch after it has been applied.
type Observer interface {
	Observe(c Change)
}

// Option configures a Store.
type Option func(*Store)

// WithNotifier sets where add/update/delete notifications go.
func WithNotifier(n notify.Notifier) Option {
	return func(s *Store) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithLogger sets the logger used for dispatch tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithObserver registers an observer, typically metrics.
func WithObserver(o Observer) Option {
	return func(s *Store) {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

// Store owns the panel state. Every mutation goes through Dispatch, which
// applies one action at a time; readers get immutable snapshots. Vendor
// slices in snapshots are shared between readers and must not be modified.
type Store struct {
	dispatchMu sync.Mutex
	mu         sync.RWMutex
	state      State

	subMu       sync.RWMutex
	subscribers map[uint64]func(Change)
	subSeq      uint64

	notifier  notify.Notifier
	logger    *slog.Logger
	observers []Observer
	ready     bool
}

// New creates a store seeded with the given vendors.
func New(seed []vendor.Vendor, opts ...Option) *Store {
	s := &Store{
		state:       NewState(seed),
		subscribers: make(map[uint64]func(Change)),
		notifier:    notify.Discard,
		logger:      slog.Default(),
		ready:       true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MustBeReady panics when s was not built by New. Surfaces call it at
// construction so that wiring mistakes fail at startup.
func MustBeReady(s *Store, consumer string) {
	if s == nil || !s.ready {
		panic(consumer + ": vendor store used before it was initialised; construct it with store.New")
	}
}

// Dispatch applies a and returns the resulting state. Dispatches are
// serialised end to end: subscribers and observers see every change in
// order before the next action is applied. They may read Snapshot but
// must not call Dispatch.
func (s *Store) Dispatch(a Action) State {
	MustBeReady(s, "store.Dispatch")
	if a == nil {
		return s.Snapshot()
	}

	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	prev := s.state
	next := Apply(prev, a)
	s.state = next
	s.mu.Unlock()

	change := Change{Action: a, Prev: prev, Next: next}
	s.logger.Debug("Dispatched action",
		slog.String("action", string(a.Type())),
		slog.Int("vendors", len(next.Vendors)),
		slog.Bool("vendors_changed", change.VendorsChanged()))

	s.announce(change)
	for _, o := range s.observers {
		o.Observe(change)
	}
	for _, fn := range s.subscriberList() {
		fn(change)
	}
	return next
}

// Snapshot returns the current state.
func (s *Store) Snapshot() State {
	MustBeReady(s, "store.Snapshot")
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers fn to be called after every dispatch. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func(Change)) (unsubscribe func()) {
	MustBeReady(s, "store.Subscribe")
	s.subMu.Lock()
	defer s.subMu.Unlock()

	s.subSeq++
	id := s.subSeq
	s.subscribers[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *Store) subscriberList() []func(Change) {
	s.subMu.RLock()
	defer s.subMu.RUnlock()

	ids := make([]uint64, 0, len(s.subscribers))
	for id := range s.subscribers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(Change), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.subscribers[id])
	}
	return fns
}

// announce raises the toast for mutations that changed the collection.
func (s *Store) announce(c Change) {
	if !c.VendorsChanged() {
		return
	}
	switch c.Action.(type) {
	case AddVendor:
		s.notifier.Notify(notify.KindSuccess, notify.MessageVendorAdded)
	case UpdateVendor:
		s.notifier.Notify(notify.KindSuccess, notify.MessageVendorUpdated)
	case DeleteVendor:
		s.notifier.Notify(notify.KindError, notify.MessageVendorDeleted)
	}
}
