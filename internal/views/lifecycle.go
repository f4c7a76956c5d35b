package views

import (
	"context"
	"errors"
	"sync"

	"github.com/2beens/dawarpower/internal/profile"
)

var ErrInactive = errors.New("view is not active")

// lifecycle scopes a view's store subscription and its in-flight remote
// requests to the time between activate and deactivate.
//
// Results of a request are applied only if the view is still active and no
// newer request was started in the same slot since.
type lifecycle struct {
	store *profile.Store

	mu       sync.Mutex
	active   bool
	sub      *profile.Subscription
	inflight map[uint64]context.CancelFunc
	latest   map[string]uint64
	nextID   uint64
}

func newLifecycle(store *profile.Store) *lifecycle {
	return &lifecycle{
		store:    store,
		inflight: make(map[uint64]context.CancelFunc),
		latest:   make(map[string]uint64),
	}
}

// activate subscribes onChange to the store (if given). The store replays its
// current value before activate returns. Activating twice is a no-op.
func (l *lifecycle) activate(onChange func(*profile.CoachProfile)) {
	l.mu.Lock()
	if l.active {
		l.mu.Unlock()
		return
	}
	l.active = true
	l.mu.Unlock()

	if onChange == nil {
		return
	}

	sub := l.store.Subscribe(func(p *profile.CoachProfile) {
		if l.isActive() {
			onChange(p)
		}
	})

	l.mu.Lock()
	if !l.active {
		// deactivated while subscribing
		l.mu.Unlock()
		sub.Unsubscribe()
		return
	}
	l.sub = sub
	l.mu.Unlock()
}

// deactivate always releases the subscription and cancels every in-flight
// request, whatever state the view is in.
func (l *lifecycle) deactivate() {
	l.mu.Lock()
	l.active = false
	sub := l.sub
	l.sub = nil
	cancels := l.inflight
	l.inflight = make(map[uint64]context.CancelFunc)
	l.mu.Unlock()

	sub.Unsubscribe()
	for _, cancel := range cancels {
		cancel()
	}
}

func (l *lifecycle) isActive() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active
}

// supersede makes the results of every request in flight in slot stale.
func (l *lifecycle) supersede(slot string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextID++
	l.latest[slot] = l.nextID
}

type request struct {
	ctx  context.Context
	l    *lifecycle
	slot string
	id   uint64
}

// begin registers a request in slot. The returned context is canceled on
// deactivation.
func (l *lifecycle) begin(ctx context.Context, slot string) (*request, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.active {
		return nil, ErrInactive
	}

	l.nextID++
	id := l.nextID
	reqCtx, cancel := context.WithCancel(ctx)
	l.inflight[id] = cancel
	l.latest[slot] = id

	return &request{ctx: reqCtx, l: l, slot: slot, id: id}, nil
}

// done releases the request and reports whether its result may be applied.
// Callers hold their view mutex across done and the state write, so a
// deactivation either wins before the check or waits for the write.
func (r *request) done() bool {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()

	if cancel, ok := r.l.inflight[r.id]; ok {
		cancel()
		delete(r.l.inflight, r.id)
	}
	return r.l.active && r.l.latest[r.slot] == r.id
}

func (l *lifecycle) inflightCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.inflight)
}
