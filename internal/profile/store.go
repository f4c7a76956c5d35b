package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"
)

const defaultStorageTimeout = 3 * time.Second

// Store owns the current CoachProfile (or none). Every write goes through
// Save, Clear or ApplyPreset; the new value is persisted and then delivered to
// all subscribers, synchronously, in write order.
//
// Subscriber callbacks run while the store holds its write lock, so a callback
// may read (Get) or Unsubscribe, but must not Save, Clear, ApplyPreset or
// Subscribe on the same store from the callback goroutine.
type Store struct {
	writeMu sync.Mutex // serializes writers, subscriptions and emissions

	stateMu   sync.RWMutex
	current   *CoachProfile
	lastStamp time.Time
	subs      map[uint64]func(*CoachProfile)
	subOrder  []uint64
	nextSubID uint64

	storage        Storage
	clock          func() time.Time
	diagnostics    Diagnostics
	storageTimeout time.Duration
}

type StoreOption func(*Store)

func WithClock(clock func() time.Time) StoreOption {
	return func(s *Store) {
		s.clock = clock
	}
}

func WithDiagnostics(d Diagnostics) StoreOption {
	return func(s *Store) {
		if d != nil {
			s.diagnostics = d
		}
	}
}

func WithStorageTimeout(timeout time.Duration) StoreOption {
	return func(s *Store) {
		if timeout > 0 {
			s.storageTimeout = timeout
		}
	}
}

// NewStore creates the store and loads the persisted profile, if any. A nil
// storage means no durable medium is available: the store still works in
// memory. Load failures of any kind result in an empty store.
func NewStore(ctx context.Context, storage Storage, opts ...StoreOption) *Store {
	s := &Store{
		subs:           make(map[uint64]func(*CoachProfile)),
		storage:        storage,
		clock:          time.Now,
		diagnostics:    noopDiagnostics{},
		storageTimeout: defaultStorageTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	if storage == nil {
		s.diagnostics.StorageFailed("open", ErrStorageUnavailable)
	}

	s.current = s.load(ctx)
	if s.current != nil {
		s.lastStamp = s.current.LastUpdated
	}
	s.diagnostics.ProfileChanged(s.current != nil)

	return s
}

// Get returns a copy of the last known profile, or nil.
func (s *Store) Get() *CoachProfile {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.current.Clone()
}

// Save replaces the profile with p, stamping LastUpdated with the current time.
// The caller's value is copied; the caller's LastUpdated is ignored. The
// returned copy is exactly what this call stored, even if another writer
// replaces it right after.
func (s *Store) Save(ctx context.Context, p CoachProfile) *CoachProfile {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	next := p.Clone()
	next.Normalize()

	s.stateMu.Lock()
	next.LastUpdated = s.nextStamp()
	s.current = next
	s.stateMu.Unlock()

	s.persist(ctx, next)
	s.diagnostics.ProfileChanged(true)
	s.emit(next)

	return next.Clone()
}

// Clear removes the profile, purges the persisted copy and emits nil.
func (s *Store) Clear(ctx context.Context) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.stateMu.Lock()
	s.current = nil
	s.stateMu.Unlock()

	if s.storage != nil {
		ctx, cancel := context.WithTimeout(ctx, s.storageTimeout)
		defer cancel()
		if err := s.storage.Delete(ctx, StorageKey); err != nil && !errors.Is(err, ErrNotFound) {
			s.diagnostics.StorageFailed("delete", err)
		}
	}

	s.diagnostics.ProfileChanged(false)
	s.emit(nil)
}

// ApplyPreset saves the preset stored under key. Unknown keys are ignored and
// reported with false.
func (s *Store) ApplyPreset(ctx context.Context, key string) bool {
	preset, ok := Preset(key)
	if !ok {
		return false
	}
	s.Save(ctx, *preset)
	return true
}

// Subscribe registers fn and immediately calls it with the current value.
// After that fn receives every change in write order until Unsubscribe.
func (s *Store) Subscribe(fn func(*CoachProfile)) *Subscription {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.stateMu.Lock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = fn
	s.subOrder = append(s.subOrder, id)
	current := s.current.Clone()
	count := len(s.subs)
	s.stateMu.Unlock()

	s.diagnostics.SubscribersChanged(count)
	fn(current)

	return &Subscription{store: s, id: id}
}

// SubscriberCount is mostly useful for leak checks.
func (s *Store) SubscriberCount() int {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return len(s.subs)
}

// Close drops every subscription. The store keeps serving Get afterwards.
func (s *Store) Close() {
	s.stateMu.Lock()
	s.subs = make(map[uint64]func(*CoachProfile))
	s.subOrder = nil
	s.stateMu.Unlock()
	s.diagnostics.SubscribersChanged(0)
}

func (s *Store) unsubscribe(id uint64) {
	s.stateMu.Lock()
	if _, ok := s.subs[id]; !ok {
		s.stateMu.Unlock()
		return
	}
	delete(s.subs, id)
	for i, subID := range s.subOrder {
		if subID == id {
			s.subOrder = append(s.subOrder[:i], s.subOrder[i+1:]...)
			break
		}
	}
	count := len(s.subs)
	s.stateMu.Unlock()

	s.diagnostics.SubscribersChanged(count)
}

// emit must be called with writeMu held.
func (s *Store) emit(p *CoachProfile) {
	s.stateMu.RLock()
	ids := append([]uint64{}, s.subOrder...)
	s.stateMu.RUnlock()

	for _, id := range ids {
		// re-check, an earlier callback may have unsubscribed this one
		s.stateMu.RLock()
		fn, ok := s.subs[id]
		s.stateMu.RUnlock()
		if !ok {
			continue
		}
		fn(p.Clone())
	}
}

// nextStamp must be called with stateMu held.
func (s *Store) nextStamp() time.Time {
	stamp := s.clock().UTC()
	if stamp.Before(s.lastStamp) {
		stamp = s.lastStamp
	}
	s.lastStamp = stamp
	return stamp
}

func (s *Store) persist(ctx context.Context, p *CoachProfile) {
	if s.storage == nil {
		return
	}

	payload, err := json.Marshal(p)
	if err != nil {
		s.diagnostics.StorageFailed("encode", err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, s.storageTimeout)
	defer cancel()
	if err := s.storage.Set(ctx, StorageKey, payload); err != nil {
		s.diagnostics.StorageFailed("set", err)
	}
}

func (s *Store) load(ctx context.Context) *CoachProfile {
	if s.storage == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.storageTimeout)
	defer cancel()

	raw, err := s.storage.Get(ctx, StorageKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.diagnostics.StorageFailed("get", err)
		}
		return nil
	}
	if len(raw) == 0 {
		return nil
	}

	p, err := decodeProfile(raw)
	if err != nil {
		s.diagnostics.StorageFailed("decode", err)
		return nil
	}
	if p.LastUpdated.IsZero() {
		p.LastUpdated = s.clock().UTC()
	}
	return p
}

func decodeProfile(raw []byte) (*CoachProfile, error) {
	var decoded *CoachProfile
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	if decoded == nil {
		return nil, errors.New("persisted profile is null")
	}
	if err := checkClosedEnums(decoded); err != nil {
		return nil, err
	}
	decoded.Normalize()
	return decoded, nil
}

func checkClosedEnums(p *CoachProfile) error {
	switch {
	case !p.WorkStyle.Valid():
		return fmt.Errorf("persisted profile has unknown work style %q", p.WorkStyle)
	case !p.Goal.Valid():
		return fmt.Errorf("persisted profile has unknown goal %q", p.Goal)
	case !p.DietPreference.Valid():
		return fmt.Errorf("persisted profile has unknown diet preference %q", p.DietPreference)
	case !p.StressLevel.Valid():
		return fmt.Errorf("persisted profile has unknown stress level %q", p.StressLevel)
	}
	return nil
}

// Subscription is the handle returned by Store.Subscribe.
type Subscription struct {
	store *Store
	id    uint64
	once  sync.Once
}

// Unsubscribe stops delivery. Safe to call more than once and from within a
// subscriber callback.
func (sub *Subscription) Unsubscribe() {
	if sub == nil {
		return
	}
	sub.once.Do(func() {
		sub.store.unsubscribe(sub.id)
	})
}
