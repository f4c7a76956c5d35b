package profile

import (
	"context"
	"errors"
)

// StorageKey is the single namespaced key the profile is persisted under.
const StorageKey = "dawarPower.profile"

var (
	// ErrNotFound is returned by Storage.Get when the key holds no value.
	ErrNotFound = errors.New("storage key not found")
	// ErrStorageUnavailable is reported when the store runs without a medium.
	ErrStorageUnavailable = errors.New("profile storage unavailable")
)

// Storage is the durable local key/value medium behind the Store.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Diagnostics receives the store's degraded-state signals. The store never
// returns these failures to its callers.
type Diagnostics interface {
	StorageFailed(op string, err error)
	ProfileChanged(present bool)
	SubscribersChanged(count int)
}

type noopDiagnostics struct{}

func (noopDiagnostics) StorageFailed(string, error) {}
func (noopDiagnostics) ProfileChanged(bool)         {}
func (noopDiagnostics) SubscribersChanged(int)      {}
