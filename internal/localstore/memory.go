package localstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/dawarpower/internal/profile"

	"github.com/coocood/freecache"
)

// freecache refuses entries larger than 1/1024 of its size, so 32 MB leaves
// room for profiles of about 32 KB.
const (
	defaultMemorySize = 32 * 1024 * 1024
	minMemorySize     = 512 * 1024
)

// MemoryStorage keeps values in a freecache for the process lifetime.
type MemoryStorage struct {
	cache    *freecache.Cache
	maxEntry int
}

func NewMemoryStorage(sizeBytes int) *MemoryStorage {
	if sizeBytes <= 0 {
		sizeBytes = defaultMemorySize
	}
	sizeBytes = max(sizeBytes, minMemorySize)
	return &MemoryStorage{
		cache:    freecache.NewCache(sizeBytes),
		maxEntry: sizeBytes / 1024,
	}
}

func (ms *MemoryStorage) Get(_ context.Context, key string) ([]byte, error) {
	value, err := ms.cache.Get([]byte(key))
	if errors.Is(err, freecache.ErrNotFound) {
		return nil, profile.ErrNotFound
	}
	return value, err
}

func (ms *MemoryStorage) Set(_ context.Context, key string, value []byte) error {
	// no expiry
	err := ms.cache.Set([]byte(key), value, 0)
	if errors.Is(err, freecache.ErrLargeEntry) {
		return fmt.Errorf(
			"value of %d bytes under %q exceeds the in-memory entry limit of about %d bytes: %w",
			len(value), key, ms.maxEntry, err,
		)
	}
	return err
}

func (ms *MemoryStorage) Delete(_ context.Context, key string) error {
	ms.cache.Del([]byte(key))
	return nil
}

func (ms *MemoryStorage) Close() error {
	ms.cache.Clear()
	return nil
}
