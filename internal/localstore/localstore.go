package localstore

import (
	"context"
	"fmt"

	"github.com/2beens/dawarpower/internal/config"
	"github.com/2beens/dawarpower/internal/profile"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

var _ Backend = (*FileStorage)(nil)
var _ Backend = (*RedisStorage)(nil)
var _ Backend = (*SQLiteStorage)(nil)
var _ Backend = (*MemoryStorage)(nil)

// Backend is a profile.Storage that holds resources until closed.
type Backend interface {
	profile.Storage
	Close() error
}

// Open creates the backend selected by cfg.StorageBackend. The redis client is
// only used (and required) by the redis backend; its lifecycle stays with the caller.
func Open(ctx context.Context, cfg *config.Config, rdb *redis.Client) (Backend, error) {
	switch cfg.StorageBackend {
	case config.StorageFile:
		log.Debugf("profile storage: file under %s", cfg.StoragePath)
		return NewFileStorage(cfg.StoragePath)
	case config.StorageSQLite:
		log.Debugf("profile storage: sqlite at %s", cfg.StoragePath)
		return NewSQLiteStorage(ctx, cfg.StoragePath)
	case config.StorageRedis:
		if rdb == nil {
			return nil, fmt.Errorf("redis storage selected, but no redis client given")
		}
		log.Debugf("profile storage: redis at %s:%s", cfg.RedisHost, cfg.RedisPort)
		return NewRedisStorage(rdb), nil
	case config.StorageMemory:
		log.Debugln("profile storage: in-memory only, nothing survives a restart")
		return NewMemoryStorage(0), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.StorageBackend)
	}
}
