package container

import (
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/vatika/v1/internal/infrastructure/persistence/memory"
	redisRepo "github.com/vatika/v1/internal/infrastructure/persistence/redis"
)

// Constructing a go-redis client does not dial, so selection can be
// verified without a running server.
func TestStoreSelection(t *testing.T) {
	client := goredis.NewClient(&goredis.Options{Addr: "localhost:6379"})
	log := zap.NewNop()

	t.Run("RedisWhenClientPresent", func(t *testing.T) {
		assert.IsType(t, &redisRepo.BookmarkStore{}, NewBookmarkStore(client, nil))
		assert.IsType(t, &redisRepo.FeaturedStore{}, NewFeaturedStore(client, nil))
		assert.IsType(t, &redisRepo.CacheRepository{}, NewCacheRepository(client, log))
	})

	t.Run("RelationalWhenClientAbsent", func(t *testing.T) {
		_, isRedis := NewBookmarkStore(nil, nil).(*redisRepo.BookmarkStore)
		assert.False(t, isRedis)

		_, isRedis = NewFeaturedStore(nil, nil).(*redisRepo.FeaturedStore)
		assert.False(t, isRedis)

		assert.IsType(t, &memory.CacheRepository{}, NewCacheRepository(nil, log))
	})
}
