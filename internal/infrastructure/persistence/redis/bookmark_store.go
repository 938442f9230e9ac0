package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vatika/v1/internal/ports/outbound"
	appErrors "github.com/vatika/v1/pkg/errors"
)

// BookmarkStore implements outbound.BookmarkStore on Redis. Bookmarks
// live in per-user sorted sets scored by insertion time so listing
// preserves bookmark order.
type BookmarkStore struct {
	client *redis.Client
}

// NewBookmarkStore creates a Redis-backed bookmark store
func NewBookmarkStore(client *redis.Client) outbound.BookmarkStore {
	return &BookmarkStore{client: client}
}

func bookmarkKey(userID string) string {
	return fmt.Sprintf("vatika:bookmarks:%s", userID)
}

// Add records a bookmark; re-adding keeps the original position
func (s *BookmarkStore) Add(ctx context.Context, userID, plantID string) error {
	err := s.client.ZAddNX(ctx, bookmarkKey(userID), redis.Z{
		Score:  float64(time.Now().UnixNano()),
		Member: plantID,
	}).Err()
	if err != nil {
		return appErrors.NewDatabaseError("add bookmark", err)
	}
	return nil
}

// Remove deletes a bookmark; removing an absent one is a no-op
func (s *BookmarkStore) Remove(ctx context.Context, userID, plantID string) error {
	if err := s.client.ZRem(ctx, bookmarkKey(userID), plantID).Err(); err != nil {
		return appErrors.NewDatabaseError("remove bookmark", err)
	}
	return nil
}

// List returns the user's bookmarked plant ids in bookmark order
func (s *BookmarkStore) List(ctx context.Context, userID string) ([]string, error) {
	ids, err := s.client.ZRange(ctx, bookmarkKey(userID), 0, -1).Result()
	if err != nil {
		return nil, appErrors.NewDatabaseError("list bookmarks", err)
	}
	return ids, nil
}
