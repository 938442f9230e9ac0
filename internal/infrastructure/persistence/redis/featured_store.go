package redis

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/vatika/v1/internal/ports/outbound"
	appErrors "github.com/vatika/v1/pkg/errors"
)

const featuredKey = "vatika:featured"

// FeaturedStore implements outbound.FeaturedStore on Redis. The pointer
// lives in a single hash with plant_id and rotated_on fields.
type FeaturedStore struct {
	client *redis.Client
}

// NewFeaturedStore creates a Redis-backed featured-plant store
func NewFeaturedStore(client *redis.Client) outbound.FeaturedStore {
	return &FeaturedStore{client: client}
}

// Load returns the persisted featured pointer, if any
func (s *FeaturedStore) Load(ctx context.Context) (string, string, bool, error) {
	fields, err := s.client.HGetAll(ctx, featuredKey).Result()
	if err != nil {
		return "", "", false, appErrors.NewDatabaseError("load featured plant", err)
	}
	if len(fields) == 0 {
		return "", "", false, nil
	}

	return fields["plant_id"], fields["rotated_on"], true, nil
}

// Save stores the featured pointer and its selection date
func (s *FeaturedStore) Save(ctx context.Context, plantID, rotatedOn string) error {
	err := s.client.HSet(ctx, featuredKey,
		"plant_id", plantID,
		"rotated_on", rotatedOn,
	).Err()
	if err != nil {
		return appErrors.NewDatabaseError("save featured plant", err)
	}
	return nil
}
