package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

const selectionKeyPrefix = "conversion_session:"

// SelectionRedisRepository keeps the selection of each conversion session in Redis.
// Rate snapshots are never stored.
type SelectionRedisRepository struct {
	client *redis.Client
	exp    time.Duration // session lifetime, refreshed on every save
}

// NewSelectionRedisRepository creates a new repository instance
func NewSelectionRedisRepository(client *redis.Client, expiration time.Duration) *SelectionRedisRepository {
	return &SelectionRedisRepository{
		client: client,
		exp:    expiration,
	}
}

// Save stores the selection of a session
func (r *SelectionRedisRepository) Save(ctx context.Context, sessionID string, sel models.Selection) error {
	key := selectionKeyPrefix + sessionID

	val, err := json.Marshal(sel)
	if err != nil {
		return fmt.Errorf("encode selection: %w", err)
	}

	err = r.client.Set(ctx, key, val, r.exp).Err()
	logger.Log.Debugw("save selection",
		"key", key,
		"error", err,
	)
	return err
}

// Get returns the stored selection, or nil if the session is unknown or expired
func (r *SelectionRedisRepository) Get(ctx context.Context, sessionID string) (*models.Selection, error) {
	key := selectionKeyPrefix + sessionID

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		logger.Log.Errorw("failed to load selection", "key", key, "error", err)
		return nil, err
	}

	var sel models.Selection
	if err := json.Unmarshal(val, &sel); err != nil {
		return nil, fmt.Errorf("decode selection %s: %w", key, err)
	}
	return &sel, nil
}

// Delete removes the selection of a session
func (r *SelectionRedisRepository) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, selectionKeyPrefix+sessionID).Err()
}
