package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/edututor/backend/internal/models"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	currentUserKeyPrefix = "edututor:currentUser:"
	studentProfilesKey   = "edututor:studentProfiles"
)

// BlobClient is the part of the Redis client used by the profile store
type BlobClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// profileStore keeps whole JSON blobs in Redis. Every write replaces the blob, the last write wins.
type profileStore struct {
	client BlobClient
	logger *zap.Logger
}

// NewProfileStore creates a new Redis backed profile store
func NewProfileStore(client BlobClient, logger *zap.Logger) *profileStore {
	return &profileStore{
		client: client,
		logger: logger,
	}
}

// GetProfiles returns the stored student profiles. found is false when nothing was ever stored.
func (s *profileStore) GetProfiles(ctx context.Context) (profiles []models.StudentProfile, found bool, err error) {
	found, err = s.getBlob(ctx, studentProfilesKey, &profiles)
	if err != nil {
		return nil, false, err
	}
	return profiles, found, nil
}

// SaveProfiles replaces the stored student profiles
func (s *profileStore) SaveProfiles(ctx context.Context, profiles []models.StudentProfile) error {
	return s.setBlob(ctx, studentProfilesKey, profiles)
}

// GetCurrentUser returns the user of a session, or nil when nobody is signed in
func (s *profileStore) GetCurrentUser(ctx context.Context, sessionID string) (*models.CurrentUser, error) {
	var user models.CurrentUser
	found, err := s.getBlob(ctx, currentUserKeyPrefix+sessionID, &user)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

// SaveCurrentUser replaces the user of a session
func (s *profileStore) SaveCurrentUser(ctx context.Context, sessionID string, user *models.CurrentUser) error {
	return s.setBlob(ctx, currentUserKeyPrefix+sessionID, user)
}

// DeleteCurrentUser signs the session out
func (s *profileStore) DeleteCurrentUser(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, currentUserKeyPrefix+sessionID).Err(); err != nil {
		s.logger.Error("failed to delete current user", zap.String("session_id", sessionID), zap.Error(err))
		return fmt.Errorf("failed to delete current user: %w", err)
	}
	return nil
}

func (s *profileStore) getBlob(ctx context.Context, key string, dest any) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		s.logger.Error("failed to read blob", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		s.logger.Error("failed to decode blob", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

func (s *profileStore) setBlob(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		s.logger.Error("failed to write blob", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
