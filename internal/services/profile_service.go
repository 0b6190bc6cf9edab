package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/edututor/backend/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProfileStore is the interface that wraps access to the profile and session blobs
type ProfileStore interface {
	GetProfiles(ctx context.Context) ([]models.StudentProfile, bool, error)
	SaveProfiles(ctx context.Context, profiles []models.StudentProfile) error
	GetCurrentUser(ctx context.Context, sessionID string) (*models.CurrentUser, error)
	SaveCurrentUser(ctx context.Context, sessionID string, user *models.CurrentUser) error
	DeleteCurrentUser(ctx context.Context, sessionID string) error
}

const newProfileAvatar = "🎓"

type profileService struct {
	store  ProfileStore
	logger *zap.Logger
	now    func() time.Time
	newID  func() string
}

// NewProfileService creates a new profile service
func NewProfileService(store ProfileStore, logger *zap.Logger) *profileService {
	return &profileService{
		store:  store,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// defaultProfiles are stored the first time profiles are listed
func defaultProfiles(now time.Time) []models.StudentProfile {
	return []models.StudentProfile{
		{ID: "1", Name: "Alex Johnson", Avatar: "👦", Level: 5, Progress: 78, Streak: 12, LastActive: now.Add(-2 * time.Hour), Subjects: []string{"Math", "Science"}},
		{ID: "2", Name: "Maria Garcia", Avatar: "👧", Level: 7, Progress: 92, Streak: 25, LastActive: now.Add(-30 * time.Minute), Subjects: []string{"English", "History"}},
		{ID: "3", Name: "David Chen", Avatar: "🧒", Level: 3, Progress: 45, Streak: 5, LastActive: now.Add(-24 * time.Hour), Subjects: []string{"Math", "Art"}},
	}
}

// ListProfiles returns all student profiles, seeding the defaults when none are stored
func (s *profileService) ListProfiles(ctx context.Context) ([]models.StudentProfile, error) {
	profiles, found, err := s.store.GetProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}
	if found {
		if profiles == nil {
			profiles = []models.StudentProfile{}
		}
		return profiles, nil
	}

	profiles = defaultProfiles(s.now())
	if err := s.store.SaveProfiles(ctx, profiles); err != nil {
		return nil, fmt.Errorf("failed to seed profiles: %w", err)
	}
	s.logger.Info("seeded default student profiles", zap.Int("count", len(profiles)))
	return profiles, nil
}

// AddProfile appends a new level 1 profile
func (s *profileService) AddProfile(ctx context.Context, name string) (*models.StudentProfile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrProfileNameRequired
	}

	profiles, err := s.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}

	profile := models.StudentProfile{
		ID:         s.newID(),
		Name:       name,
		Avatar:     newProfileAvatar,
		Level:      1,
		LastActive: s.now(),
		Subjects:   []string{},
	}
	profiles = append(profiles, profile)

	if err := s.store.SaveProfiles(ctx, profiles); err != nil {
		return nil, fmt.Errorf("failed to save profiles: %w", err)
	}
	return &profile, nil
}

// RecordActivity updates the streak of a profile.
// Activity on the day after the last one extends the streak, a longer gap restarts it at 1.
// Nothing is seeded or written when the profile is not stored.
func (s *profileService) RecordActivity(ctx context.Context, profileID string, at time.Time) error {
	profiles, _, err := s.store.GetProfiles(ctx)
	if err != nil {
		return fmt.Errorf("failed to load profiles: %w", err)
	}

	idx := -1
	for i := range profiles {
		if profiles[i].ID == profileID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrProfileNotFound
	}

	p := &profiles[idx]
	gap := daysBetween(p.LastActive, at)
	switch {
	case p.Streak == 0 || gap > 1:
		p.Streak = 1
	case gap == 1:
		p.Streak++
	}
	if at.After(p.LastActive) {
		p.LastActive = at
	}

	if err := s.store.SaveProfiles(ctx, profiles); err != nil {
		return fmt.Errorf("failed to save profiles: %w", err)
	}
	return nil
}

// ResetStaleStreaks zeroes the streak of every profile inactive since before yesterday.
// It returns the number of profiles changed.
func (s *profileService) ResetStaleStreaks(ctx context.Context, now time.Time) (int, error) {
	profiles, found, err := s.store.GetProfiles(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load profiles: %w", err)
	}
	if !found {
		return 0, nil
	}

	reset := 0
	for i := range profiles {
		if profiles[i].Streak > 0 && daysBetween(profiles[i].LastActive, now) > 1 {
			profiles[i].Streak = 0
			reset++
		}
	}
	if reset == 0 {
		return 0, nil
	}

	if err := s.store.SaveProfiles(ctx, profiles); err != nil {
		return 0, fmt.Errorf("failed to save profiles: %w", err)
	}
	return reset, nil
}

// GetCurrentUser returns the user signed in on a session
func (s *profileService) GetCurrentUser(ctx context.Context, sessionID string) (*models.CurrentUser, error) {
	user, err := s.store.GetCurrentUser(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load current user: %w", err)
	}
	if user == nil {
		return nil, ErrCurrentUserNotFound
	}
	return user, nil
}

// SetCurrentUser signs a user in on a session, replacing whoever was signed in
func (s *profileService) SetCurrentUser(ctx context.Context, sessionID string, req *models.SetCurrentUserRequest) (*models.CurrentUser, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" {
		return nil, ErrNameAndEmailRequired
	}

	role := req.Role
	if role == "" {
		role = models.RoleStudent
	}
	avatar, ok := models.RoleAvatar[role]
	if !ok {
		return nil, ErrInvalidRole
	}

	user := &models.CurrentUser{
		ID:        s.newID(),
		Name:      name,
		Email:     email,
		Role:      role,
		Age:       req.Age,
		Grade:     req.Grade,
		School:    req.School,
		Avatar:    avatar,
		CreatedAt: s.now(),
	}
	if err := s.store.SaveCurrentUser(ctx, sessionID, user); err != nil {
		return nil, fmt.Errorf("failed to save current user: %w", err)
	}
	return user, nil
}

// SignOut forgets the user of a session
func (s *profileService) SignOut(ctx context.Context, sessionID string) error {
	if err := s.store.DeleteCurrentUser(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to sign out: %w", err)
	}
	return nil
}

// daysBetween counts calendar days in UTC from a to b
func daysBetween(a, b time.Time) int {
	da := time.Date(a.UTC().Year(), a.UTC().Month(), a.UTC().Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.UTC().Year(), b.UTC().Month(), b.UTC().Day(), 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}
