package services

import (
	"context"
	"strings"

	"github.com/edututor/backend/internal/models"
	"go.uber.org/zap"
)

// LessonCatalog is the interface that wraps read access to authored lessons
type LessonCatalog interface {
	// AllLessons returns every lesson in authoring order
	AllLessons() []models.Lesson
	// Lesson returns a lesson by id, false when it does not exist
	Lesson(id string) (*models.Lesson, bool)
}

type lessonService struct {
	catalog LessonCatalog
	logger  *zap.Logger
}

// NewLessonService creates a new lesson browser service
func NewLessonService(catalog LessonCatalog, logger *zap.Logger) *lessonService {
	return &lessonService{
		catalog: catalog,
		logger:  logger,
	}
}

// List returns lessons matching the search text and subject.
//
// search matches title or description case-insensitively, an empty search matches everything.
// subject "all" or "" disables the subject filter.
func (s *lessonService) List(ctx context.Context, search, subject string) []models.LessonListItem {
	search = strings.ToLower(strings.TrimSpace(search))

	items := []models.LessonListItem{}
	for _, l := range s.catalog.AllLessons() {
		if subject != "" && subject != models.SubjectAll && l.Subject != subject {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(l.Title), search) &&
			!strings.Contains(strings.ToLower(l.Description), search) {
			continue
		}
		items = append(items, toListItem(l))
	}
	return items
}

// Subjects returns "all" followed by every distinct subject in catalog order
func (s *lessonService) Subjects(ctx context.Context) []string {
	subjects := []string{models.SubjectAll}
	seen := map[string]bool{}
	for _, l := range s.catalog.AllLessons() {
		if seen[l.Subject] {
			continue
		}
		seen[l.Subject] = true
		subjects = append(subjects, l.Subject)
	}
	return subjects
}

// Get returns a lesson with all its steps
func (s *lessonService) Get(ctx context.Context, id string) (*models.Lesson, error) {
	l, ok := s.catalog.Lesson(id)
	if !ok {
		return nil, ErrLessonNotFound
	}
	return l, nil
}

func toListItem(l models.Lesson) models.LessonListItem {
	return models.LessonListItem{
		ID:          l.ID,
		Title:       l.Title,
		Subject:     l.Subject,
		Level:       l.Level,
		Duration:    l.Duration,
		Description: l.Description,
		StepCount:   len(l.Steps),
	}
}
