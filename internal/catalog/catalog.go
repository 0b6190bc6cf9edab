// Package catalog loads the lesson and quiz content shipped with the service
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/edututor/backend/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed lessons.yaml
var defaultCatalog []byte

// Catalog holds all lessons and quizzes in authoring order
type Catalog struct {
	Lessons []models.Lesson `yaml:"lessons"`
	Quizzes []models.Quiz   `yaml:"quizzes"`
}

// Default parses the embedded catalog
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// LoadFile parses a catalog from a YAML file on disk
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks ids are unique, lessons have steps and quiz answers point at an option
func (c *Catalog) Validate() error {
	seen := make(map[string]struct{}, len(c.Lessons))
	for _, l := range c.Lessons {
		if l.ID == "" {
			return fmt.Errorf("lesson %q has no id", l.Title)
		}
		if _, ok := seen[l.ID]; ok {
			return fmt.Errorf("duplicate lesson id %q", l.ID)
		}
		seen[l.ID] = struct{}{}
		if len(l.Steps) == 0 {
			return fmt.Errorf("lesson %q has no steps", l.ID)
		}
	}

	quizIDs := make(map[string]struct{}, len(c.Quizzes))
	for _, q := range c.Quizzes {
		if _, ok := quizIDs[q.ID]; ok {
			return fmt.Errorf("duplicate quiz id %q", q.ID)
		}
		quizIDs[q.ID] = struct{}{}
		for _, question := range q.Questions {
			if question.CorrectAnswer < 0 || question.CorrectAnswer >= len(question.Options) {
				return fmt.Errorf("quiz %q question %d: correct answer out of range", q.ID, question.ID)
			}
		}
	}
	return nil
}

// Lesson returns a lesson by id
func (c *Catalog) Lesson(id string) (*models.Lesson, bool) {
	for i := range c.Lessons {
		if c.Lessons[i].ID == id {
			return &c.Lessons[i], true
		}
	}
	return nil, false
}

// Quiz returns a quiz by id
func (c *Catalog) Quiz(id string) (*models.Quiz, bool) {
	for i := range c.Quizzes {
		if c.Quizzes[i].ID == id {
			return &c.Quizzes[i], true
		}
	}
	return nil, false
}

// AllLessons returns the lessons in authoring order
func (c *Catalog) AllLessons() []models.Lesson {
	return c.Lessons
}
