package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/edututor/backend/internal/models"
	"go.uber.org/zap"
)

type progressRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewProgressRepository creates a new lesson progress repository
func NewProgressRepository(db *sql.DB, logger *zap.Logger) *progressRepository {
	return &progressRepository{
		db:     db,
		logger: logger,
	}
}

// Get returns the progress of a user in a lesson, or nil when the lesson was never started
func (r *progressRepository) Get(ctx context.Context, userID, lessonID string) (*models.LessonProgress, error) {
	query := `
		SELECT user_id, lesson_id, progress, current_step, completed, completed_at, updated_at
		FROM lesson_progress
		WHERE user_id = ? AND lesson_id = ?
	`

	p, err := scanProgress(r.db.QueryRowContext(ctx, query, userID, lessonID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("failed to get lesson progress", zap.String("user_id", userID), zap.String("lesson_id", lessonID), zap.Error(err))
		return nil, fmt.Errorf("failed to get lesson progress: %w", err)
	}

	return p, nil
}

// ListByUser returns every lesson progress row of a user
func (r *progressRepository) ListByUser(ctx context.Context, userID string) ([]models.LessonProgress, error) {
	query := `
		SELECT user_id, lesson_id, progress, current_step, completed, completed_at, updated_at
		FROM lesson_progress
		WHERE user_id = ?
		ORDER BY updated_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.logger.Error("failed to query lesson progress", zap.Error(err))
		return nil, fmt.Errorf("failed to query lesson progress: %w", err)
	}
	defer rows.Close()

	var result []models.LessonProgress
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			r.logger.Error("failed to scan lesson progress", zap.Error(err))
			return nil, fmt.Errorf("failed to scan lesson progress: %w", err)
		}
		result = append(result, *p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return result, nil
}

// Save stores the current step and progress. A completed row keeps its progress.
func (r *progressRepository) Save(ctx context.Context, p *models.LessonProgress) error {
	query := `
		INSERT INTO lesson_progress (user_id, lesson_id, progress, current_step, completed, updated_at)
		VALUES (?, ?, ?, ?, FALSE, ?)
		ON DUPLICATE KEY UPDATE
			progress = IF(completed, progress, VALUES(progress)),
			current_step = VALUES(current_step),
			updated_at = VALUES(updated_at)
	`

	if _, err := r.db.ExecContext(ctx, query, p.UserID, p.LessonID, p.Progress, p.CurrentStep, p.UpdatedAt); err != nil {
		r.logger.Error("failed to save lesson progress", zap.String("user_id", p.UserID), zap.String("lesson_id", p.LessonID), zap.Error(err))
		return fmt.Errorf("failed to save lesson progress: %w", err)
	}

	return nil
}

// Complete marks a lesson completed with progress 100.
// It reports whether this call was the first completion, later calls change nothing.
func (r *progressRepository) Complete(ctx context.Context, userID, lessonID string, currentStep int, at time.Time) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var completed bool
	err = tx.QueryRowContext(ctx, `
		SELECT completed FROM lesson_progress
		WHERE user_id = ? AND lesson_id = ?
		FOR UPDATE
	`, userID, lessonID).Scan(&completed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("failed to lock lesson progress: %w", err)
	}
	if completed {
		return false, nil
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO lesson_progress (user_id, lesson_id, progress, current_step, completed, completed_at, updated_at)
		VALUES (?, ?, 100, ?, TRUE, ?, ?)
		ON DUPLICATE KEY UPDATE
			progress = 100,
			current_step = VALUES(current_step),
			completed = TRUE,
			completed_at = VALUES(completed_at),
			updated_at = VALUES(updated_at)
	`, userID, lessonID, currentStep, at, at)
	if err != nil {
		r.logger.Error("failed to complete lesson", zap.String("user_id", userID), zap.String("lesson_id", lessonID), zap.Error(err))
		return false, fmt.Errorf("failed to complete lesson: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProgress(s rowScanner) (*models.LessonProgress, error) {
	var p models.LessonProgress
	var completedAt sql.NullTime
	if err := s.Scan(&p.UserID, &p.LessonID, &p.Progress, &p.CurrentStep, &p.Completed, &completedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if completedAt.Valid {
		t := completedAt.Time
		p.CompletedAt = &t
	}
	return &p, nil
}
