package services

import "errors"

var (
	ErrLessonNotFound       = errors.New("lesson not found")
	ErrQuizNotFound         = errors.New("quiz not found")
	ErrInvalidProgress      = errors.New("progress must be between 0 and 100")
	ErrUserIDRequired       = errors.New("user id is required")
	ErrProfileNameRequired  = errors.New("name is required")
	ErrProfileNotFound      = errors.New("profile not found")
	ErrCurrentUserNotFound  = errors.New("no user signed in for this session")
	ErrNameAndEmailRequired = errors.New("name and email are required")
	ErrInvalidRole          = errors.New("role must be student, teacher or admin")
	ErrInvalidSubmission    = errors.New("invalid quiz submission")
)
