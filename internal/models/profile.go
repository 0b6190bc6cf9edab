package models

import "time"

// Role is the kind of account using the app
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// RoleAvatar maps a role to the avatar shown for it
var RoleAvatar = map[Role]string{
	RoleStudent: "🎓",
	RoleTeacher: "👨‍🏫",
	RoleAdmin:   "👨‍💼",
}

// StudentProfile is one card of the student profile grid
type StudentProfile struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Avatar     string    `json:"avatar"`
	Level      int       `json:"level"`
	Progress   int       `json:"progress"`
	Streak     int       `json:"streak"`
	LastActive time.Time `json:"lastActive"`
	Subjects   []string  `json:"subjects"`
}

// CreateProfileRequest represents a request to add a student profile
type CreateProfileRequest struct {
	Name string `json:"name"`
}

// CurrentUser is the signed-in user blob kept per session
type CurrentUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Age       string    `json:"age,omitempty"`
	Grade     string    `json:"grade,omitempty"`
	School    string    `json:"school,omitempty"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
}

// SetCurrentUserRequest represents the sign-in form payload
type SetCurrentUserRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Age    string `json:"age,omitempty"`
	Grade  string `json:"grade,omitempty"`
	School string `json:"school,omitempty"`
}
