package core

import "time"

// User represents a registered account in the system
//
// This is the "identity" - who someone is. The password hash is the
// only credential material and must never leave the server.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Status is the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

// Valid reports whether s is one of the known task statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Task represents a unit of work owned by exactly one user.
//
// UserID is assigned at creation and never changes; every read and
// write is scoped to it.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Status      Status     `json:"status"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	UserID      string     `json:"userId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// RegisterInput contains the data needed to register a new user
type RegisterInput struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginInput contains the credentials for authentication
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult contains the authenticated user, the raw session token
// and the cookie that carries it back to the client.
type LoginResult struct {
	User   *User  `json:"user"`
	Token  string `json:"token"`
	Cookie CookieSpec
}

// CreateTaskInput contains the caller-supplied fields for a new task.
// The owner is never part of the input; it always comes from the
// authenticated principal.
type CreateTaskInput struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Status      Status     `json:"status"`
	DueDate     *time.Time `json:"dueDate"`
}

// UpdateTaskInput is a partial patch. Nil fields are left unchanged.
type UpdateTaskInput struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *Status    `json:"status"`
	DueDate     *time.Time `json:"dueDate"`
}

// TaskFilter narrows a task listing. Status and Search compose
// conjunctively; Search itself matches title OR description,
// case-insensitively.
type TaskFilter struct {
	Status *Status
	Search string
}
