package core

// Ports define interfaces for external dependencies

// ============================================
// STORAGE PORTS (Database operations)
// ============================================

// UserStorage defines user-related database operations
type UserStorage interface {
	// CreateUser persists a new user and fills in its timestamps.
	// Returns ErrUserExists when the email collides with an existing
	// account.
	CreateUser(u *User) error
	GetUserByID(id string) (*User, error)
	GetUserByEmail(email string) (*User, error)
}

// TaskStorage defines task-related database operations.
//
// UpdateTask and DeleteTask are owner-scoped conditional writes: they
// match on both id and owner and return ErrTaskNotFound when no row
// matches, so a check-then-act race cannot cross an ownership
// boundary.
type TaskStorage interface {
	CreateTask(t *Task) error
	GetTaskByID(id string) (*Task, error)
	ListTasks(ownerID string, filter TaskFilter) ([]*Task, error)
	UpdateTask(t *Task) error
	DeleteTask(id, ownerID string) error
}

type Storage interface {
	UserStorage
	TaskStorage
}

// ============================================
// SERVICE PORTS (for HTTP adapters)
// ============================================

// AuthHandler provides authentication operations for HTTP adapters
type AuthHandler interface {
	Register(input RegisterInput) (*User, error)
	Login(input LoginInput) (*LoginResult, error)
	Logout() CookieSpec
	CurrentUser(userID string) (*User, error)

	// Authenticate validates a session token and returns the subject
	// user ID. It is the guard's only dependency and touches no
	// storage.
	Authenticate(token string) (string, error)
}

// TaskHandler provides owner-scoped task operations for HTTP adapters.
// Every method takes the authenticated principal's user ID; no
// operation can reach a task owned by someone else.
type TaskHandler interface {
	List(ownerID string, filter TaskFilter) ([]*Task, error)
	Create(ownerID string, input CreateTaskInput) (*Task, error)
	Get(id, ownerID string) (*Task, error)
	Update(id, ownerID string, patch UpdateTaskInput) (*Task, error)
	Delete(id, ownerID string) error
}

// ============================================
// HTTP PORT
// ============================================

type HTTPAdapter interface {
	RegisterRoutes(auth AuthHandler, tasks TaskHandler, basePath string) error
}
