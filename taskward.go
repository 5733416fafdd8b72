// Package taskward is a multi-user task-tracking API. Users register
// and authenticate with email/password; sessions are stateless signed
// tokens carried in an HttpOnly cookie; every task operation is scoped
// to the authenticated owner.
package taskward

import (
	"fmt"
	"time"

	"github.com/taskward/taskward/core"
	"github.com/taskward/taskward/pkg/crypto"
	"github.com/taskward/taskward/services"
)

// interfaces
type (
	Storage     = core.Storage
	TaskStorage = core.TaskStorage
	UserStorage = core.UserStorage

	HTTPAdapter = core.HTTPAdapter

	AuthHandler = core.AuthHandler
	TaskHandler = core.TaskHandler

	PasswordHandler = crypto.PasswordHandler
)

// structs
type (
	User       = core.User
	Task       = core.Task
	Status     = core.Status
	CookieSpec = core.CookieSpec

	RegisterInput   = core.RegisterInput
	LoginInput      = core.LoginInput
	LoginResult     = core.LoginResult
	CreateTaskInput = core.CreateTaskInput
	UpdateTaskInput = core.UpdateTaskInput
	TaskFilter      = core.TaskFilter
)

const (
	StatusPending    = core.StatusPending
	StatusInProgress = core.StatusInProgress
	StatusDone       = core.StatusDone

	SessionCookieName = services.SessionCookieName
)

var (
	ErrUserExists         = core.ErrUserExists
	ErrUserNotFound       = core.ErrUserNotFound
	ErrInvalidCredentials = core.ErrInvalidCredentials
)

var (
	ErrMissingAuthToken = core.ErrMissingAuthToken
	ErrInvalidToken     = core.ErrInvalidToken
	ErrTokenExpired     = core.ErrTokenExpired
	ErrTaskNotFound     = core.ErrTaskNotFound
)

var (
	ErrDBAdapterRequired   = core.ErrDBAdapterRequired
	ErrHTTPAdapterRequired = core.ErrHTTPAdapterRequired
	ErrSecretRequired      = core.ErrSecretRequired
	ErrSecretTooShort      = core.ErrSecretTooShort
	ErrTokenTTLRequired    = core.ErrTokenTTLRequired
)

// Constructors & helpers (convenience re-exports)
var (
	NewArgon2 = crypto.NewArgon2
)

const defaultSecretLen = 32

// Config carries everything the core needs at startup. Secret and
// TokenTTL have no defaults: an auth system must never silently run
// without a signing key or an unbounded token lifetime.
type Config struct {
	Secret   string
	TokenTTL time.Duration

	Database core.Storage
	HTTP     core.HTTPAdapter

	// Optional config
	PasswordHasher crypto.PasswordHandler
	BasePath       string
}

// Taskward holds the wired service layer.
type Taskward struct {
	Auth  *services.AuthService
	Tasks *services.TaskService

	Sessions *services.SessionCodec
	BasePath string
}

func New(config Config) (*Taskward, error) {
	if config.Secret == "" {
		return nil, ErrSecretRequired
	}
	if len(config.Secret) < defaultSecretLen {
		return nil, fmt.Errorf("%w - minimum of %d characters", ErrSecretTooShort, defaultSecretLen)
	}
	if config.TokenTTL <= 0 {
		return nil, ErrTokenTTLRequired
	}
	if config.Database == nil {
		return nil, ErrDBAdapterRequired
	}
	if config.HTTP == nil {
		return nil, ErrHTTPAdapterRequired
	}

	// Set Defaults

	passwordHasher := config.PasswordHasher
	if passwordHasher == nil {
		passwordHasher = crypto.NewArgon2()
	}

	sessions := services.NewSessionCodec(config.Secret, config.TokenTTL)
	auth := services.NewAuthService(config.Database, passwordHasher, sessions)
	tasks := services.NewTaskService(config.Database)

	tw := &Taskward{
		Auth:     auth,
		Tasks:    tasks,
		Sessions: sessions,
		BasePath: config.BasePath,
	}

	if err := config.HTTP.RegisterRoutes(auth, tasks, config.BasePath); err != nil {
		return nil, err
	}

	return tw, nil
}
