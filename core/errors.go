package core

import "errors"

// Authentication Related Errors
var (
	// User errors
	ErrUserExists         = errors.New("user with this email already exists") // 409 Conflict
	ErrUserNotFound       = errors.New("user not found")                      // 401 Unauthorized
	ErrInvalidCredentials = errors.New("invalid email or password")           // 401 Unauthorized
)

// Token errors
var (
	ErrMissingAuthToken = errors.New("missing authentication token") // 401
	ErrInvalidToken     = errors.New("invalid session token")        // 401
	ErrTokenExpired     = errors.New("session token expired")        // 401
)

// Task errors
var (
	// ErrTaskNotFound deliberately covers both a nonexistent id and a
	// task owned by someone else, so a non-owner cannot probe which
	// ids exist.
	ErrTaskNotFound = errors.New("task not found or access denied") // 404
)

// Validation errors (client input)
var (
	ErrEmailRequired    = errors.New("email is required")                         // 400
	ErrInvalidEmail     = errors.New("invalid email format")                      // 400
	ErrNameRequired     = errors.New("name is required")                          // 400
	ErrNameTooShort     = errors.New("name must be at least 2 characters long")   // 400
	ErrNameTooLong      = errors.New("name cannot exceed 50 characters")          // 400
	ErrPasswordRequired = errors.New("password is required")                      // 400
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")    // 400
	ErrPasswordTooLong  = errors.New("password must be at most 20 characters")    // 400
	ErrTitleRequired    = errors.New("task title is required")                    // 400
	ErrInvalidStatus    = errors.New("status must be PENDING, IN_PROGRESS, or DONE") // 400
)

// Config errors (server-side configuration)
var (
	ErrDBAdapterRequired   = errors.New("storage adapter is required") // 500
	ErrHTTPAdapterRequired = errors.New("http adapter is required")    // 500
	ErrSecretRequired      = errors.New("signing secret is required")  // 500
	ErrSecretTooShort      = errors.New("signing secret too short")    // 500
	ErrTokenTTLRequired    = errors.New("token ttl is required")       // 500
)
