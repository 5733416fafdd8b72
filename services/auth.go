package services

import (
	"errors"
	"fmt"

	"github.com/taskward/taskward/core"
	"github.com/taskward/taskward/pkg/crypto"
)

// AuthService coordinates registration, credential verification and
// session issuance. It never persists or logs a plaintext password.
type AuthService struct {
	db        core.Storage
	passwords crypto.PasswordHandler
	sessions  *SessionCodec
	nanoid    *crypto.NanoIDGenerator
}

// Ensure AuthService implements AuthHandler
var _ core.AuthHandler = (*AuthService)(nil)

func NewAuthService(db core.Storage, passwords crypto.PasswordHandler, sessions *SessionCodec) *AuthService {
	return &AuthService{
		db:        db,
		passwords: passwords,
		sessions:  sessions,
		nanoid:    crypto.NewNanoID(),
	}
}

// Register creates a new user with a hashed password.
func (s *AuthService) Register(input core.RegisterInput) (*core.User, error) {
	// Step 1: Validate the payload
	if err := core.ValidateRegister(input); err != nil {
		return nil, err
	}

	// Step 2: Check if the email is already taken
	existing, err := s.db.GetUserByEmail(input.Email)
	if err != nil && !errors.Is(err, core.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, core.ErrUserExists
	}

	// Step 3: Hash the password
	hashed, err := s.passwords.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Step 4: Create the user. Storage enforces email uniqueness too,
	// so a racing duplicate still surfaces as ErrUserExists.
	id, err := s.nanoid.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate ID: %w", err)
	}

	user := &core.User{
		ID:           id,
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hashed,
	}

	if err := s.db.CreateUser(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Verify checks an email/password pair against the stored hash.
// Unknown email and wrong password produce the same error so callers
// cannot enumerate accounts.
func (s *AuthService) Verify(email, password string) (*core.User, error) {
	user, err := s.db.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			return nil, core.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	valid, err := s.passwords.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !valid {
		return nil, core.ErrInvalidCredentials
	}

	return user, nil
}

// Login authenticates the credentials and issues a session token
// wrapped in a cookie.
func (s *AuthService) Login(input core.LoginInput) (*core.LoginResult, error) {
	if err := core.ValidateLogin(input); err != nil {
		return nil, err
	}

	user, err := s.Verify(input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	token, err := s.sessions.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &core.LoginResult{
		User:   user,
		Token:  token,
		Cookie: s.sessions.SessionCookie(token),
	}, nil
}

// Logout returns the clearing cookie. There is no server-side session
// state to tear down.
func (s *AuthService) Logout() core.CookieSpec {
	return s.sessions.ClearCookie()
}

// CurrentUser resolves an already-authenticated principal to its user
// record. ErrUserNotFound means the record disappeared between token
// issuance and lookup.
func (s *AuthService) CurrentUser(userID string) (*core.User, error) {
	return s.db.GetUserByID(userID)
}

// Authenticate validates a raw session token and returns the subject
// user ID.
func (s *AuthService) Authenticate(token string) (string, error) {
	return s.sessions.Validate(token)
}
