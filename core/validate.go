package core

import "regexp"

// Input validation is explicit: each endpoint's payload runs through a
// plain function before any service logic, matching one sentinel error
// per failure. Bounds mirror the registration rules enforced at the
// HTTP boundary (name 2-50 characters, password 6-20).

const (
	minNameLen     = 2
	maxNameLen     = 50
	minPasswordLen = 6
	maxPasswordLen = 20
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateRegister checks a registration payload.
func ValidateRegister(input RegisterInput) error {
	if input.Email == "" {
		return ErrEmailRequired
	}
	if !emailPattern.MatchString(input.Email) {
		return ErrInvalidEmail
	}
	if input.Name == "" {
		return ErrNameRequired
	}
	if len(input.Name) < minNameLen {
		return ErrNameTooShort
	}
	if len(input.Name) > maxNameLen {
		return ErrNameTooLong
	}
	return validatePassword(input.Password)
}

// ValidateLogin checks a login payload. Format errors only; whether
// the credentials match is the verifier's business.
func ValidateLogin(input LoginInput) error {
	if input.Email == "" {
		return ErrEmailRequired
	}
	if input.Password == "" {
		return ErrPasswordRequired
	}
	return nil
}

// ValidateCreateTask checks a task creation payload. Status is
// optional; an empty value defaults to PENDING downstream.
func ValidateCreateTask(input CreateTaskInput) error {
	if input.Title == "" {
		return ErrTitleRequired
	}
	if input.Status != "" && !input.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

// ValidateUpdateTask checks a task patch. Only fields that are present
// are validated; nil means "leave unchanged".
func ValidateUpdateTask(patch UpdateTaskInput) error {
	if patch.Title != nil && *patch.Title == "" {
		return ErrTitleRequired
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	if len(password) < minPasswordLen {
		return ErrPasswordTooShort
	}
	if len(password) > maxPasswordLen {
		return ErrPasswordTooLong
	}
	return nil
}
