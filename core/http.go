package core

import "time"

// CookieSpec is a framework-neutral cookie descriptor. Adapters
// translate it into their own cookie type before attaching it to a
// response.
type CookieSpec struct {
	Name     string
	Value    string
	Path     string
	MaxAge   int // seconds; negative clears the cookie immediately
	Expires  time.Time
	HTTPOnly bool
}

// ErrorResponse represents an error response structure
type ErrorResponse struct {
	Error string `json:"error"`
}
