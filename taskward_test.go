package taskward

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/taskward/taskward/core"
	"github.com/taskward/taskward/services"
)

// dummy HTTP adapter
type dummyHTTP struct {
	registered bool
	basePath   string
	err        error
}

func (d *dummyHTTP) RegisterRoutes(auth core.AuthHandler, tasks core.TaskHandler, basePath string) error {
	d.registered = true
	d.basePath = basePath
	return d.err
}

// Requirement: New rejects incomplete configuration with the matching
// sentinel instead of limping along with defaults.
func TestNewShouldValidateConfig(t *testing.T) {
	storage := services.NewFakeStorage()
	adapter := &dummyHTTP{}

	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "missing secret",
			config:  Config{TokenTTL: time.Hour, Database: storage, HTTP: adapter},
			wantErr: ErrSecretRequired,
		},
		{
			name:    "secret too short",
			config:  Config{Secret: "short-secret", TokenTTL: time.Hour, Database: storage, HTTP: adapter},
			wantErr: ErrSecretTooShort,
		},
		{
			name:    "missing token ttl",
			config:  Config{Secret: "01234567890123456789012345678901", Database: storage, HTTP: adapter},
			wantErr: ErrTokenTTLRequired,
		},
		{
			name:    "missing database adapter",
			config:  Config{Secret: "01234567890123456789012345678901", TokenTTL: time.Hour, HTTP: adapter},
			wantErr: ErrDBAdapterRequired,
		},
		{
			name:    "missing http adapter",
			config:  Config{Secret: "01234567890123456789012345678901", TokenTTL: time.Hour, Database: storage},
			wantErr: ErrHTTPAdapterRequired,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			_, err := New(test.config)
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("expected %v sentinel (errors.Is), got %v", test.wantErr, err)
			}
		})
	}
}

func TestNewShouldReturnErrSecretTooShortWithMinimum(t *testing.T) {
	cfg := Config{
		Secret:   "short-secret",
		TokenTTL: time.Hour,
		Database: services.NewFakeStorage(),
		HTTP:     &dummyHTTP{},
	}

	_, err := New(cfg)
	if !errors.Is(err, ErrSecretTooShort) {
		t.Fatalf("expected ErrSecretTooShort sentinel (errors.Is), got %v", err)
	}
	// Message should include the minimum length
	if !strings.Contains(err.Error(), "32") {
		t.Fatalf("expected error message to include minimum length, got %v", err)
	}
}

func TestNewShouldWireServicesAndRegisterRoutes(t *testing.T) {
	adapter := &dummyHTTP{}
	cfg := Config{
		Secret:   "01234567890123456789012345678901",
		TokenTTL: time.Hour,
		Database: services.NewFakeStorage(),
		HTTP:     adapter,
		BasePath: "/api/v1",
	}

	tw, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if tw.Auth == nil || tw.Tasks == nil || tw.Sessions == nil {
		t.Fatal("expected all services to be wired")
	}
	if !adapter.registered {
		t.Fatal("expected RegisterRoutes to be called")
	}
	if adapter.basePath != "/api/v1" {
		t.Fatalf("expected base path to reach the adapter, got %q", adapter.basePath)
	}

	// The wired services share one storage: a registered user is
	// visible through Auth immediately.
	registered, err := tw.Auth.Register(RegisterInput{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "pw123456",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	current, err := tw.Auth.CurrentUser(registered.ID)
	if err != nil {
		t.Fatalf("CurrentUser failed: %v", err)
	}
	if current.Email != "alice@example.com" {
		t.Fatalf("expected registered user back, got %q", current.Email)
	}
}

func TestNewShouldPropagateAdapterError(t *testing.T) {
	wantErr := errors.New("route conflict")
	cfg := Config{
		Secret:   "01234567890123456789012345678901",
		TokenTTL: time.Hour,
		Database: services.NewFakeStorage(),
		HTTP:     &dummyHTTP{err: wantErr},
	}

	_, err := New(cfg)
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected adapter error to propagate, got %v", err)
	}
}
