package services

import (
	"fmt"

	"github.com/taskward/taskward/core"
)

// BaseEndpoints returns framework-agnostic endpoint specifications for
// the full API surface.
//
// Adapters bind their own handlers to these paths; the documentation
// endpoint serves the metadata as-is.
func BaseEndpoints() []core.Endpoint {
	return []core.Endpoint{
		{
			Path:   "/auth/register",
			Method: "POST",
			Metadata: core.EndpointMetadata{
				OperationID: "register",
				Description: "Register a new user with email, name and password",
			},
		},
		{
			Path:   "/auth/log-in",
			Method: "POST",
			Metadata: core.EndpointMetadata{
				OperationID: "logIn",
				Description: "Authenticate with email and password and receive a session cookie",
			},
		},
		{
			Path:   "/auth",
			Method: "GET",
			Metadata: core.EndpointMetadata{
				OperationID: "authenticate",
				Description: "Get the currently authenticated user",
				Protected:   true,
			},
		},
		{
			Path:   "/auth/log-out",
			Method: "POST",
			Metadata: core.EndpointMetadata{
				OperationID: "logOut",
				Description: "Clear the session cookie",
				Protected:   true,
			},
		},
		{
			Path:   "/tasks",
			Method: "POST",
			Metadata: core.EndpointMetadata{
				OperationID: "createTask",
				Description: "Create a task owned by the caller",
				Protected:   true,
			},
		},
		{
			Path:   "/tasks",
			Method: "GET",
			Metadata: core.EndpointMetadata{
				OperationID: "listTasks",
				Description: "List owned tasks, optionally filtered by status and search term",
				Protected:   true,
			},
		},
		{
			Path:   "/tasks/:id",
			Method: "GET",
			Metadata: core.EndpointMetadata{
				OperationID: "getTask",
				Description: "Fetch one owned task",
				Protected:   true,
			},
		},
		{
			Path:   "/tasks/:id",
			Method: "PATCH",
			Metadata: core.EndpointMetadata{
				OperationID: "updateTask",
				Description: "Partially update one owned task",
				Protected:   true,
			},
		},
		{
			Path:   "/tasks/:id",
			Method: "DELETE",
			Metadata: core.EndpointMetadata{
				OperationID: "deleteTask",
				Description: "Delete one owned task",
				Protected:   true,
			},
		},
	}
}

// EndpointRegistry holds the endpoint set keyed by "METHOD:PATH" and
// rejects duplicate registrations.
type EndpointRegistry struct {
	endpoints map[string]core.Endpoint
	order     []string
}

func NewEndpointRegistry() *EndpointRegistry {
	r := &EndpointRegistry{endpoints: make(map[string]core.Endpoint)}
	for _, ep := range BaseEndpoints() {
		// Base endpoints are distinct by construction.
		_ = r.Register(ep)
	}
	return r
}

// Register adds an endpoint, failing on a duplicate METHOD:PATH pair.
func (r *EndpointRegistry) Register(ep core.Endpoint) error {
	key := ep.Method + ":" + ep.Path
	if _, exists := r.endpoints[key]; exists {
		return fmt.Errorf("endpoint conflict: %s already registered", key)
	}
	r.endpoints[key] = ep
	r.order = append(r.order, key)
	return nil
}

// Endpoints returns all endpoints in registration order.
func (r *EndpointRegistry) Endpoints() []core.Endpoint {
	out := make([]core.Endpoint, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.endpoints[key])
	}
	return out
}
