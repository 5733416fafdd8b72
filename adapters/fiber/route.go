package fiber

import (
	"github.com/gofiber/fiber/v3"

	"github.com/taskward/taskward/core"
	"github.com/taskward/taskward/services"
)

// Adapter binds the service layer to a Fiber application.
type Adapter struct {
	app       *fiber.App
	auth      core.AuthHandler
	tasks     core.TaskHandler
	endpoints *services.EndpointRegistry
}

var _ core.HTTPAdapter = (*Adapter)(nil)

func New(app *fiber.App) *Adapter {
	return &Adapter{app: app}
}

func (a *Adapter) RegisterRoutes(auth core.AuthHandler, tasks core.TaskHandler, basePath string) error {
	a.auth = auth
	a.tasks = tasks
	a.endpoints = services.NewEndpointRegistry()

	api := a.app.Group(basePath)

	// Public routes
	authGroup := api.Group("/auth")
	authGroup.Post("/register", a.register)
	authGroup.Post("/log-in", a.login)

	// Protected routes: the guard runs before each handler body and
	// rejects with 401 before any service or storage code executes.
	authGroup.Get("/", a.protect(a.currentUser))
	authGroup.Post("/log-out", a.protect(a.logout))

	taskGroup := api.Group("/tasks")
	taskGroup.Post("/", a.protect(a.createTask))
	taskGroup.Get("/", a.protect(a.listTasks))
	taskGroup.Get("/:id", a.protect(a.getTask))
	taskGroup.Patch("/:id", a.protect(a.updateTask))
	taskGroup.Delete("/:id", a.protect(a.deleteTask))

	// Plumbing
	api.Get("/health", a.health)
	api.Get("/docs", a.docs)

	return nil
}
