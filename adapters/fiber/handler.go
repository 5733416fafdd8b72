package fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/taskward/taskward/core"
)

// register handles POST /auth/register
func (a *Adapter) register(c fiber.Ctx) error {
	var input core.RegisterInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(core.ErrorResponse{
			Error: "invalid request body",
		})
	}

	user, err := a.auth.Register(input)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(user)
}

// login handles POST /auth/log-in
func (a *Adapter) login(c fiber.Ctx) error {
	var input core.LoginInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(core.ErrorResponse{
			Error: "invalid request body",
		})
	}

	result, err := a.auth.Login(input)
	if err != nil {
		return writeError(c, err)
	}

	setCookie(c, result.Cookie)
	return c.Status(http.StatusOK).JSON(result.User)
}

// currentUser handles GET /auth
func (a *Adapter) currentUser(c fiber.Ctx) error {
	user, err := a.auth.CurrentUser(principal(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(user)
}

// logout handles POST /auth/log-out
//
// The response carries the clearing cookie only; an already-issued
// token stays valid until its expiry.
func (a *Adapter) logout(c fiber.Ctx) error {
	setCookie(c, a.auth.Logout())
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "logged out successfully",
	})
}

// createTask handles POST /tasks
func (a *Adapter) createTask(c fiber.Ctx) error {
	var input core.CreateTaskInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(core.ErrorResponse{
			Error: "invalid request body",
		})
	}

	task, err := a.tasks.Create(principal(c), input)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(task)
}

// listTasks handles GET /tasks?status=&search=
func (a *Adapter) listTasks(c fiber.Ctx) error {
	var filter core.TaskFilter
	if raw := c.Query("status"); raw != "" {
		status := core.Status(raw)
		filter.Status = &status
	}
	filter.Search = c.Query("search")

	tasks, err := a.tasks.List(principal(c), filter)
	if err != nil {
		return writeError(c, err)
	}

	if tasks == nil {
		tasks = []*core.Task{}
	}
	return c.Status(http.StatusOK).JSON(tasks)
}

// getTask handles GET /tasks/:id
func (a *Adapter) getTask(c fiber.Ctx) error {
	task, err := a.tasks.Get(c.Params("id"), principal(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(task)
}

// updateTask handles PATCH /tasks/:id
func (a *Adapter) updateTask(c fiber.Ctx) error {
	var patch core.UpdateTaskInput
	if err := c.Bind().Body(&patch); err != nil {
		return c.Status(http.StatusBadRequest).JSON(core.ErrorResponse{
			Error: "invalid request body",
		})
	}

	task, err := a.tasks.Update(c.Params("id"), principal(c), patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(task)
}

// deleteTask handles DELETE /tasks/:id
func (a *Adapter) deleteTask(c fiber.Ctx) error {
	if err := a.tasks.Delete(c.Params("id"), principal(c)); err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Task deleted successfully.",
	})
}

// health handles GET /health
func (a *Adapter) health(c fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(fiber.Map{"status": "ok"})
}

// docs handles GET /docs with the endpoint metadata registry.
func (a *Adapter) docs(c fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(a.endpoints.Endpoints())
}

// setCookie translates a framework-neutral cookie descriptor into a
// Fiber cookie on the response.
func setCookie(c fiber.Ctx, spec core.CookieSpec) {
	c.Cookie(&fiber.Cookie{
		Name:     spec.Name,
		Value:    spec.Value,
		Path:     spec.Path,
		MaxAge:   spec.MaxAge,
		Expires:  spec.Expires,
		HTTPOnly: spec.HTTPOnly,
	})
}
