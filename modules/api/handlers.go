package api

import (
	"errors"
	"log"

	"github.com/PedroM85/task-list/modules/auth"
	"github.com/PedroM85/task-list/modules/task"
	"github.com/gofiber/fiber/v2"
)

// Handlers contains the HTTP handlers for the task routes.
type Handlers struct {
	tasks task.TaskPort
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(tasks task.TaskPort) *Handlers {
	return &Handlers{tasks: tasks}
}

// identity returns the verified identity the auth middleware attached to the
// request. Handlers behind the middleware always have one.
func identity(c *fiber.Ctx) (*auth.Identity, bool) {
	id, ok := c.Locals(IdentityContextKey).(*auth.Identity)
	return id, ok
}

// unauthenticated answers requests that somehow reached a handler without a
// verified identity.
func unauthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
		Message: "Authentication token required",
		Error:   ErrTagNoToken,
	})
}

// ListTasks handles GET /api/tasks. Only tasks owned by the caller are
// returned.
func (h *Handlers) ListTasks(c *fiber.Ctx) error {
	id, ok := identity(c)
	if !ok {
		return unauthenticated(c)
	}

	resp, err := h.tasks.ListTasks(c.UserContext(), id.SubjectID)
	if err != nil {
		return h.internalError(c, "list tasks", err)
	}

	tasks := make([]TaskResponse, 0, len(resp.Tasks))
	for _, t := range resp.Tasks {
		tasks = append(tasks, toTaskResponse(t))
	}
	return c.JSON(tasks)
}

// CreateTask handles POST /api/tasks.
func (h *Handlers) CreateTask(c *fiber.Ctx) error {
	id, ok := identity(c)
	if !ok {
		return unauthenticated(c)
	}

	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ValidationErrorResponse{
			Errors: []string{"title must be a string"},
		})
	}

	title, violations := task.ValidateTitle(req.Title)
	if len(violations) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ValidationErrorResponse{
			Errors: violations,
		})
	}

	created, err := h.tasks.CreateTask(c.UserContext(), id.SubjectID, title)
	if err != nil {
		return h.internalError(c, "create task", err)
	}

	return c.Status(fiber.StatusCreated).JSON(toTaskResponse(*created))
}

// UpdateTitle handles PUT /api/tasks/:id.
func (h *Handlers) UpdateTitle(c *fiber.Ctx) error {
	id, ok := identity(c)
	if !ok {
		return unauthenticated(c)
	}
	taskID := c.Params("id")

	var req UpdateTitleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ValidationErrorResponse{
			Errors: []string{"title must be a string"},
		})
	}

	title, violations := task.ValidateTitle(req.Title)
	if len(violations) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ValidationErrorResponse{
			Errors: violations,
		})
	}

	if _, err := h.tasks.UpdateTitle(c.UserContext(), taskID, id.SubjectID, title); err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(MessageResponse{Message: "Task not found"})
		}
		return h.internalError(c, "update task", err)
	}

	return c.JSON(SuccessResponse{Success: true})
}

// SetCompleted handles PATCH /api/tasks/:id. The completed field must be an
// explicit boolean; anything else is rejected before it reaches storage.
func (h *Handlers) SetCompleted(c *fiber.Ctx) error {
	id, ok := identity(c)
	if !ok {
		return unauthenticated(c)
	}
	taskID := c.Params("id")

	var req SetCompletedRequest
	if err := c.BodyParser(&req); err != nil || req.Completed == nil {
		return c.Status(fiber.StatusBadRequest).JSON(ValidationErrorResponse{
			Errors: []string{"completed must be a boolean"},
		})
	}

	if _, err := h.tasks.SetCompleted(c.UserContext(), taskID, id.SubjectID, *req.Completed); err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(MessageResponse{Message: "Task not found"})
		}
		return h.internalError(c, "set completed", err)
	}

	return c.JSON(SuccessResponse{Success: true})
}

// DeleteTask handles DELETE /api/tasks/:id.
func (h *Handlers) DeleteTask(c *fiber.Ctx) error {
	id, ok := identity(c)
	if !ok {
		return unauthenticated(c)
	}
	taskID := c.Params("id")

	if err := h.tasks.DeleteTask(c.UserContext(), taskID, id.SubjectID); err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(MessageResponse{Message: "Task not found"})
		}
		return h.internalError(c, "delete task", err)
	}

	return c.JSON(MessageResponse{Message: "Task deleted"})
}

// internalError logs the real failure server-side and returns a generic
// message to the client.
func (h *Handlers) internalError(c *fiber.Ctx, op string, err error) error {
	log.Printf("[api] Failed to %s: %v", op, err)
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Message: "Internal error",
	})
}

// toTaskResponse converts a cross-module task view to the client shape.
func toTaskResponse(t task.TaskView) TaskResponse {
	return TaskResponse{
		ID:        t.ID,
		Title:     t.Title,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
