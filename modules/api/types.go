package api

import "time"

// TaskResponse is the task shape returned to clients. The owner id is
// stored server-side only and never exposed.
type TaskResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateTaskRequest is the body of POST /api/tasks.
type CreateTaskRequest struct {
	Title string `json:"title"`
}

// UpdateTitleRequest is the body of PUT /api/tasks/:id.
type UpdateTitleRequest struct {
	Title string `json:"title"`
}

// SetCompletedRequest is the body of PATCH /api/tasks/:id. The pointer
// distinguishes a missing or non-boolean field from an explicit false.
type SetCompletedRequest struct {
	Completed *bool `json:"completed"`
}

// SuccessResponse is the body of successful update operations.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// MessageResponse carries a human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse carries one or more field-level violations.
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// ErrorResponse is the error shape for auth and internal failures. The
// machine-readable tag lets clients react to specific auth states.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}

// Auth failure tags. Clients treat ErrTagExpired as "re-authenticate",
// everything else as a hard rejection.
const (
	ErrTagNoToken      = "auth/no-token"
	ErrTagTokenExpired = "auth/id-token-expired"
	ErrTagTokenInvalid = "auth/invalid-token"
)
