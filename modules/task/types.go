package task

import (
	"context"
	"time"
)

// TaskView is the task shape exposed to other modules. The owner id stays
// server-side; callers already know whose tasks they asked for.
type TaskView struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListTasksRequest is the request for listing a user's tasks.
type ListTasksRequest struct {
	SubjectID string `json:"subject_id"`
}

// ListTasksResponse is the response for listing a user's tasks.
type ListTasksResponse struct {
	Tasks []TaskView `json:"tasks"`
	Total int        `json:"total"`
}

// CreateTaskRequest is the request for creating a task. The title must
// already be validated and trimmed; the subject id becomes the owner.
type CreateTaskRequest struct {
	SubjectID string `json:"subject_id"`
	Title     string `json:"title"`
}

// CreateTaskResponse is the response for creating a task.
type CreateTaskResponse struct {
	Task TaskView `json:"task"`
}

// UpdateTitleRequest is the request for renaming a task.
type UpdateTitleRequest struct {
	TaskID    string `json:"task_id"`
	SubjectID string `json:"subject_id"`
	Title     string `json:"title"`
}

// UpdateTitleResponse is the response for renaming a task.
type UpdateTitleResponse struct {
	Task TaskView `json:"task"`
}

// SetCompletedRequest is the request for toggling a task's completed state.
type SetCompletedRequest struct {
	TaskID    string `json:"task_id"`
	SubjectID string `json:"subject_id"`
	Completed bool   `json:"completed"`
}

// SetCompletedResponse is the response for toggling a task's completed state.
type SetCompletedResponse struct {
	Task TaskView `json:"task"`
}

// DeleteTaskRequest is the request for deleting a task.
type DeleteTaskRequest struct {
	TaskID    string `json:"task_id"`
	SubjectID string `json:"subject_id"`
}

// DeleteTaskResponse is the response for deleting a task.
type DeleteTaskResponse struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}

// TaskPort defines the interface driving adapters use to reach the task
// module. Every operation is scoped by the caller's verified subject id.
type TaskPort interface {
	ListTasks(ctx context.Context, subjectID string) (*ListTasksResponse, error)
	CreateTask(ctx context.Context, subjectID, title string) (*TaskView, error)
	UpdateTitle(ctx context.Context, taskID, subjectID, title string) (*TaskView, error)
	SetCompleted(ctx context.Context, taskID, subjectID string, completed bool) (*TaskView, error)
	DeleteTask(ctx context.Context, taskID, subjectID string) error
}
