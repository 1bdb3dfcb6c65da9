package task

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// taskAdapter implements TaskPort over the service container.
type taskAdapter struct {
	container mono.ServiceContainer
}

// NewTaskAdapter creates a new adapter for task services.
func NewTaskAdapter(container mono.ServiceContainer) TaskPort {
	if container == nil {
		panic("task adapter requires non-nil ServiceContainer")
	}
	return &taskAdapter{container: container}
}

// ListTasks lists the tasks owned by the given subject.
func (a *taskAdapter) ListTasks(ctx context.Context, subjectID string) (*ListTasksResponse, error) {
	req := ListTasksRequest{SubjectID: subjectID}
	var resp ListTasksResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "list-tasks", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("list-tasks service call failed: %w", err)
	}
	return &resp, nil
}

// CreateTask creates a task owned by the given subject.
func (a *taskAdapter) CreateTask(ctx context.Context, subjectID, title string) (*TaskView, error) {
	req := CreateTaskRequest{SubjectID: subjectID, Title: title}
	var resp CreateTaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "create-task", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("create-task service call failed: %w", err)
	}
	return &resp.Task, nil
}

// UpdateTitle renames a task owned by the given subject.
func (a *taskAdapter) UpdateTitle(ctx context.Context, taskID, subjectID, title string) (*TaskView, error) {
	req := UpdateTitleRequest{TaskID: taskID, SubjectID: subjectID, Title: title}
	var resp UpdateTitleResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "update-title", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, mapServiceError("update-title", err)
	}
	return &resp.Task, nil
}

// SetCompleted sets the completed state of a task owned by the given subject.
func (a *taskAdapter) SetCompleted(ctx context.Context, taskID, subjectID string, completed bool) (*TaskView, error) {
	req := SetCompletedRequest{TaskID: taskID, SubjectID: subjectID, Completed: completed}
	var resp SetCompletedResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "set-completed", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, mapServiceError("set-completed", err)
	}
	return &resp.Task, nil
}

// DeleteTask deletes a task owned by the given subject.
func (a *taskAdapter) DeleteTask(ctx context.Context, taskID, subjectID string) error {
	req := DeleteTaskRequest{TaskID: taskID, SubjectID: subjectID}
	var resp DeleteTaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "delete-task", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return mapServiceError("delete-task", err)
	}
	if !resp.Deleted {
		return ErrTaskNotFound
	}
	return nil
}

// mapServiceError restores the not-found classification lost when an error
// crosses the service boundary as a plain message.
func mapServiceError(service string, err error) error {
	if strings.Contains(err.Error(), ErrTaskNotFound.Error()) {
		return ErrTaskNotFound
	}
	return fmt.Errorf("%s service call failed: %w", service, err)
}
