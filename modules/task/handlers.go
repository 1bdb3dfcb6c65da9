package task

import (
	"context"
	"fmt"

	domain "github.com/PedroM85/task-list/domain/task"
	"github.com/go-monolith/mono"
	"github.com/google/uuid"
)

// listTasks handles the list-tasks service request.
func (m *TaskModule) listTasks(_ context.Context, req ListTasksRequest, _ *mono.Msg) (ListTasksResponse, error) {
	if req.SubjectID == "" {
		return ListTasksResponse{}, fmt.Errorf("subject id is required")
	}

	tasks, err := m.repo.FindByOwner(req.SubjectID)
	if err != nil {
		return ListTasksResponse{}, err
	}

	response := ListTasksResponse{
		Tasks: make([]TaskView, 0, len(tasks)),
		Total: len(tasks),
	}
	for _, t := range tasks {
		response.Tasks = append(response.Tasks, toTaskView(t))
	}
	return response, nil
}

// createTask handles the create-task service request. The caller's verified
// subject id becomes the owner; new tasks always start out not completed.
func (m *TaskModule) createTask(_ context.Context, req CreateTaskRequest, _ *mono.Msg) (CreateTaskResponse, error) {
	if req.SubjectID == "" {
		return CreateTaskResponse{}, fmt.Errorf("subject id is required")
	}
	if req.Title == "" {
		return CreateTaskResponse{}, fmt.Errorf("title is required")
	}

	newTask := &domain.Task{
		ID:        uuid.New().String(),
		Title:     req.Title,
		Completed: false,
		UserID:    req.SubjectID,
	}

	if err := m.repo.Create(newTask); err != nil {
		return CreateTaskResponse{}, fmt.Errorf("failed to save task: %w", err)
	}

	return CreateTaskResponse{Task: toTaskView(newTask)}, nil
}

// updateTitle handles the update-title service request.
func (m *TaskModule) updateTitle(_ context.Context, req UpdateTitleRequest, _ *mono.Msg) (UpdateTitleResponse, error) {
	if req.Title == "" {
		return UpdateTitleResponse{}, fmt.Errorf("title is required")
	}

	task, err := m.repo.FindByID(req.TaskID, req.SubjectID)
	if err != nil {
		return UpdateTitleResponse{}, err
	}

	task.Title = req.Title
	if err := m.repo.Save(task); err != nil {
		return UpdateTitleResponse{}, fmt.Errorf("failed to update task: %w", err)
	}

	return UpdateTitleResponse{Task: toTaskView(task)}, nil
}

// setCompleted handles the set-completed service request. Setting the same
// state twice is a no-op on the persisted value.
func (m *TaskModule) setCompleted(_ context.Context, req SetCompletedRequest, _ *mono.Msg) (SetCompletedResponse, error) {
	task, err := m.repo.FindByID(req.TaskID, req.SubjectID)
	if err != nil {
		return SetCompletedResponse{}, err
	}

	task.Completed = req.Completed
	if err := m.repo.Save(task); err != nil {
		return SetCompletedResponse{}, fmt.Errorf("failed to update task: %w", err)
	}

	return SetCompletedResponse{Task: toTaskView(task)}, nil
}

// deleteTask handles the delete-task service request.
func (m *TaskModule) deleteTask(_ context.Context, req DeleteTaskRequest, _ *mono.Msg) (DeleteTaskResponse, error) {
	if err := m.repo.Delete(req.TaskID, req.SubjectID); err != nil {
		return DeleteTaskResponse{Deleted: false, ID: req.TaskID}, err
	}
	return DeleteTaskResponse{Deleted: true, ID: req.TaskID}, nil
}

// toTaskView converts a domain Task to its cross-module view.
func toTaskView(task *domain.Task) TaskView {
	return TaskView{
		ID:        task.ID,
		Title:     task.Title,
		Completed: task.Completed,
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}
}
