package services

import (
	"fmt"

	"github.com/taskward/taskward/core"
	"github.com/taskward/taskward/pkg/crypto"
)

// TaskService enforces the ownership gate on every task operation: a
// task is only ever visible or mutable to the user it was created by.
type TaskService struct {
	db     core.TaskStorage
	nanoid *crypto.NanoIDGenerator
}

// Ensure TaskService implements TaskHandler
var _ core.TaskHandler = (*TaskService)(nil)

func NewTaskService(db core.TaskStorage) *TaskService {
	return &TaskService{
		db:     db,
		nanoid: crypto.NewNanoID(),
	}
}

// List returns the owner's tasks, optionally narrowed by status and a
// case-insensitive search over title and description. Results are in
// storage order; no sorting is guaranteed.
func (s *TaskService) List(ownerID string, filter core.TaskFilter) ([]*core.Task, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, core.ErrInvalidStatus
	}
	return s.db.ListTasks(ownerID, filter)
}

// Create stores a new task owned by ownerID. Any owner-like value the
// caller might smuggle into the input is ignored; ownership always
// comes from the authenticated principal.
func (s *TaskService) Create(ownerID string, input core.CreateTaskInput) (*core.Task, error) {
	if err := core.ValidateCreateTask(input); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = core.StatusPending
	}

	id, err := s.nanoid.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate ID: %w", err)
	}

	task := &core.Task{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		DueDate:     input.DueDate,
		UserID:      ownerID,
	}

	if err := s.db.CreateTask(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// Get fetches a task by id, gated on ownership. A task that does not
// exist and a task owned by someone else return the identical error.
func (s *TaskService) Get(id, ownerID string) (*core.Task, error) {
	task, err := s.db.GetTaskByID(id)
	if err != nil {
		return nil, err
	}
	if task.UserID != ownerID {
		return nil, core.ErrTaskNotFound
	}
	return task, nil
}

// Update applies a partial patch after the ownership gate. The write
// itself is owner-conditional in storage, so a delete racing between
// the check and the write surfaces as ErrTaskNotFound rather than
// touching a foreign row.
func (s *TaskService) Update(id, ownerID string, patch core.UpdateTaskInput) (*core.Task, error) {
	if err := core.ValidateUpdateTask(patch); err != nil {
		return nil, err
	}

	task, err := s.Get(id, ownerID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = patch.Description
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.DueDate != nil {
		task.DueDate = patch.DueDate
	}

	if err := s.db.UpdateTask(task); err != nil {
		return nil, err
	}

	return task, nil
}

// Delete removes an owned task.
func (s *TaskService) Delete(id, ownerID string) error {
	if _, err := s.Get(id, ownerID); err != nil {
		return err
	}
	return s.db.DeleteTask(id, ownerID)
}
