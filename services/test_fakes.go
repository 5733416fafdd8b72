package services

import (
	"strings"
	"sync"
	"time"

	"github.com/taskward/taskward/core"
)

// FakeStorage is a test-only in-memory implementation of core.Storage.
// It mirrors the real adapter's semantics (email uniqueness, merged
// task lookups, owner-conditional writes) and exposes error fields for
// behavior injection.
type FakeStorage struct {
	mu    sync.RWMutex
	users map[string]*core.User // key: user ID
	tasks map[string]*core.Task // key: task ID

	createUserErr error
	getUserErr    error
	createTaskErr error
	listTasksErr  error
}

var _ core.Storage = (*FakeStorage)(nil)

func NewFakeStorage() *FakeStorage {
	return &FakeStorage{
		users: make(map[string]*core.User),
		tasks: make(map[string]*core.Task),
	}
}

func (f *FakeStorage) CreateUser(u *core.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createUserErr != nil {
		return f.createUserErr
	}
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return core.ErrUserExists
		}
	}

	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	f.users[u.ID] = u
	return nil
}

func (f *FakeStorage) GetUserByID(id string) (*core.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.getUserErr != nil {
		return nil, f.getUserErr
	}
	u, ok := f.users[id]
	if !ok {
		return nil, core.ErrUserNotFound
	}
	return u, nil
}

func (f *FakeStorage) GetUserByEmail(email string) (*core.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.getUserErr != nil {
		return nil, f.getUserErr
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, core.ErrUserNotFound
}

func (f *FakeStorage) CreateTask(t *core.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createTaskErr != nil {
		return f.createTaskErr
	}

	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	f.tasks[t.ID] = t
	return nil
}

func (f *FakeStorage) GetTaskByID(id string) (*core.Task, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	t, ok := f.tasks[id]
	if !ok {
		return nil, core.ErrTaskNotFound
	}
	return t, nil
}

func (f *FakeStorage) ListTasks(ownerID string, filter core.TaskFilter) ([]*core.Task, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.listTasksErr != nil {
		return nil, f.listTasksErr
	}

	var out []*core.Task
	for _, t := range f.tasks {
		if t.UserID != ownerID {
			continue
		}
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		if filter.Search != "" && !matchesSearch(t, filter.Search) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *FakeStorage) UpdateTask(t *core.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	existing, ok := f.tasks[t.ID]
	if !ok || existing.UserID != t.UserID {
		return core.ErrTaskNotFound
	}
	t.UpdatedAt = time.Now()
	f.tasks[t.ID] = t
	return nil
}

func (f *FakeStorage) DeleteTask(id, ownerID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	existing, ok := f.tasks[id]
	if !ok || existing.UserID != ownerID {
		return core.ErrTaskNotFound
	}
	delete(f.tasks, id)
	return nil
}

func matchesSearch(t *core.Task, term string) bool {
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(t.Title), term) {
		return true
	}
	return t.Description != nil && strings.Contains(strings.ToLower(*t.Description), term)
}
