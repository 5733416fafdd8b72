package services

import (
	"errors"
	"testing"
	"time"

	"github.com/taskward/taskward/core"
)

func strPtr(s string) *string { return &s }

func statusPtr(s core.Status) *core.Status { return &s }

// Requirement: Create assigns ownership from the principal, defaults
// status to PENDING and leaves the due date absent unless supplied.
func TestTaskService_Create(t *testing.T) {
	due := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		input      core.CreateTaskInput
		wantErr    error
		wantStatus core.Status
		wantDue    *time.Time
	}{
		{
			name:       "defaults status to PENDING",
			input:      core.CreateTaskInput{Title: "Buy milk"},
			wantStatus: core.StatusPending,
		},
		{
			name:       "keeps explicit status",
			input:      core.CreateTaskInput{Title: "Buy milk", Status: core.StatusInProgress},
			wantStatus: core.StatusInProgress,
		},
		{
			name:       "keeps explicit due date",
			input:      core.CreateTaskInput{Title: "Buy milk", DueDate: &due},
			wantStatus: core.StatusPending,
			wantDue:    &due,
		},
		{
			name:    "rejects empty title",
			input:   core.CreateTaskInput{Title: ""},
			wantErr: core.ErrTitleRequired,
		},
		{
			name:    "rejects unknown status",
			input:   core.CreateTaskInput{Title: "Buy milk", Status: "SOMEDAY"},
			wantErr: core.ErrInvalidStatus,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			service := NewTaskService(NewFakeStorage())

			// Act
			task, err := service.Create("user-alice", test.input)

			// Assert
			if test.wantErr != nil {
				if !errors.Is(err, test.wantErr) {
					t.Fatalf("Create() error = %v, want %v", err, test.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if task.UserID != "user-alice" {
				t.Errorf("Create() owner = %q, want user-alice", task.UserID)
			}
			if task.Status != test.wantStatus {
				t.Errorf("Create() status = %q, want %q", task.Status, test.wantStatus)
			}
			if (task.DueDate == nil) != (test.wantDue == nil) {
				t.Errorf("Create() dueDate = %v, want %v", task.DueDate, test.wantDue)
			}
		})
	}
}

// Requirement: a created task round-trips through Get with its
// defaults intact.
func TestTaskService_CreateGetRoundTrip(t *testing.T) {
	// Arrange
	service := NewTaskService(NewFakeStorage())
	created, err := service.Create("user-alice", core.CreateTaskInput{Title: "A"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Act
	fetched, err := service.Get(created.ID, "user-alice")

	// Assert
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if fetched.Title != "A" {
		t.Errorf("Get() title = %q, want %q", fetched.Title, "A")
	}
	if fetched.Status != core.StatusPending {
		t.Errorf("Get() status = %q, want PENDING", fetched.Status)
	}
}

// Requirement: Get returns the identical error for a foreign owner's
// task and a nonexistent id, so existence cannot be probed.
func TestTaskService_Get_MergedNotFound(t *testing.T) {
	// Arrange
	service := NewTaskService(NewFakeStorage())
	created, err := service.Create("user-alice", core.CreateTaskInput{Title: "Buy milk"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Act
	_, foreignErr := service.Get(created.ID, "user-bob")
	_, missingErr := service.Get("does-not-exist", "user-bob")

	// Assert
	if !errors.Is(foreignErr, core.ErrTaskNotFound) {
		t.Errorf("foreign owner error = %v, want ErrTaskNotFound", foreignErr)
	}
	if !errors.Is(missingErr, core.ErrTaskNotFound) {
		t.Errorf("missing id error = %v, want ErrTaskNotFound", missingErr)
	}
	if foreignErr.Error() != missingErr.Error() {
		t.Error("foreign-owner and missing-id errors must be identical")
	}
}

// Requirement: List only ever returns the owner's tasks, for any
// combination of status and search filters.
func TestTaskService_List(t *testing.T) {
	seed := func(service *TaskService) {
		mustCreate := func(owner string, input core.CreateTaskInput) {
			if _, err := service.Create(owner, input); err != nil {
				panic(err)
			}
		}
		mustCreate("user-alice", core.CreateTaskInput{Title: "Buy milk"})
		mustCreate("user-alice", core.CreateTaskInput{Title: "Errands", Description: strPtr("got milk?"), Status: core.StatusDone})
		mustCreate("user-alice", core.CreateTaskInput{Title: "Buy bread", Status: core.StatusInProgress})
		mustCreate("user-bob", core.CreateTaskInput{Title: "Buy milk for bob"})
	}

	tests := []struct {
		name       string
		filter     core.TaskFilter
		wantTitles map[string]bool
	}{
		{
			name:       "no filter returns all owned",
			filter:     core.TaskFilter{},
			wantTitles: map[string]bool{"Buy milk": true, "Errands": true, "Buy bread": true},
		},
		{
			name:       "status filter",
			filter:     core.TaskFilter{Status: statusPtr(core.StatusDone)},
			wantTitles: map[string]bool{"Errands": true},
		},
		{
			name:       "search matches title and description, case-insensitively",
			filter:     core.TaskFilter{Search: "MILK"},
			wantTitles: map[string]bool{"Buy milk": true, "Errands": true},
		},
		{
			name:       "status and search compose conjunctively",
			filter:     core.TaskFilter{Status: statusPtr(core.StatusDone), Search: "milk"},
			wantTitles: map[string]bool{"Errands": true},
		},
		{
			name:       "search with no match",
			filter:     core.TaskFilter{Search: "cheese"},
			wantTitles: map[string]bool{},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			service := NewTaskService(NewFakeStorage())
			seed(service)

			// Act
			tasks, err := service.List("user-alice", test.filter)

			// Assert
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(tasks) != len(test.wantTitles) {
				t.Fatalf("List() returned %d tasks, want %d", len(tasks), len(test.wantTitles))
			}
			for _, task := range tasks {
				if task.UserID != "user-alice" {
					t.Fatalf("List() leaked a task owned by %q", task.UserID)
				}
				if !test.wantTitles[task.Title] {
					t.Errorf("List() returned unexpected task %q", task.Title)
				}
			}
		})
	}
}

// Requirement: List rejects an unknown status filter.
func TestTaskService_List_InvalidStatus(t *testing.T) {
	service := NewTaskService(NewFakeStorage())

	_, err := service.List("user-alice", core.TaskFilter{Status: statusPtr("SOMEDAY")})

	if !errors.Is(err, core.ErrInvalidStatus) {
		t.Errorf("List() error = %v, want ErrInvalidStatus", err)
	}
}

// Requirement: Update applies only the supplied fields, leaving the
// rest unchanged, and is gated on ownership.
func TestTaskService_Update(t *testing.T) {
	tests := []struct {
		name    string
		ownerID string
		patch   core.UpdateTaskInput
		wantErr error
		check   func(*testing.T, *core.Task)
	}{
		{
			name:    "updates status only",
			ownerID: "user-alice",
			patch:   core.UpdateTaskInput{Status: statusPtr(core.StatusDone)},
			check: func(t *testing.T, task *core.Task) {
				if task.Status != core.StatusDone {
					t.Errorf("status = %q, want DONE", task.Status)
				}
				if task.Title != "Buy milk" {
					t.Errorf("title = %q, should be unchanged", task.Title)
				}
			},
		},
		{
			name:    "updates title only",
			ownerID: "user-alice",
			patch:   core.UpdateTaskInput{Title: strPtr("Buy oat milk")},
			check: func(t *testing.T, task *core.Task) {
				if task.Title != "Buy oat milk" {
					t.Errorf("title = %q", task.Title)
				}
				if task.Status != core.StatusPending {
					t.Errorf("status = %q, should be unchanged", task.Status)
				}
			},
		},
		{
			name:    "rejects foreign owner",
			ownerID: "user-bob",
			patch:   core.UpdateTaskInput{Status: statusPtr(core.StatusDone)},
			wantErr: core.ErrTaskNotFound,
		},
		{
			name:    "rejects empty title patch",
			ownerID: "user-alice",
			patch:   core.UpdateTaskInput{Title: strPtr("")},
			wantErr: core.ErrTitleRequired,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			service := NewTaskService(NewFakeStorage())
			created, err := service.Create("user-alice", core.CreateTaskInput{Title: "Buy milk"})
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}

			// Act
			updated, err := service.Update(created.ID, test.ownerID, test.patch)

			// Assert
			if test.wantErr != nil {
				if !errors.Is(err, test.wantErr) {
					t.Fatalf("Update() error = %v, want %v", err, test.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Update() error = %v", err)
			}
			test.check(t, updated)
		})
	}
}

// Requirement: Delete removes an owned task and reports the merged
// not-found error for anyone else's.
func TestTaskService_Delete(t *testing.T) {
	// Arrange
	service := NewTaskService(NewFakeStorage())
	created, err := service.Create("user-alice", core.CreateTaskInput{Title: "Buy milk"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Act & Assert
	if err := service.Delete(created.ID, "user-bob"); !errors.Is(err, core.ErrTaskNotFound) {
		t.Errorf("Delete() by non-owner error = %v, want ErrTaskNotFound", err)
	}
	if _, err := service.Get(created.ID, "user-alice"); err != nil {
		t.Fatalf("task should survive a non-owner delete attempt: %v", err)
	}

	if err := service.Delete(created.ID, "user-alice"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := service.Get(created.ID, "user-alice"); !errors.Is(err, core.ErrTaskNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrTaskNotFound", err)
	}
}
