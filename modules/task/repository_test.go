package task

import (
	"errors"
	"testing"

	domain "github.com/PedroM85/task-list/domain/task"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&domain.Task{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func newTestTask(ownerID, title string) *domain.Task {
	return &domain.Task{
		ID:     uuid.New().String(),
		Title:  title,
		UserID: ownerID,
	}
}

func TestRepository_CreateAndFindByOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	created := newTestTask("u1", "Buy milk")
	if err := repo.Create(created); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	tasks, err := repo.FindByOwner("u1")
	if err != nil {
		t.Fatalf("FindByOwner() error = %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].Title != "Buy milk" {
		t.Errorf("expected title %q, got %q", "Buy milk", tasks[0].Title)
	}
	if tasks[0].Completed {
		t.Error("new task should not be completed")
	}
}

func TestRepository_FindByOwner_ScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	for _, task := range []*domain.Task{
		newTestTask("u1", "First for u1"),
		newTestTask("u1", "Second for u1"),
		newTestTask("u2", "Only for u2"),
	} {
		if err := repo.Create(task); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	tasks, err := repo.FindByOwner("u1")
	if err != nil {
		t.Fatalf("FindByOwner() error = %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks for u1, got %d", len(tasks))
	}
	for _, task := range tasks {
		if task.UserID != "u1" {
			t.Errorf("task %s owned by %q leaked into u1's list", task.ID, task.UserID)
		}
	}

	empty, err := repo.FindByOwner("u3")
	if err != nil {
		t.Fatalf("FindByOwner() error = %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected no tasks for unknown owner, got %d", len(empty))
	}
}

func TestRepository_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	task := newTestTask("u1", "Find me")
	if err := repo.Create(task); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("owner can find own task", func(t *testing.T) {
		found, err := repo.FindByID(task.ID, "u1")
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}
		if found.ID != task.ID {
			t.Errorf("expected ID %q, got %q", task.ID, found.ID)
		}
	})

	t.Run("other owner gets not found", func(t *testing.T) {
		_, err := repo.FindByID(task.ID, "u2")
		if !errors.Is(err, ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound for cross-owner access, got %v", err)
		}
	})

	t.Run("unknown id gets not found", func(t *testing.T) {
		_, err := repo.FindByID("no-such-id", "u1")
		if !errors.Is(err, ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})
}

func TestRepository_SaveCompleted_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	task := newTestTask("u1", "Toggle me")
	if err := repo.Create(task); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Set completed twice in a row; persisted state must match a single set.
	for i := 0; i < 2; i++ {
		found, err := repo.FindByID(task.ID, "u1")
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}
		found.Completed = true
		if err := repo.Save(found); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	found, err := repo.FindByID(task.ID, "u1")
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if !found.Completed {
		t.Error("expected task to be completed")
	}

	var count int64
	if err := db.Model(&domain.Task{}).Where("user_id = ?", "u1").Count(&count).Error; err != nil {
		t.Fatalf("count error = %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 row, got %d", count)
	}
}

func TestRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	task := newTestTask("u1", "Delete me")
	if err := repo.Create(task); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("other owner cannot delete", func(t *testing.T) {
		err := repo.Delete(task.ID, "u2")
		if !errors.Is(err, ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound for cross-owner delete, got %v", err)
		}
		if _, err := repo.FindByID(task.ID, "u1"); err != nil {
			t.Errorf("task should still exist after failed delete, got %v", err)
		}
	})

	t.Run("owner deletes own task", func(t *testing.T) {
		if err := repo.Delete(task.ID, "u1"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if _, err := repo.FindByID(task.ID, "u1"); !errors.Is(err, ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound after delete, got %v", err)
		}
	})

	t.Run("delete non-existent task", func(t *testing.T) {
		err := repo.Delete("no-such-id", "u1")
		if !errors.Is(err, ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})
}
