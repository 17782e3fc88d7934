package repository

import (
	"context"
	"errors"

	"github.com/durgaprameelakukkala/go-todo-app/internal/models"
)

// ErrDuplicateUsername is returned when the unique index on users.username rejects an insert.
var ErrDuplicateUsername = errors.New("user repository: username already exists")

// TaskRepository defines the interface for task data access.
// Every method is scoped to the owning user.
type TaskRepository interface {
	// Create inserts a new task
	Create(ctx context.Context, task *models.Task) error

	// ListByUser returns the user's tasks ordered by ID
	ListByUser(ctx context.Context, userID uint64) ([]models.Task, error)

	// FindOwned finds a task by ID that belongs to userID
	FindOwned(ctx context.Context, id, userID uint64) (*models.Task, error)

	// UpdateContent replaces the content of an owned task and returns the affected row count
	UpdateContent(ctx context.Context, id, userID uint64, content string) (int64, error)

	// SetCompleted sets the completion flag of an owned task and returns the affected row count
	SetCompleted(ctx context.Context, id, userID uint64, completed bool) (int64, error)

	// Delete hard deletes an owned task and returns the affected row count
	Delete(ctx context.Context, id, userID uint64) (int64, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}
