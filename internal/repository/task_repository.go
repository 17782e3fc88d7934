package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/durgaprameelakukkala/go-todo-app/internal/database"
	"github.com/durgaprameelakukkala/go-todo-app/internal/models"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create inserts a new task
func (r *GormTaskRepository) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// ListByUser returns the user's tasks ordered by ID
func (r *GormTaskRepository) ListByUser(ctx context.Context, userID uint64) ([]models.Task, error) {
	tasks := []models.Task{}
	if err := r.db.WithContext(ctx).
		Scopes(database.OwnedBy(userID)).
		Order("id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindOwned finds a task by ID that belongs to userID
func (r *GormTaskRepository) FindOwned(ctx context.Context, id, userID uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.WithContext(ctx).
		Scopes(database.OwnedBy(userID)).
		First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateContent replaces the content of an owned task
func (r *GormTaskRepository) UpdateContent(ctx context.Context, id, userID uint64, content string) (int64, error) {
	return r.updateOwned(ctx, id, userID, "content", content)
}

// SetCompleted sets the completion flag of an owned task
func (r *GormTaskRepository) SetCompleted(ctx context.Context, id, userID uint64, completed bool) (int64, error) {
	return r.updateOwned(ctx, id, userID, "completed", completed)
}

// Delete hard deletes an owned task
func (r *GormTaskRepository) Delete(ctx context.Context, id, userID uint64) (int64, error) {
	result := r.db.WithContext(ctx).
		Scopes(database.OwnedBy(userID)).
		Where("id = ?", id).
		Delete(&models.Task{})
	return result.RowsAffected, result.Error
}

func (r *GormTaskRepository) updateOwned(ctx context.Context, id, userID uint64, column string, value interface{}) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Scopes(database.OwnedBy(userID)).
		Where("id = ?", id).
		Update(column, value)
	return result.RowsAffected, result.Error
}
