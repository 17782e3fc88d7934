package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/durgaprameelakukkala/go-todo-app/internal/models"
	"github.com/durgaprameelakukkala/go-todo-app/internal/repository"
)

var (
	ErrTaskNotFound = errors.New("task not found or unauthorized")
	ErrContentEmpty = errors.New("task content cannot be empty")
)

// TaskService handles task business logic. Every operation is scoped
// to the user passed in, so one user never reaches another user's task.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// ListTasks returns all tasks owned by userID
func (s *TaskService) ListTasks(ctx context.Context, userID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// AddTask creates a new incomplete task for userID
func (s *TaskService) AddTask(ctx context.Context, userID uint64, content string) (*models.Task, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrContentEmpty
	}

	task := &models.Task{
		Content: content,
		UserID:  userID,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// GetTask returns a task owned by userID
func (s *TaskService) GetTask(ctx context.Context, userID, taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindOwned(ctx, taskID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// EditTask replaces the content of a task owned by userID
func (s *TaskService) EditTask(ctx context.Context, userID, taskID uint64, content string) (*models.Task, error) {
	task, err := s.GetTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrContentEmpty
	}

	if _, err := s.taskRepo.UpdateContent(ctx, task.ID, userID, content); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	task.Content = content
	return task, nil
}

// CompleteTask marks a task as completed. Tasks not owned by userID are left untouched.
func (s *TaskService) CompleteTask(ctx context.Context, userID, taskID uint64) error {
	return s.setCompleted(ctx, userID, taskID, true)
}

// UndoTask marks a task as incomplete. Tasks not owned by userID are left untouched.
func (s *TaskService) UndoTask(ctx context.Context, userID, taskID uint64) error {
	return s.setCompleted(ctx, userID, taskID, false)
}

// DeleteTask permanently removes a task. Tasks not owned by userID are left untouched.
func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID uint64) error {
	if _, err := s.taskRepo.Delete(ctx, taskID, userID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

func (s *TaskService) setCompleted(ctx context.Context, userID, taskID uint64, completed bool) error {
	if _, err := s.taskRepo.SetCompleted(ctx, taskID, userID, completed); err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}
	return nil
}
