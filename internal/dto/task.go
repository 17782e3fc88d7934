package dto

import (
	"time"

	"github.com/durgaprameelakukkala/go-todo-app/internal/flash"
	"github.com/durgaprameelakukkala/go-todo-app/internal/models"
)

// UserDTO represents a user in page responses
type UserDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

// TaskDTO represents a task in page responses
type TaskDTO struct {
	ID        uint64    `json:"id"`
	Content   string    `json:"content"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IndexPage is the view model of the task list
type IndexPage struct {
	User    UserDTO         `json:"user"`
	Tasks   []TaskDTO       `json:"tasks"`
	Flashes []flash.Message `json:"flashes"`
}

// EditPage is the view model of the edit form
type EditPage struct {
	TaskID  uint64          `json:"task_id"`
	Content string          `json:"content"`
	Flashes []flash.Message `json:"flashes"`
}

// AuthPage is the view model of the login and signup forms
type AuthPage struct {
	Flashes []flash.Message `json:"flashes"`
}

// Conversion functions

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
	}
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:        task.ID,
		Content:   task.Content,
		Completed: task.Completed,
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}
}

// ToTaskDTOs converts a slice of tasks, never returning nil
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}
	return items
}
