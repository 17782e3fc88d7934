package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/durgaprameelakukkala/go-todo-app/internal/constants"
	"github.com/durgaprameelakukkala/go-todo-app/internal/dto"
	apierrors "github.com/durgaprameelakukkala/go-todo-app/internal/errors"
	"github.com/durgaprameelakukkala/go-todo-app/internal/flash"
	"github.com/durgaprameelakukkala/go-todo-app/internal/middleware"
	"github.com/durgaprameelakukkala/go-todo-app/internal/services"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

type contentRequest struct {
	Content string `form:"content"`
}

// Index returns the current user's task list
func (h *TaskHandler) Index(c *gin.Context) {
	user, ok := middleware.GetUser(c)
	if !ok {
		apierrors.Fault(c, errors.New("index: no user in context"))
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), user.ID)
	if err != nil {
		apierrors.Fault(c, err)
		return
	}

	messages, err := flash.Pop(c)
	if err != nil {
		apierrors.Fault(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.IndexPage{
		User:    dto.ToUserDTO(*user),
		Tasks:   dto.ToTaskDTOs(tasks),
		Flashes: messages,
	})
}

// Add creates a task owned by the current user
func (h *TaskHandler) Add(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req contentRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "Invalid form data")
		return
	}

	if _, err := h.taskService.AddTask(c.Request.Context(), userID, req.Content); err != nil {
		if errors.Is(err, services.ErrContentEmpty) {
			flash.Redirect(c, constants.PathIndex, flash.CategoryWarning, "Task content cannot be empty.")
			return
		}
		apierrors.Fault(c, err)
		return
	}

	flash.Redirect(c, constants.PathIndex, flash.CategorySuccess, "Task added successfully!")
}

// Complete marks a task as done
func (h *TaskHandler) Complete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	taskID, _ := middleware.GetTaskID(c)

	if err := h.taskService.CompleteTask(c.Request.Context(), userID, taskID); err != nil {
		apierrors.Fault(c, err)
		return
	}

	flash.Redirect(c, constants.PathIndex, flash.CategoryInfo, "Task marked as complete.")
}

// Undo marks a task as not done
func (h *TaskHandler) Undo(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	taskID, _ := middleware.GetTaskID(c)

	if err := h.taskService.UndoTask(c.Request.Context(), userID, taskID); err != nil {
		apierrors.Fault(c, err)
		return
	}

	flash.Redirect(c, constants.PathIndex, flash.CategoryInfo, "Task marked as incomplete.")
}

// Delete removes a task
func (h *TaskHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	taskID, _ := middleware.GetTaskID(c)

	if err := h.taskService.DeleteTask(c.Request.Context(), userID, taskID); err != nil {
		apierrors.Fault(c, err)
		return
	}

	flash.Redirect(c, constants.PathIndex, flash.CategoryDanger, "Task deleted.")
}

// EditPage returns the content of a task for editing
func (h *TaskHandler) EditPage(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	taskID, _ := middleware.GetTaskID(c)

	task, err := h.taskService.GetTask(c.Request.Context(), userID, taskID)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			flash.Redirect(c, constants.PathIndex, flash.CategoryDanger, "Task not found or unauthorized.")
			return
		}
		apierrors.Fault(c, err)
		return
	}

	messages, err := flash.Pop(c)
	if err != nil {
		apierrors.Fault(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.EditPage{
		TaskID:  task.ID,
		Content: task.Content,
		Flashes: messages,
	})
}

// Edit updates the content of a task
func (h *TaskHandler) Edit(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	taskID, _ := middleware.GetTaskID(c)

	var req contentRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "Invalid form data")
		return
	}

	if _, err := h.taskService.EditTask(c.Request.Context(), userID, taskID, req.Content); err != nil {
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			flash.Redirect(c, constants.PathIndex, flash.CategoryDanger, "Task not found or unauthorized.")
		case errors.Is(err, services.ErrContentEmpty):
			flash.Redirect(c, fmt.Sprintf("/edit/%d", taskID), flash.CategoryDanger, "Content cannot be empty.")
		default:
			apierrors.Fault(c, err)
		}
		return
	}

	flash.Redirect(c, constants.PathIndex, flash.CategorySuccess, "Task updated successfully.")
}
