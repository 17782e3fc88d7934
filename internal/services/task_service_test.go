package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/durgaprameelakukkala/go-todo-app/internal/models"
	"github.com/durgaprameelakukkala/go-todo-app/internal/repository"
)

type TaskServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	service *TaskService
	alice   *models.User
	bob     *models.User
}

func (suite *TaskServiceTestSuite) SetupTest() {
	db := setupTestDB(suite.T())
	suite.ctx = context.Background()
	suite.service = NewTaskService(repository.NewTaskRepository(db))

	users := repository.NewUserRepository(db)
	suite.alice = &models.User{Username: "alice", PasswordHash: "hashedpassword"}
	suite.bob = &models.User{Username: "bob", PasswordHash: "hashedpassword"}
	suite.Require().NoError(users.Create(suite.ctx, suite.alice))
	suite.Require().NoError(users.Create(suite.ctx, suite.bob))
}

func (suite *TaskServiceTestSuite) addTask(userID uint64, content string) *models.Task {
	task, err := suite.service.AddTask(suite.ctx, userID, content)
	suite.Require().NoError(err)
	return task
}

func (suite *TaskServiceTestSuite) list(userID uint64) []models.Task {
	tasks, err := suite.service.ListTasks(suite.ctx, userID)
	suite.Require().NoError(err)
	return tasks
}

func (suite *TaskServiceTestSuite) TestAddTask_TrimsContent() {
	task := suite.addTask(suite.alice.ID, "  write report  ")

	suite.Equal("write report", task.Content)
	suite.False(task.Completed)
	suite.Equal(suite.alice.ID, task.UserID)
}

func (suite *TaskServiceTestSuite) TestAddTask_RejectsEmptyContent() {
	suite.addTask(suite.alice.ID, "existing")

	for _, content := range []string{"", "   ", "\t\n"} {
		_, err := suite.service.AddTask(suite.ctx, suite.alice.ID, content)
		suite.ErrorIs(err, ErrContentEmpty)
	}

	suite.Len(suite.list(suite.alice.ID), 1)
}

func (suite *TaskServiceTestSuite) TestListTasks_OnlyOwnTasks() {
	suite.addTask(suite.alice.ID, "alice 1")
	suite.addTask(suite.alice.ID, "alice 2")
	suite.addTask(suite.bob.ID, "bob 1")

	aliceTasks := suite.list(suite.alice.ID)
	suite.Len(aliceTasks, 2)
	suite.Equal("alice 1", aliceTasks[0].Content)
	suite.Equal("alice 2", aliceTasks[1].Content)

	bobTasks := suite.list(suite.bob.ID)
	suite.Len(bobTasks, 1)
	suite.Equal("bob 1", bobTasks[0].Content)
}

func (suite *TaskServiceTestSuite) TestEditTask() {
	task := suite.addTask(suite.alice.ID, "draft")

	edited, err := suite.service.EditTask(suite.ctx, suite.alice.ID, task.ID, " final ")
	suite.Require().NoError(err)
	suite.Equal("final", edited.Content)

	reloaded, err := suite.service.GetTask(suite.ctx, suite.alice.ID, task.ID)
	suite.Require().NoError(err)
	suite.Equal("final", reloaded.Content)
}

func (suite *TaskServiceTestSuite) TestEditTask_RejectsEmptyContent() {
	task := suite.addTask(suite.alice.ID, "draft")

	_, err := suite.service.EditTask(suite.ctx, suite.alice.ID, task.ID, "  ")
	suite.ErrorIs(err, ErrContentEmpty)

	reloaded, err := suite.service.GetTask(suite.ctx, suite.alice.ID, task.ID)
	suite.Require().NoError(err)
	suite.Equal("draft", reloaded.Content)
}

func (suite *TaskServiceTestSuite) TestEditTask_NotOwned() {
	task := suite.addTask(suite.alice.ID, "private")

	_, err := suite.service.EditTask(suite.ctx, suite.bob.ID, task.ID, "hijacked")
	suite.ErrorIs(err, ErrTaskNotFound)

	_, err = suite.service.EditTask(suite.ctx, suite.alice.ID, task.ID+100, "missing")
	suite.ErrorIs(err, ErrTaskNotFound)

	reloaded, err := suite.service.GetTask(suite.ctx, suite.alice.ID, task.ID)
	suite.Require().NoError(err)
	suite.Equal("private", reloaded.Content)
}

func (suite *TaskServiceTestSuite) TestGetTask_NotOwned() {
	task := suite.addTask(suite.alice.ID, "private")

	_, err := suite.service.GetTask(suite.ctx, suite.bob.ID, task.ID)
	suite.ErrorIs(err, ErrTaskNotFound)
}

func (suite *TaskServiceTestSuite) TestCompleteThenUndo() {
	task := suite.addTask(suite.alice.ID, "toggle me")

	suite.Require().NoError(suite.service.CompleteTask(suite.ctx, suite.alice.ID, task.ID))
	suite.True(suite.list(suite.alice.ID)[0].Completed)

	suite.Require().NoError(suite.service.UndoTask(suite.ctx, suite.alice.ID, task.ID))
	suite.False(suite.list(suite.alice.ID)[0].Completed)
}

func (suite *TaskServiceTestSuite) TestCompleteTask_NotOwnedIsNoop() {
	task := suite.addTask(suite.alice.ID, "private")

	suite.NoError(suite.service.CompleteTask(suite.ctx, suite.bob.ID, task.ID))
	suite.False(suite.list(suite.alice.ID)[0].Completed)

	suite.Require().NoError(suite.service.CompleteTask(suite.ctx, suite.alice.ID, task.ID))
	suite.NoError(suite.service.UndoTask(suite.ctx, suite.bob.ID, task.ID))
	suite.True(suite.list(suite.alice.ID)[0].Completed)
}

func (suite *TaskServiceTestSuite) TestDeleteTask() {
	keep := suite.addTask(suite.alice.ID, "keep")
	drop := suite.addTask(suite.alice.ID, "drop")

	suite.Require().NoError(suite.service.DeleteTask(suite.ctx, suite.alice.ID, drop.ID))

	tasks := suite.list(suite.alice.ID)
	suite.Len(tasks, 1)
	suite.Equal(keep.ID, tasks[0].ID)

	_, err := suite.service.GetTask(suite.ctx, suite.alice.ID, drop.ID)
	suite.ErrorIs(err, ErrTaskNotFound)
}

func (suite *TaskServiceTestSuite) TestDeleteTask_NotOwnedIsNoop() {
	task := suite.addTask(suite.alice.ID, "private")

	suite.NoError(suite.service.DeleteTask(suite.ctx, suite.bob.ID, task.ID))
	suite.Len(suite.list(suite.alice.ID), 1)
}

func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}
