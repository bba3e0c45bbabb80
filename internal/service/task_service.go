package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"taskring/internal/model"
	"taskring/internal/priority"
	"taskring/internal/repository"
)

var (
	ErrTitleRequired       = errors.New("title is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrPastDueDate         = errors.New("due date cannot be in the past")
)

// TaskInput represents data required to create a task. DueDate is a
// canonical YYYY-MM-DD string.
type TaskInput struct {
	Title       string
	Description string
	DueDate     string
}

// TaskService wraps task-related business logic.
type TaskService struct {
	taskRepo *repository.TaskRepository
}

func NewTaskService(taskRepo *repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// CreateTask validates the input and persists a new task with its urgency
// tier computed at creation time. New tasks start in TODO.
func (s *TaskService) CreateTask(ctx context.Context, userID string, input TaskInput, now time.Time) (*model.Task, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}
	if input.Description == "" {
		return nil, ErrDescriptionRequired
	}

	due, err := validateDueDate(input.DueDate, now)
	if err != nil {
		return nil, err
	}

	task := model.Task{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		DueDate:     due,
		Priority:    priority.Classify(due, now),
		Status:      model.StatusTodo,
	}

	if err := s.taskRepo.Create(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) GetTask(ctx context.Context, userID, taskID string) (*model.Task, error) {
	return s.taskRepo.FindByID(ctx, userID, taskID)
}

func (s *TaskService) ListTasks(ctx context.Context, userID string) ([]model.Task, error) {
	return s.taskRepo.ListByUser(ctx, userID)
}

// UpdateDueDate moves a task's due date, applying the same validation as
// creation and recomputing the urgency tier in the same write.
func (s *TaskService) UpdateDueDate(ctx context.Context, userID, taskID, dueDate string, now time.Time) (*model.Task, error) {
	due, err := validateDueDate(dueDate, now)
	if err != nil {
		return nil, err
	}
	return s.taskRepo.UpdateDueDate(ctx, userID, taskID, due, priority.Classify(due, now))
}

// SetStatus force-sets a task's status by explicit owner action. Setting
// DONE completes every active subtask of the task; the reverse direction
// (subtask toggles driving the task status) lives in SubTaskService.
func (s *TaskService) SetStatus(ctx context.Context, userID, taskID, rawStatus string) (*model.Task, error) {
	status, err := model.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	return s.taskRepo.SetStatus(ctx, userID, taskID, status)
}

// DeleteTask soft-deletes a task together with all of its subtasks.
func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID string) (*model.Task, error) {
	return s.taskRepo.SoftDelete(ctx, userID, taskID)
}

func validateDueDate(raw string, now time.Time) (time.Time, error) {
	due, err := priority.ParseDate(raw)
	if err != nil {
		return time.Time{}, err
	}
	if !priority.IsNotPastDate(due, now) {
		return time.Time{}, fmt.Errorf("%w: %s", ErrPastDueDate, raw)
	}
	return due, nil
}
