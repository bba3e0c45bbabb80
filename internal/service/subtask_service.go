package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"taskring/internal/model"
	"taskring/internal/repository"
)

var ErrTaskRequired = errors.New("task id is required")

// SubTaskInput represents data required to create a subtask.
type SubTaskInput struct {
	TaskID      string
	Title       string
	Description string
}

// SubTaskService wraps subtask business logic. Every completion-state write
// goes through SetStatus so the parent task's aggregate status is updated
// before the call returns.
type SubTaskService struct {
	subTaskRepo *repository.SubTaskRepository
	taskRepo    *repository.TaskRepository
}

func NewSubTaskService(subTaskRepo *repository.SubTaskRepository, taskRepo *repository.TaskRepository) *SubTaskService {
	return &SubTaskService{subTaskRepo: subTaskRepo, taskRepo: taskRepo}
}

// CreateSubTask creates a subtask under an active task owned by the calling
// user. Ownership is enforced here, at creation.
func (s *SubTaskService) CreateSubTask(ctx context.Context, userID string, input SubTaskInput) (*model.SubTask, error) {
	if input.TaskID == "" {
		return nil, ErrTaskRequired
	}
	if input.Title == "" {
		return nil, ErrTitleRequired
	}
	if input.Description == "" {
		return nil, ErrDescriptionRequired
	}

	if _, err := s.taskRepo.FindByID(ctx, userID, input.TaskID); err != nil {
		return nil, err
	}

	subTask := model.SubTask{
		ID:          uuid.NewString(),
		TaskID:      input.TaskID,
		Title:       input.Title,
		Description: input.Description,
		Status:      model.Incomplete,
	}

	if err := s.subTaskRepo.Create(ctx, &subTask); err != nil {
		return nil, err
	}
	return &subTask, nil
}

func (s *SubTaskService) GetSubTask(ctx context.Context, userID, subTaskID string) (*model.SubTask, error) {
	return s.subTaskRepo.FindByID(ctx, userID, subTaskID)
}

func (s *SubTaskService) ListByTask(ctx context.Context, userID, taskID string) ([]model.SubTask, error) {
	return s.subTaskRepo.ListByTask(ctx, userID, taskID)
}

// SetStatus toggles a subtask's completion state and returns both the
// updated subtask and its parent task with the freshly aggregated status.
func (s *SubTaskService) SetStatus(ctx context.Context, userID, subTaskID string, rawState int) (*model.SubTask, *model.Task, error) {
	state, err := model.ParseCompletionState(rawState)
	if err != nil {
		return nil, nil, err
	}
	return s.subTaskRepo.SetStatus(ctx, userID, subTaskID, state)
}

// DeleteSubTask soft-deletes a subtask and re-aggregates the parent task's
// status over the remaining active subtasks.
func (s *SubTaskService) DeleteSubTask(ctx context.Context, userID, subTaskID string) (*model.SubTask, error) {
	return s.subTaskRepo.SoftDelete(ctx, userID, subTaskID)
}
