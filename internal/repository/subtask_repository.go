package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"taskring/internal/model"
)

// SubTaskRepository handles persistence for subtasks and keeps the parent
// task's aggregate status in step with subtask writes.
type SubTaskRepository struct {
	db *gorm.DB
}

func NewSubTaskRepository(db *gorm.DB) *SubTaskRepository {
	return &SubTaskRepository{db: db}
}

func (r *SubTaskRepository) Create(ctx context.Context, subTask *model.SubTask) error {
	if err := r.db.WithContext(ctx).Create(subTask).Error; err != nil {
		return fmt.Errorf("create subtask: %w", err)
	}
	return nil
}

// FindByID resolves an active subtask whose parent task is active and owned
// by the given user.
func (r *SubTaskRepository) FindByID(ctx context.Context, userID, subTaskID string) (*model.SubTask, error) {
	var subTask model.SubTask
	db := r.db.WithContext(ctx)
	if err := db.Where("id = ?", subTaskID).First(&subTask).Error; err != nil {
		return nil, translate(err)
	}
	if err := db.Where("user_id = ? AND id = ?", userID, subTask.TaskID).
		First(&model.Task{}).Error; err != nil {
		return nil, translate(err)
	}
	return &subTask, nil
}

// ListByTask returns the active subtasks of an active task owned by the
// given user.
func (r *SubTaskRepository) ListByTask(ctx context.Context, userID, taskID string) ([]model.SubTask, error) {
	db := r.db.WithContext(ctx)
	if err := db.Where("user_id = ? AND id = ?", userID, taskID).
		First(&model.Task{}).Error; err != nil {
		return nil, translate(err)
	}
	var subTasks []model.SubTask
	if err := db.Where("task_id = ?", taskID).Order("created_at ASC, id ASC").
		Find(&subTasks).Error; err != nil {
		return nil, err
	}
	return subTasks, nil
}

// SetStatus writes the subtask's completion state and recomputes the parent
// task's status from the then-current subtask set. Both writes happen in one
// transaction so concurrent toggles on siblings serialize their aggregation;
// the status a caller observes on return always reflects its own write.
func (r *SubTaskRepository) SetStatus(ctx context.Context, userID, subTaskID string, state model.CompletionState) (*model.SubTask, *model.Task, error) {
	var (
		subTask model.SubTask
		task    model.Task
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", subTaskID).First(&subTask).Error; err != nil {
			return translate(err)
		}
		if err := tx.Where("user_id = ? AND id = ?", userID, subTask.TaskID).First(&task).Error; err != nil {
			return translate(err)
		}
		if err := tx.Model(&subTask).Update("status", state).Error; err != nil {
			return fmt.Errorf("update subtask status: %w", err)
		}
		status, err := aggregateTaskStatus(tx, subTask.TaskID)
		if err != nil {
			return err
		}
		if err := tx.Model(&task).Update("status", status).Error; err != nil {
			return fmt.Errorf("update task status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &subTask, &task, nil
}

// SoftDelete marks the subtask deleted and re-aggregates the parent, since
// the deleted row no longer belongs to the aggregation input set.
func (r *SubTaskRepository) SoftDelete(ctx context.Context, userID, subTaskID string) (*model.SubTask, error) {
	var subTask model.SubTask
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", subTaskID).First(&subTask).Error; err != nil {
			return translate(err)
		}
		var task model.Task
		if err := tx.Where("user_id = ? AND id = ?", userID, subTask.TaskID).First(&task).Error; err != nil {
			return translate(err)
		}
		if err := tx.Delete(&subTask).Error; err != nil {
			return fmt.Errorf("delete subtask: %w", err)
		}
		status, err := aggregateTaskStatus(tx, subTask.TaskID)
		if err != nil {
			return err
		}
		if err := tx.Model(&task).Update("status", status).Error; err != nil {
			return fmt.Errorf("update task status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &subTask, nil
}

func aggregateTaskStatus(tx *gorm.DB, taskID string) (model.Status, error) {
	var siblings []model.SubTask
	if err := tx.Where("task_id = ?", taskID).Find(&siblings).Error; err != nil {
		return "", fmt.Errorf("list subtasks: %w", err)
	}
	states := make([]model.CompletionState, 0, len(siblings))
	for _, sibling := range siblings {
		states = append(states, sibling.Status)
	}
	return model.AggregateStatus(states), nil
}
