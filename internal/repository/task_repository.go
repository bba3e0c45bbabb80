package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"taskring/internal/model"
	"taskring/internal/priority"
)

// TaskRepository handles persistence for tasks. Soft-deleted rows are
// filtered out of every read by gorm's DeletedAt handling.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// FindByID resolves an active task owned by the given user.
func (r *TaskRepository) FindByID(ctx context.Context, userID, taskID string) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, taskID).First(&task).Error; err != nil {
		return nil, translate(err)
	}
	return &task, nil
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID string) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("due_date ASC, id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListActive returns every non-deleted task across all users. Input to the
// priority refresh job.
func (r *TaskRepository) ListActive(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListOverdue returns non-deleted tasks whose due date is at or before now
// and whose status is not DONE. Input to the reminder dispatch job.
func (r *TaskRepository) ListOverdue(ctx context.Context, now time.Time) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("due_date <= ? AND status <> ?", now, model.StatusDone).
		Order("due_date ASC, id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdatePriority persists a recomputed urgency tier.
func (r *TaskRepository) UpdatePriority(ctx context.Context, taskID string, tier priority.Tier) error {
	if err := r.db.WithContext(ctx).Model(&model.Task{}).Where("id = ?", taskID).
		Update("priority", tier).Error; err != nil {
		return fmt.Errorf("update task priority: %w", err)
	}
	return nil
}

// UpdateDueDate writes a new due date together with its recomputed tier.
func (r *TaskRepository) UpdateDueDate(ctx context.Context, userID, taskID string, due time.Time, tier priority.Tier) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND id = ?", userID, taskID).First(&task).Error; err != nil {
			return translate(err)
		}
		updates := map[string]interface{}{
			"due_date": due,
			"priority": tier,
		}
		if err := tx.Model(&task).Updates(updates).Error; err != nil {
			return fmt.Errorf("update due date: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// SetStatus writes an explicitly chosen status. Setting DONE cascades
// completion to every active subtask of the task.
func (r *TaskRepository) SetStatus(ctx context.Context, userID, taskID string, status model.Status) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND id = ?", userID, taskID).First(&task).Error; err != nil {
			return translate(err)
		}
		if err := tx.Model(&task).Update("status", status).Error; err != nil {
			return fmt.Errorf("update task status: %w", err)
		}
		if status == model.StatusDone {
			if err := tx.Model(&model.SubTask{}).Where("task_id = ?", taskID).
				Update("status", model.Complete).Error; err != nil {
				return fmt.Errorf("complete subtasks: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// SoftDelete marks the task deleted and cascades the marker to all of its
// subtasks in the same transaction.
func (r *TaskRepository) SoftDelete(ctx context.Context, userID, taskID string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND id = ?", userID, taskID).First(&task).Error; err != nil {
			return translate(err)
		}
		if err := tx.Delete(&task).Error; err != nil {
			return fmt.Errorf("delete task: %w", err)
		}
		if err := tx.Where("task_id = ?", taskID).Delete(&model.SubTask{}).Error; err != nil {
			return fmt.Errorf("delete subtasks: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}
