package model

import (
	"time"

	"gorm.io/gorm"
)

// SubTask is a child step of a Task. Toggling its completion state drives
// the parent task's aggregate status.
type SubTask struct {
	ID          string `gorm:"primaryKey"`
	TaskID      string `gorm:"index"`
	Title       string
	Description string
	Status      CompletionState `gorm:"default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
