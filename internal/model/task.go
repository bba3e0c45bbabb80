package model

import (
	"time"

	"gorm.io/gorm"

	"taskring/internal/priority"
)

// Task represents a single item a user is tracking.
type Task struct {
	ID          string `gorm:"primaryKey"`
	UserID      string `gorm:"index"`
	Title       string
	Description string
	DueDate     time.Time
	Priority    priority.Tier `gorm:"default:0"`
	Status      Status        `gorm:"default:TODO"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
