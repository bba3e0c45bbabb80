package model

import "time"

// User stores reminder contact details. Importance orders reminder
// dispatch: 0 is contacted first, 2 last.
type User struct {
	ID          string `gorm:"primaryKey"`
	PhoneNumber string `gorm:"uniqueIndex"`
	Importance  int    `gorm:"default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
