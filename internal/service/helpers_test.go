package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"taskring/internal/model"
	"taskring/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := repository.NewDB(filepath.Join(t.TempDir(), "taskring_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedUser(t *testing.T, db *gorm.DB, id, phone string, importance int) {
	t.Helper()
	repo := repository.NewUserRepository(db)
	require.NoError(t, repo.Create(context.Background(), &model.User{
		ID:          id,
		PhoneNumber: phone,
		Importance:  importance,
	}))
}

// seedTask writes a task directly, bypassing service validation. Needed for
// overdue fixtures that CreateTask would reject.
func seedTask(t *testing.T, db *gorm.DB, task model.Task) {
	t.Helper()
	repo := repository.NewTaskRepository(db)
	require.NoError(t, repo.Create(context.Background(), &task))
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
