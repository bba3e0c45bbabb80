package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"taskring/internal/model"
	"taskring/internal/priority"
	"taskring/internal/repository"
)

func TestRefreshRecomputesTiers(t *testing.T) {
	db := newTestDB(t)
	taskRepo := repository.NewTaskRepository(db)
	svc := NewRefreshService(taskRepo)
	ctx := context.Background()

	createdAt := date(2026, time.March, 10)
	seedTask(t, db, model.Task{
		ID: "task-today", UserID: "user-1", Title: "a", Description: "d",
		DueDate:  date(2026, time.March, 10),
		Priority: priority.Classify(date(2026, time.March, 10), createdAt),
		Status:   model.StatusTodo,
	})
	seedTask(t, db, model.Task{
		ID: "task-near", UserID: "user-1", Title: "b", Description: "d",
		DueDate:  date(2026, time.March, 13),
		Priority: priority.Classify(date(2026, time.March, 13), createdAt),
		Status:   model.StatusTodo,
	})
	seedTask(t, db, model.Task{
		ID: "task-later", UserID: "user-1", Title: "c", Description: "d",
		DueDate:  date(2026, time.March, 16),
		Priority: priority.Classify(date(2026, time.March, 16), createdAt),
		Status:   model.StatusTodo,
	})

	// Two days pass.
	runTime := date(2026, time.March, 12)
	updated := svc.Run(ctx, runTime)
	require.Equal(t, 3, updated)

	tasks, err := taskRepo.ListActive(ctx)
	require.NoError(t, err)
	for _, task := range tasks {
		require.Equal(t, priority.Classify(task.DueDate, runTime), task.Priority, "task %s", task.ID)
	}

	// Idempotent: an immediate second run changes nothing.
	require.Equal(t, 0, svc.Run(ctx, runTime))
}

func TestRefreshSkipsSoftDeletedTasks(t *testing.T) {
	db := newTestDB(t)
	taskRepo := repository.NewTaskRepository(db)
	svc := NewRefreshService(taskRepo)
	ctx := context.Background()

	seedTask(t, db, model.Task{
		ID: "task-deleted", UserID: "user-1", Title: "a", Description: "d",
		DueDate:  date(2026, time.March, 10),
		Priority: priority.TierDueToday,
		Status:   model.StatusTodo,
	})
	_, err := taskRepo.SoftDelete(ctx, "user-1", "task-deleted")
	require.NoError(t, err)

	require.Equal(t, 0, svc.Run(ctx, date(2026, time.March, 20)))

	// The deleted row keeps its stale tier.
	var stored model.Task
	require.NoError(t, db.Unscoped().Where("id = ?", "task-deleted").First(&stored).Error)
	require.Equal(t, priority.TierDueToday, stored.Priority)
}
