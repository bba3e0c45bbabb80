package service

import (
	"context"
	"log"
	"time"

	"taskring/internal/priority"
	"taskring/internal/repository"
)

// RefreshService recomputes the urgency tier of every active task. Runs
// once per day from the scheduler; refresh is the only writer of the
// priority field outside task creation and due-date edits.
type RefreshService struct {
	taskRepo *repository.TaskRepository
}

func NewRefreshService(taskRepo *repository.TaskRepository) *RefreshService {
	return &RefreshService{taskRepo: taskRepo}
}

// Run classifies every active task against now and persists tiers that
// changed. Each task is refreshed independently: a failed write is logged
// and skipped, never aborting the batch. Returns the number of tasks whose
// tier changed; running twice with the same now is a no-op the second time.
func (s *RefreshService) Run(ctx context.Context, now time.Time) int {
	tasks, err := s.taskRepo.ListActive(ctx)
	if err != nil {
		log.Printf("priority refresh: list tasks: %v", err)
		return 0
	}

	updated := 0
	for _, task := range tasks {
		tier := priority.Classify(task.DueDate, now)
		if tier == task.Priority {
			continue
		}
		if err := s.taskRepo.UpdatePriority(ctx, task.ID, tier); err != nil {
			log.Printf("priority refresh: task %s: %v", task.ID, err)
			continue
		}
		updated++
	}

	log.Printf("[info] priority refresh: %d of %d tasks updated", updated, len(tasks))
	return updated
}
