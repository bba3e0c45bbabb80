package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"taskring/internal/model"
	"taskring/internal/notify"
	"taskring/internal/repository"
)

// DispatchResult records one reminder attempt.
type DispatchResult struct {
	UserID string
	TaskID string
	Err    error
}

// DispatchReport summarizes a single dispatch run.
type DispatchReport struct {
	Attempted int
	Results   []DispatchResult
}

func (r DispatchReport) Failed() int {
	failed := 0
	for _, result := range r.Results {
		if result.Err != nil {
			failed++
		}
	}
	return failed
}

// DispatchService places one reminder call per user holding an overdue,
// unfinished task. Runs once per day from the scheduler.
type DispatchService struct {
	taskRepo *repository.TaskRepository
	userRepo *repository.UserRepository
	notifier notify.Notifier
}

func NewDispatchService(taskRepo *repository.TaskRepository, userRepo *repository.UserRepository, notifier notify.Notifier) *DispatchService {
	return &DispatchService{taskRepo: taskRepo, userRepo: userRepo, notifier: notifier}
}

// Run selects active tasks due at or before now that are not DONE, orders
// their owners by importance (0 first), and dispatches one reminder per
// user, sequentially. Each dispatch is isolated: a failure is recorded in
// the report and logged, and the loop continues with the next user. Every
// qualifying user is attempted exactly once per run; there are no retries.
func (s *DispatchService) Run(ctx context.Context, now time.Time) DispatchReport {
	var report DispatchReport

	tasks, err := s.taskRepo.ListOverdue(ctx, now)
	if err != nil {
		log.Printf("reminder dispatch: list overdue tasks: %v", err)
		return report
	}
	if len(tasks) == 0 {
		log.Println("[info] reminder dispatch: no overdue tasks")
		return report
	}

	// One task per user: earliest due date wins, then smallest ID.
	picked := make(map[string]model.Task)
	userIDs := make([]string, 0, len(tasks))
	for _, task := range tasks {
		current, ok := picked[task.UserID]
		if !ok {
			picked[task.UserID] = task
			userIDs = append(userIDs, task.UserID)
			continue
		}
		if task.DueDate.Before(current.DueDate) ||
			(task.DueDate.Equal(current.DueDate) && task.ID < current.ID) {
			picked[task.UserID] = task
		}
	}

	users, err := s.userRepo.FindByIDs(ctx, userIDs)
	if err != nil {
		log.Printf("reminder dispatch: find users: %v", err)
		return report
	}

	for _, user := range users {
		task := picked[user.ID]
		message := fmt.Sprintf("Hello this is a reminder for your task %s", task.Title)

		report.Attempted++
		err := s.notifier.SendReminder(ctx, user.PhoneNumber, message)
		if err != nil {
			log.Printf("reminder dispatch: user %s: %v", user.ID, err)
		}
		report.Results = append(report.Results, DispatchResult{
			UserID: user.ID,
			TaskID: task.ID,
			Err:    err,
		})
	}

	log.Printf("[info] reminder dispatch: attempted %d, failed %d", report.Attempted, report.Failed())
	return report
}
