package model

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidStatus          = errors.New("invalid status")
	ErrInvalidCompletionState = errors.New("invalid completion state")
)

// Status is the lifecycle state of a task. It is derived from the task's
// subtasks (see AggregateStatus) or set explicitly by the owner.
type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

// ParseStatus maps raw input to a Status, rejecting anything outside the
// closed set.
func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusTodo, StatusInProgress, StatusDone:
		return Status(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
}

// CompletionState is the binary done-ness of a subtask.
type CompletionState int

const (
	Incomplete CompletionState = 0
	Complete   CompletionState = 1
)

// ParseCompletionState maps raw input to a CompletionState, rejecting
// anything but 0 and 1.
func ParseCompletionState(raw int) (CompletionState, error) {
	switch CompletionState(raw) {
	case Incomplete, Complete:
		return CompletionState(raw), nil
	default:
		return Incomplete, fmt.Errorf("%w: %d", ErrInvalidCompletionState, raw)
	}
}

// AggregateStatus derives a task's status from the completion states of its
// active subtasks: all incomplete (or none at all) is TODO, all complete is
// DONE, a mix is IN_PROGRESS. Pure; order of states never matters.
func AggregateStatus(states []CompletionState) Status {
	var hasIncomplete, hasComplete bool
	for _, state := range states {
		switch state {
		case Complete:
			hasComplete = true
		default:
			hasIncomplete = true
		}
	}

	switch {
	case hasComplete && hasIncomplete:
		return StatusInProgress
	case hasComplete:
		return StatusDone
	default:
		return StatusTodo
	}
}
