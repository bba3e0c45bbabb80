package model

import (
	"errors"
	"testing"
)

func TestAggregateStatus(t *testing.T) {
	tests := []struct {
		name   string
		states []CompletionState
		want   Status
	}{
		{"no subtasks", nil, StatusTodo},
		{"single incomplete", []CompletionState{Incomplete}, StatusTodo},
		{"all incomplete", []CompletionState{Incomplete, Incomplete, Incomplete}, StatusTodo},
		{"single complete", []CompletionState{Complete}, StatusDone},
		{"all complete", []CompletionState{Complete, Complete}, StatusDone},
		{"mixed", []CompletionState{Incomplete, Complete}, StatusInProgress},
		{"mixed reversed", []CompletionState{Complete, Incomplete}, StatusInProgress},
		{"mixed with duplicates", []CompletionState{Complete, Incomplete, Complete, Incomplete}, StatusInProgress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AggregateStatus(tt.states); got != tt.want {
				t.Fatalf("AggregateStatus(%v) = %s, want %s", tt.states, got, tt.want)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"TODO", "IN_PROGRESS", "DONE"} {
		status, err := ParseStatus(raw)
		if err != nil {
			t.Fatalf("ParseStatus(%q) = %v, want nil", raw, err)
		}
		if string(status) != raw {
			t.Fatalf("ParseStatus(%q) = %s", raw, status)
		}
	}

	for _, raw := range []string{"", "done", "Todo", "CANCELLED", "IN PROGRESS"} {
		if _, err := ParseStatus(raw); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("ParseStatus(%q) error = %v, want ErrInvalidStatus", raw, err)
		}
	}
}

func TestParseCompletionState(t *testing.T) {
	for raw, want := range map[int]CompletionState{0: Incomplete, 1: Complete} {
		state, err := ParseCompletionState(raw)
		if err != nil {
			t.Fatalf("ParseCompletionState(%d) = %v, want nil", raw, err)
		}
		if state != want {
			t.Fatalf("ParseCompletionState(%d) = %d, want %d", raw, state, want)
		}
	}

	for _, raw := range []int{-1, 2, 100} {
		if _, err := ParseCompletionState(raw); !errors.Is(err, ErrInvalidCompletionState) {
			t.Fatalf("ParseCompletionState(%d) error = %v, want ErrInvalidCompletionState", raw, err)
		}
	}
}
