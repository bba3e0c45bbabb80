package priority

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Tier classifies how close a task's due date is. Lower is more urgent.
type Tier int

const (
	TierDueToday Tier = 0 // due date is today
	TierImminent Tier = 1 // due within two days
	TierNear     Tier = 2 // three to four days out
	TierLater    Tier = 3 // five or more days out
)

// DateLayout is the canonical wire form for due dates.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

// Classify maps a due date to its urgency tier relative to now. Both
// instants are normalized to the end of their calendar day before
// differencing, so two dates on the same day always classify as due today
// regardless of wall-clock time. Past due dates fall through the imminent
// branch; there is no dedicated overdue tier.
func Classify(due, now time.Time) Tier {
	diff := diffDays(due, now)
	switch {
	case diff == 0:
		return TierDueToday
	case diff <= 2:
		return TierImminent
	case diff <= 4:
		return TierNear
	default:
		return TierLater
	}
}

// IsNotPastDate reports whether date is today or later relative to now.
func IsNotPastDate(date, now time.Time) bool {
	return !endOfDay(date).Before(endOfDay(now))
}

// ParseDate parses a canonical YYYY-MM-DD string into a date. A string that
// does not reserialize to itself (overflowed days, stray whitespace,
// non-canonical widths) is rejected rather than silently rolled over.
func ParseDate(raw string) (time.Time, error) {
	t, err := time.Parse(DateLayout, raw)
	if err != nil || t.Format(DateLayout) != raw {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return t, nil
}

// IsValidDate reports whether raw is a real calendar date in canonical form.
func IsValidDate(raw string) bool {
	_, err := ParseDate(raw)
	return err == nil
}

func diffDays(due, now time.Time) int {
	delta := endOfDay(due).Sub(endOfDay(now))
	return int(math.Ceil(delta.Hours() / 24))
}

func endOfDay(t time.Time) time.Time {
	year, month, dayOfMonth := t.Date()
	return time.Date(year, month, dayOfMonth, 23, 59, 59, int(999*time.Millisecond), t.Location())
}
