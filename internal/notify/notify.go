package notify

import "context"

// Notifier delivers a reminder to a user over an external channel. The
// channel may fail transiently; callers decide whether and when to retry.
type Notifier interface {
	SendReminder(ctx context.Context, phoneNumber, message string) error
}
