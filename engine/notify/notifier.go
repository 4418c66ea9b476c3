package notify

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/remindly/remindly/engine/task"
	"github.com/remindly/remindly/pkg/logger"
)

// notificationWindow is how far ahead a deadline may be and still produce
// a notification.
const notificationWindow = 24.0

// Urgency thresholds in hours remaining.
const (
	urgentThreshold  = 2.0
	warningThreshold = 6.0
)

// deadlineLayouts are tried in order when parsing a stored deadline. The
// model emits loosely ISO-shaped date-times; the store keeps them verbatim.
var deadlineLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDeadline parses a stored deadline string against the accepted
// layouts. Layouts without a zone are interpreted as local time, matching
// how users phrase reminders.
func ParseDeadline(raw string) (time.Time, error) {
	for _, layout := range deadlineLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized deadline format %q", raw)
}

// Derive scans pending tasks and emits a ranked notification list for
// deadlines within the next 24 hours. Tasks without a parseable deadline
// are logged and omitted; a bad deadline never fails the scan. Already
// expired deadlines are excluded.
func Derive(ctx context.Context, pending []*task.Task, now time.Time) []task.Notification {
	log := logger.FromContext(ctx)
	notifications := make([]task.Notification, 0, len(pending))
	for _, t := range pending {
		if t.Deadline == "" || t.Deadline == task.DeadlineNotFound {
			continue
		}
		deadline, err := ParseDeadline(t.Deadline)
		if err != nil {
			log.Warn("Skipping task with unparseable deadline", "task_id", t.ID, "deadline", t.Deadline, "error", err)
			continue
		}
		hours := deadline.Sub(now).Hours()
		if hours <= 0 || hours > notificationWindow {
			continue
		}
		notifications = append(notifications, task.Notification{
			ID:             t.ID,
			Summary:        t.Summary,
			Deadline:       t.Deadline,
			Priority:       t.Priority,
			HoursRemaining: int(math.Round(hours)),
			Urgency:        classify(hours),
		})
	}
	return task.RankNotifications(notifications)
}

func classify(hours float64) task.Urgency {
	switch {
	case hours <= urgentThreshold:
		return task.UrgencyUrgent
	case hours <= warningThreshold:
		return task.UrgencyWarning
	default:
		return task.UrgencyNormal
	}
}
