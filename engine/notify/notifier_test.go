package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remindly/remindly/engine/core"
	"github.com/remindly/remindly/engine/task"
)

func pendingTask(summary string, deadline string, priority task.Priority) *task.Task {
	return &task.Task{
		ID:       core.MustNewID(),
		Summary:  summary,
		Deadline: deadline,
		Fine:     task.FineNone,
		Priority: priority,
		Category: task.CategoryGeneral,
		Status:   task.StatusPending,
	}
}

func TestParseDeadline(t *testing.T) {
	t.Run("Should parse RFC3339 deadlines", func(t *testing.T) {
		parsed, err := ParseDeadline("2026-03-06T17:00:00Z")
		require.NoError(t, err)
		assert.Equal(t, 17, parsed.UTC().Hour())
	})

	t.Run("Should parse zoneless date-times as local time", func(t *testing.T) {
		parsed, err := ParseDeadline("2026-03-06T17:00")
		require.NoError(t, err)
		assert.Equal(t, time.Local, parsed.Location())
		assert.Equal(t, 17, parsed.Hour())
	})

	t.Run("Should parse bare dates", func(t *testing.T) {
		parsed, err := ParseDeadline("2026-03-06")
		require.NoError(t, err)
		assert.Equal(t, time.March, parsed.Month())
		assert.Equal(t, 6, parsed.Day())
	})

	t.Run("Should reject free-form deadlines", func(t *testing.T) {
		_, err := ParseDeadline("next Friday after lunch")
		assert.Error(t, err)
	})
}

func TestDerive(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 6, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) string {
		return now.Add(d).Format(time.RFC3339)
	}

	t.Run("Should classify by hours remaining", func(t *testing.T) {
		pending := []*task.Task{
			pendingTask("in one hour", at(time.Hour), task.PriorityHigh),
			pendingTask("in five hours", at(5*time.Hour), task.PriorityMedium),
			pendingTask("in ten hours", at(10*time.Hour), task.PriorityLow),
		}
		notifications := Derive(ctx, pending, now)
		require.Len(t, notifications, 3)
		assert.Equal(t, task.UrgencyUrgent, notifications[0].Urgency)
		assert.Equal(t, 1, notifications[0].HoursRemaining)
		assert.Equal(t, task.UrgencyWarning, notifications[1].Urgency)
		assert.Equal(t, 5, notifications[1].HoursRemaining)
		assert.Equal(t, task.UrgencyNormal, notifications[2].Urgency)
		assert.Equal(t, 10, notifications[2].HoursRemaining)
	})

	t.Run("Should exclude deadlines beyond the 24 hour window", func(t *testing.T) {
		pending := []*task.Task{pendingTask("next week", at(30*time.Hour), task.PriorityHigh)}
		assert.Empty(t, Derive(ctx, pending, now))
	})

	t.Run("Should exclude deadlines already in the past", func(t *testing.T) {
		pending := []*task.Task{pendingTask("missed", at(-time.Hour), task.PriorityHigh)}
		assert.Empty(t, Derive(ctx, pending, now))
	})

	t.Run("Should skip tasks without a real deadline", func(t *testing.T) {
		pending := []*task.Task{
			pendingTask("no deadline", task.DeadlineNotFound, task.PriorityHigh),
			pendingTask("vague", "sometime soon", task.PriorityHigh),
		}
		assert.Empty(t, Derive(ctx, pending, now))
	})

	t.Run("Should round hours remaining to the nearest integer", func(t *testing.T) {
		pending := []*task.Task{pendingTask("soonish", at(90*time.Minute), task.PriorityMedium)}
		notifications := Derive(ctx, pending, now)
		require.Len(t, notifications, 1)
		assert.Equal(t, 2, notifications[0].HoursRemaining)
	})

	t.Run("Should rank the soonest deadline first", func(t *testing.T) {
		pending := []*task.Task{
			pendingTask("in six hours", at(6*time.Hour), task.PriorityHigh),
			pendingTask("in one hour", at(time.Hour), task.PriorityLow),
		}
		notifications := Derive(ctx, pending, now)
		require.Len(t, notifications, 2)
		assert.Equal(t, "in one hour", notifications[0].Summary)
		assert.Equal(t, "in six hours", notifications[1].Summary)
	})

	t.Run("Should return an empty list for no pending tasks", func(t *testing.T) {
		assert.Empty(t, Derive(ctx, nil, now))
	})
}
