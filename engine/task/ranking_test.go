package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/remindly/remindly/engine/core"
)

func makeTask(summary string, priority Priority, createdAt time.Time) *Task {
	return &Task{
		ID:        core.MustNewID(),
		Summary:   summary,
		Deadline:  DeadlineNotFound,
		Fine:      FineNone,
		Priority:  priority,
		Category:  CategoryGeneral,
		CreatedAt: createdAt,
		Status:    StatusPending,
	}
}

func TestRankTasks(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("Should order tasks High, Medium, Low", func(t *testing.T) {
		tasks := []*Task{
			makeTask("low", PriorityLow, base),
			makeTask("high", PriorityHigh, base),
			makeTask("medium", PriorityMedium, base),
		}
		ranked := RankTasks(tasks)
		assert.Equal(t, "high", ranked[0].Summary)
		assert.Equal(t, "medium", ranked[1].Summary)
		assert.Equal(t, "low", ranked[2].Summary)
	})

	t.Run("Should place newest first within the same priority", func(t *testing.T) {
		tasks := []*Task{
			makeTask("older", PriorityHigh, base),
			makeTask("newer", PriorityHigh, base.Add(2*time.Hour)),
		}
		ranked := RankTasks(tasks)
		assert.Equal(t, "newer", ranked[0].Summary)
		assert.Equal(t, "older", ranked[1].Summary)
	})

	t.Run("Should rank unknown priorities after Low", func(t *testing.T) {
		tasks := []*Task{
			makeTask("bogus", Priority("Critical"), base),
			makeTask("low", PriorityLow, base),
		}
		ranked := RankTasks(tasks)
		assert.Equal(t, "low", ranked[0].Summary)
		assert.Equal(t, "bogus", ranked[1].Summary)
	})

	t.Run("Should be idempotent", func(t *testing.T) {
		tasks := []*Task{
			makeTask("a", PriorityMedium, base),
			makeTask("b", PriorityHigh, base.Add(time.Minute)),
			makeTask("c", PriorityHigh, base.Add(time.Minute)),
			makeTask("d", PriorityLow, base),
		}
		once := RankTasks(tasks)
		twice := RankTasks(once)
		assert.Equal(t, once, twice)
	})

	t.Run("Should not mutate the input slice", func(t *testing.T) {
		tasks := []*Task{
			makeTask("low", PriorityLow, base),
			makeTask("high", PriorityHigh, base),
		}
		_ = RankTasks(tasks)
		assert.Equal(t, "low", tasks[0].Summary)
		assert.Equal(t, "high", tasks[1].Summary)
	})
}

func TestRankNotifications(t *testing.T) {
	t.Run("Should order by urgency then hours remaining", func(t *testing.T) {
		notifications := []Notification{
			{Summary: "normal", Urgency: UrgencyNormal, HoursRemaining: 10},
			{Summary: "warning late", Urgency: UrgencyWarning, HoursRemaining: 6},
			{Summary: "urgent", Urgency: UrgencyUrgent, HoursRemaining: 1},
			{Summary: "warning soon", Urgency: UrgencyWarning, HoursRemaining: 3},
		}
		ranked := RankNotifications(notifications)
		assert.Equal(t, "urgent", ranked[0].Summary)
		assert.Equal(t, "warning soon", ranked[1].Summary)
		assert.Equal(t, "warning late", ranked[2].Summary)
		assert.Equal(t, "normal", ranked[3].Summary)
	})

	t.Run("Should place 1 hour before 6 hours", func(t *testing.T) {
		notifications := []Notification{
			{Summary: "six", Urgency: UrgencyWarning, HoursRemaining: 6},
			{Summary: "one", Urgency: UrgencyUrgent, HoursRemaining: 1},
		}
		ranked := RankNotifications(notifications)
		assert.Equal(t, "one", ranked[0].Summary)
		assert.Equal(t, "six", ranked[1].Summary)
	})

	t.Run("Should break equal-urgency ties by hours remaining", func(t *testing.T) {
		notifications := []Notification{
			{Summary: "later", Urgency: UrgencyUrgent, HoursRemaining: 6},
			{Summary: "sooner", Urgency: UrgencyUrgent, HoursRemaining: 1},
		}
		ranked := RankNotifications(notifications)
		assert.Equal(t, "sooner", ranked[0].Summary)
		assert.Equal(t, "later", ranked[1].Summary)
	})
}
