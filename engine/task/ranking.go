package task

import "sort"

// RankTasks orders tasks by priority (High, Medium, Low) and, within the
// same priority, by creation time descending so the most recent task comes
// first. The sort is stable: tasks with identical priority and timestamp
// keep their relative order, which also makes ranking idempotent.
func RankTasks(tasks []*Task) []*Task {
	ranked := make([]*Task, len(tasks))
	copy(ranked, tasks)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Priority.Rank() != ranked[j].Priority.Rank() {
			return ranked[i].Priority.Rank() < ranked[j].Priority.Rank()
		}
		return ranked[i].CreatedAt.After(ranked[j].CreatedAt)
	})
	return ranked
}

// RankNotifications orders notifications by urgency (urgent, warning,
// normal) and, within the same urgency, by hours remaining ascending so
// the soonest deadline comes first. Stable for equal keys.
func RankNotifications(notifications []Notification) []Notification {
	ranked := make([]Notification, len(notifications))
	copy(ranked, notifications)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Urgency.Rank() != ranked[j].Urgency.Rank() {
			return ranked[i].Urgency.Rank() < ranked[j].Urgency.Rank()
		}
		return ranked[i].HoursRemaining < ranked[j].HoursRemaining
	})
	return ranked
}
