package entities

// Project is a unit of collaboration; membership gates every access to it.
type Project struct {
	ID        int64
	Title     string
	CreatedBy int64
}

// TaskStatusCompleted is the only task status excluded from pending counts.
const TaskStatusCompleted = "Completed"

// Dashboard is the per-user summary.
type Dashboard struct {
	ProjectCount int64
	PendingTasks int64
}
