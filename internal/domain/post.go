package domain

import "time"

// Task is the payload a player receives on reaching a post.
type Task struct {
	Text  string
	IsURL bool
}

// Post is a fixed point-of-interest carrying a task. Posts are immutable
// after creation. TaskSolution is admin-only and never part of the
// reachability response.
type Post struct {
	ID           string
	Task         Task
	TaskSolution string
	Location     Point
	CreatedAt    time.Time
}
