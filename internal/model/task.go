package model

import "context"

// TaskStore defines persistence operations for tasks.
type TaskStore interface {
	GetByCourseID(ctx context.Context, courseID int64) ([]Task, error)
	GetByID(ctx context.Context, id int64) (Task, error)
	Create(ctx context.Context, task Task) (Task, error)
	Update(ctx context.Context, task Task) error
	Delete(ctx context.Context, id int64) error
}

// Task represents a task belonging to a single course. DueDate is free-form
// text, intended as YYYY-MM-DD but not validated.
type Task struct {
	ID          int64
	CourseID    int64
	Name        string
	Description string
	DueDate     string
}
