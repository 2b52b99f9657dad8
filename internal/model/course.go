package model

import "context"

// CourseStore defines persistence operations for courses.
type CourseStore interface {
	GetByUserID(ctx context.Context, userID int64) ([]Course, error)
	GetByID(ctx context.Context, id int64) (Course, error)
	Create(ctx context.Context, course Course) (Course, error)
	Update(ctx context.Context, course Course) error
	Delete(ctx context.Context, id int64) error
}

// Course represents a course owned by a single user. Deleting a course
// removes all of its tasks at the store level.
type Course struct {
	ID          int64
	UserID      int64
	Name        string
	Description string
}
