package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"coursetrack/internal/model"
)

var _ model.CourseStore = (*CourseRepository)(nil)

type CourseRepository struct {
	db *Connection
}

func NewCourseRepository(db *Connection) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

func (r *CourseRepository) GetByUserID(ctx context.Context, userID int64) ([]model.Course, error) {
	query := `SELECT id, user_id, name, description FROM courses WHERE user_id = ?`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get courses by user id: %w", err)
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var course model.Course
		if err := rows.Scan(&course.ID, &course.UserID, &course.Name, &course.Description); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read courses: %w", err)
	}

	return courses, nil
}

func (r *CourseRepository) GetByID(ctx context.Context, id int64) (model.Course, error) {
	var course model.Course
	query := `SELECT id, user_id, name, description FROM courses WHERE id = ?`

	err := r.db.QueryRowContext(ctx, query, id).Scan(&course.ID, &course.UserID, &course.Name, &course.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Course{}, model.ErrNotFound
		}
		return model.Course{}, fmt.Errorf("failed to get course by id: %w", err)
	}

	return course, nil
}

func (r *CourseRepository) Create(ctx context.Context, course model.Course) (model.Course, error) {
	query := `INSERT INTO courses (user_id, name, description) VALUES (?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, course.UserID, course.Name, course.Description)
	if err != nil {
		return model.Course{}, fmt.Errorf("failed to create course: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.Course{}, fmt.Errorf("failed to get generated course id: %w", err)
	}

	course.ID = id
	return course, nil
}

func (r *CourseRepository) Update(ctx context.Context, course model.Course) error {
	query := `UPDATE courses SET name = ?, description = ? WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, course.Name, course.Description, course.ID); err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}

	return nil
}

func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM courses WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}

	return nil
}
