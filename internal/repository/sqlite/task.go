package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"coursetrack/internal/model"
)

var _ model.TaskStore = (*TaskRepository)(nil)

type TaskRepository struct {
	db *Connection
}

func NewTaskRepository(db *Connection) *TaskRepository {
	return &TaskRepository{
		db: db,
	}
}

func (r *TaskRepository) GetByCourseID(ctx context.Context, courseID int64) ([]model.Task, error) {
	query := `SELECT id, course_id, name, description, due_date FROM tasks WHERE course_id = ?`

	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks by course id: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var task model.Task
		if err := rows.Scan(&task.ID, &task.CourseID, &task.Name, &task.Description, &task.DueDate); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tasks: %w", err)
	}

	return tasks, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id int64) (model.Task, error) {
	var task model.Task
	query := `SELECT id, course_id, name, description, due_date FROM tasks WHERE id = ?`

	err := r.db.QueryRowContext(ctx, query, id).Scan(&task.ID, &task.CourseID, &task.Name, &task.Description, &task.DueDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, model.ErrNotFound
		}
		return model.Task{}, fmt.Errorf("failed to get task by id: %w", err)
	}

	return task, nil
}

func (r *TaskRepository) Create(ctx context.Context, task model.Task) (model.Task, error) {
	query := `INSERT INTO tasks (course_id, name, description, due_date) VALUES (?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, task.CourseID, task.Name, task.Description, task.DueDate)
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to get generated task id: %w", err)
	}

	task.ID = id
	return task, nil
}

func (r *TaskRepository) Update(ctx context.Context, task model.Task) error {
	query := `UPDATE tasks SET name = ?, description = ?, due_date = ? WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, task.Name, task.Description, task.DueDate, task.ID); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}
