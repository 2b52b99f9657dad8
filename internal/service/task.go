package service

import (
	"context"
	"fmt"
	"strings"

	"coursetrack/internal/logger"
	"coursetrack/internal/model"
)

type Task struct {
	taskStore model.TaskStore
	logger    *logger.Logger
}

func NewTask(taskStore model.TaskStore, logger *logger.Logger) *Task {
	return &Task{
		taskStore: taskStore,
		logger:    logger,
	}
}

// List returns all tasks of the given course, in insertion order.
func (s *Task) List(ctx context.Context, courseID int64) ([]model.Task, error) {
	tasks, err := s.taskStore.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

func (s *Task) Get(ctx context.Context, id int64) (model.Task, error) {
	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to get task: %w", err)
	}

	return task, nil
}

func (s *Task) Create(ctx context.Context, courseID int64, name, description, dueDate string) (model.Task, error) {
	task, err := s.taskStore.Create(ctx, model.Task{
		CourseID:    courseID,
		Name:        name,
		Description: description,
		DueDate:     dueDate,
	})
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Info("Task service: task created",
		"task_id", task.ID,
		"course_id", courseID)

	return task, nil
}

// Update writes the task's name, description and due date. An empty name is
// a validation error and nothing is written.
func (s *Task) Update(ctx context.Context, task model.Task) error {
	if strings.TrimSpace(task.Name) == "" {
		return model.ErrEmptyField
	}

	if err := s.taskStore.Update(ctx, task); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	return nil
}

func (s *Task) Delete(ctx context.Context, id int64) error {
	if err := s.taskStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.Info("Task service: task deleted", "task_id", id)

	return nil
}
