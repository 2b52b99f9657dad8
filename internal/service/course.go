package service

import (
	"context"
	"fmt"
	"strings"

	"coursetrack/internal/logger"
	"coursetrack/internal/model"
)

type Course struct {
	courseStore model.CourseStore
	logger      *logger.Logger
}

func NewCourse(courseStore model.CourseStore, logger *logger.Logger) *Course {
	return &Course{
		courseStore: courseStore,
		logger:      logger,
	}
}

// List returns all courses owned by the given user, in insertion order.
func (s *Course) List(ctx context.Context, userID int64) ([]model.Course, error) {
	courses, err := s.courseStore.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	return courses, nil
}

func (s *Course) Get(ctx context.Context, id int64) (model.Course, error) {
	course, err := s.courseStore.GetByID(ctx, id)
	if err != nil {
		return model.Course{}, fmt.Errorf("failed to get course: %w", err)
	}

	return course, nil
}

func (s *Course) Create(ctx context.Context, userID int64, name, description string) (model.Course, error) {
	course, err := s.courseStore.Create(ctx, model.Course{
		UserID:      userID,
		Name:        name,
		Description: description,
	})
	if err != nil {
		return model.Course{}, fmt.Errorf("failed to create course: %w", err)
	}

	s.logger.Info("Course service: course created",
		"course_id", course.ID,
		"user_id", userID)

	return course, nil
}

// Update writes the course's name and description. An empty name is a
// validation error and nothing is written.
func (s *Course) Update(ctx context.Context, course model.Course) error {
	if strings.TrimSpace(course.Name) == "" {
		return model.ErrEmptyField
	}

	if err := s.courseStore.Update(ctx, course); err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}

	return nil
}

// Delete removes the course; the store cascades the delete to its tasks.
func (s *Course) Delete(ctx context.Context, id int64) error {
	if err := s.courseStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}

	s.logger.Info("Course service: course deleted", "course_id", id)

	return nil
}
