package ui

import (
	"context"

	"github.com/stretchr/testify/mock"

	"coursetrack/internal/model"
)

// MockAuthService mocks the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, name, email string) (model.User, bool, error) {
	args := m.Called(ctx, name, email)
	return args.Get(0).(model.User), args.Bool(1), args.Error(2)
}

func (m *MockAuthService) Resume(ctx context.Context) (model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockAuthService) Logout() error {
	args := m.Called()
	return args.Error(0)
}

// MockCourseService mocks the CourseService interface
type MockCourseService struct {
	mock.Mock
}

func (m *MockCourseService) List(ctx context.Context, userID int64) ([]model.Course, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.Course), args.Error(1)
}

func (m *MockCourseService) Get(ctx context.Context, id int64) (model.Course, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Course), args.Error(1)
}

func (m *MockCourseService) Create(ctx context.Context, userID int64, name, description string) (model.Course, error) {
	args := m.Called(ctx, userID, name, description)
	return args.Get(0).(model.Course), args.Error(1)
}

func (m *MockCourseService) Update(ctx context.Context, course model.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTaskService mocks the TaskService interface
type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) List(ctx context.Context, courseID int64) ([]model.Task, error) {
	args := m.Called(ctx, courseID)
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskService) Get(ctx context.Context, id int64) (model.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Task), args.Error(1)
}

func (m *MockTaskService) Create(ctx context.Context, courseID int64, name, description, dueDate string) (model.Task, error) {
	args := m.Called(ctx, courseID, name, description, dueDate)
	return args.Get(0).(model.Task), args.Error(1)
}

func (m *MockTaskService) Update(ctx context.Context, task model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
