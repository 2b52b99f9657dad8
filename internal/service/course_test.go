package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"coursetrack/internal/model"
	"coursetrack/internal/testutil"
)

// MockCourseStore mocks the CourseStore interface
type MockCourseStore struct {
	mock.Mock
}

func (m *MockCourseStore) GetByUserID(ctx context.Context, userID int64) ([]model.Course, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.Course), args.Error(1)
}

func (m *MockCourseStore) GetByID(ctx context.Context, id int64) (model.Course, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Course), args.Error(1)
}

func (m *MockCourseStore) Create(ctx context.Context, course model.Course) (model.Course, error) {
	args := m.Called(ctx, course)
	return args.Get(0).(model.Course), args.Error(1)
}

func (m *MockCourseStore) Update(ctx context.Context, course model.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCourse_Create(t *testing.T) {
	store := &MockCourseStore{}
	svc := NewCourse(store, testutil.MakeNoopLogger())

	store.On("Create", mock.Anything, model.Course{UserID: 1, Name: "Algorithms", Description: ""}).
		Return(model.Course{ID: 3, UserID: 1, Name: "Algorithms"}, nil)

	course, err := svc.Create(context.Background(), 1, "Algorithms", "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), course.ID)
	store.AssertExpectations(t)
}

func TestCourse_Update_EmptyName(t *testing.T) {
	store := &MockCourseStore{}
	svc := NewCourse(store, testutil.MakeNoopLogger())

	err := svc.Update(context.Background(), model.Course{ID: 3, Name: "  "})
	assert.ErrorIs(t, err, model.ErrEmptyField)

	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCourse_Update(t *testing.T) {
	store := &MockCourseStore{}
	svc := NewCourse(store, testutil.MakeNoopLogger())

	course := model.Course{ID: 3, UserID: 1, Name: "Algorithms", Description: "updated"}
	store.On("Update", mock.Anything, course).Return(nil)

	require.NoError(t, svc.Update(context.Background(), course))
	store.AssertExpectations(t)
}

func TestCourse_List_StoreError(t *testing.T) {
	store := &MockCourseStore{}
	svc := NewCourse(store, testutil.MakeNoopLogger())

	store.On("GetByUserID", mock.Anything, int64(1)).
		Return([]model.Course(nil), errors.New("disk I/O error"))

	_, err := svc.List(context.Background(), 1)
	assert.ErrorContains(t, err, "failed to list courses")
}

func TestCourse_Delete(t *testing.T) {
	store := &MockCourseStore{}
	svc := NewCourse(store, testutil.MakeNoopLogger())

	store.On("Delete", mock.Anything, int64(3)).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), 3))
	store.AssertExpectations(t)
}
