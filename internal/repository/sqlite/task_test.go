package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursetrack/internal/model"
)

func seedCourse(t *testing.T, db *Connection) model.Course {
	t.Helper()

	user := seedUser(t, db, "Ada", "ada@example.com")
	course, err := NewCourseRepository(db).Create(context.Background(), model.Course{UserID: user.ID, Name: "Algorithms"})
	require.NoError(t, err)

	return course
}

func TestTaskRepository_CreateAndList(t *testing.T) {
	db := newTestConnection(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	course := seedCourse(t, db)

	first, err := repo.Create(ctx, model.Task{CourseID: course.ID, Name: "HW1", DueDate: "2024-01-01"})
	require.NoError(t, err)
	second, err := repo.Create(ctx, model.Task{CourseID: course.ID, Name: "HW2"})
	require.NoError(t, err)

	tasks, err := repo.GetByCourseID(ctx, course.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	// Insertion order.
	assert.Equal(t, first.ID, tasks[0].ID)
	assert.Equal(t, second.ID, tasks[1].ID)
	assert.Equal(t, "2024-01-01", tasks[0].DueDate)
	assert.Equal(t, "", tasks[1].DueDate)
}

func TestTaskRepository_Update(t *testing.T) {
	db := newTestConnection(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	course := seedCourse(t, db)
	task, err := repo.Create(ctx, model.Task{CourseID: course.ID, Name: "HW1"})
	require.NoError(t, err)

	task.Name = "HW1 revised"
	task.Description = "Chapters 1-3"
	task.DueDate = "2024-02-01"
	require.NoError(t, repo.Update(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task, got)
}

func TestTaskRepository_Delete(t *testing.T) {
	db := newTestConnection(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	course := seedCourse(t, db)
	task, err := repo.Create(ctx, model.Task{CourseID: course.ID, Name: "HW1"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, task.ID))

	_, err = repo.GetByID(ctx, task.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestTaskRepository_GetByID_NotFound(t *testing.T) {
	db := newTestConnection(t)

	_, err := NewTaskRepository(db).GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, model.ErrNotFound)
}
