package usecase

import (
	"context"
	"testing"

	"github.com/apper-canvas/boosttaskflow/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportTasks_CreatesAllDrafts(t *testing.T) {
	clock := testClock()
	tasks := newMockTaskStore(clock)
	uc := NewImportTasks(tasks, domain.NopLogger{})

	content := []byte(`
- title: Prepare slides
  description: For the Monday review
  priority: high
  due: 2025-07-01
  list: "1"
- title: Order standing desk
  list: "2"
`)

	out, err := uc.Execute(context.Background(), ImportTasksInput{Content: content})

	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)
	require.Len(t, out.Created, 2)
	assert.Empty(t, out.Failed)
	assert.Equal(t, "Prepare slides", out.Created[0].Title)
	assert.Equal(t, domain.PriorityHigh, out.Created[0].Priority)
	require.NotNil(t, out.Created[0].DueDate)
	assert.Equal(t, domain.PriorityMedium, out.Created[1].Priority, "missing priority defaults to medium")
}

func TestImportTasks_PartialFailure(t *testing.T) {
	clock := testClock()
	tasks := newMockTaskStore(clock)
	uc := NewImportTasks(tasks, domain.NopLogger{})

	content := []byte(`
- title: Good one
  list: "1"
- title: Bad priority
  priority: urgent
  list: "1"
- title: ""
  list: "1"
- title: Also good
  list: "2"
`)

	out, err := uc.Execute(context.Background(), ImportTasksInput{Content: content})

	require.NoError(t, err)
	assert.Equal(t, 4, out.Total)
	require.Len(t, out.Created, 2)
	assert.Equal(t, "Good one", out.Created[0].Title)
	assert.Equal(t, "Also good", out.Created[1].Title)

	require.Len(t, out.Failed, 2)
	indices := []int{out.Failed[0].Index, out.Failed[1].Index}
	assert.ElementsMatch(t, []int{1, 2}, indices, "failure indices refer to the draft file")
}

func TestImportTasks_EmptyFile(t *testing.T) {
	uc := NewImportTasks(newMockTaskStore(testClock()), domain.NopLogger{})

	_, err := uc.Execute(context.Background(), ImportTasksInput{})
	assert.ErrorIs(t, err, domain.ErrEmptyFile)
}

func TestImportTasks_NoDrafts(t *testing.T) {
	uc := NewImportTasks(newMockTaskStore(testClock()), domain.NopLogger{})

	_, err := uc.Execute(context.Background(), ImportTasksInput{Content: []byte("[]")})
	assert.ErrorIs(t, err, domain.ErrNoTasksInFile)
}

func TestImportTasks_MalformedYAML(t *testing.T) {
	uc := NewImportTasks(newMockTaskStore(testClock()), domain.NopLogger{})

	_, err := uc.Execute(context.Background(), ImportTasksInput{Content: []byte("title: not a list")})
	assert.Error(t, err)
}
