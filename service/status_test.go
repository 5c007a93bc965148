package service

import (
	"testing"

	"doctrack/model"

	"github.com/stretchr/testify/assert"
)

func items(checked ...bool) []model.ProgressItem {
	out := make([]model.ProgressItem, len(checked))
	for i, c := range checked {
		out[i] = model.ProgressItem{ProgressItemID: i + 1, Checked: c}
	}
	return out
}

func TestDeriveStatusAllChecked(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Equal(model.TaskStatusDone, deriveStatus(items(true), model.TaskStatusNotStarted))
	assert.Equal(model.TaskStatusDone, deriveStatus(items(true, true, true), model.TaskStatusOnGoing))
}

func TestDeriveStatusSomeChecked(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Equal(model.TaskStatusOnGoing, deriveStatus(items(true, false), model.TaskStatusNotStarted))
	assert.Equal(model.TaskStatusOnGoing, deriveStatus(items(false, true, false), model.TaskStatusDone))
}

func TestDeriveStatusNoneChecked(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Equal(model.TaskStatusToDo, deriveStatus(items(false), model.TaskStatusNotStarted))
	assert.Equal(model.TaskStatusToDo, deriveStatus(items(false, false), model.TaskStatusDone))
}

// A task with an empty checklist keeps whatever status it already had.
func TestDeriveStatusEmptySet(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Equal(model.TaskStatusNotStarted, deriveStatus(nil, model.TaskStatusNotStarted))
	assert.Equal(model.TaskStatusDone, deriveStatus(nil, model.TaskStatusDone))
}

// Unchecking any item on a Done task must demote it; the derivation has no
// memory of having been Done.
func TestDeriveStatusNotMonotonic(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	set := items(true, true, true)
	assert.Equal(model.TaskStatusDone, deriveStatus(set, model.TaskStatusOnGoing))

	set[1].Checked = false
	assert.Equal(model.TaskStatusOnGoing, deriveStatus(set, model.TaskStatusDone))

	set[0].Checked = false
	set[2].Checked = false
	assert.Equal(model.TaskStatusToDo, deriveStatus(set, model.TaskStatusDone))
}
