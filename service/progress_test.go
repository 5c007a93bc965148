package service

import (
	"errors"
	"testing"

	"doctrack/apperr"
	"doctrack/dto"
	"doctrack/model"
	"doctrack/policy"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func progressRows(taskID int, checked ...bool) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"progress_item_id", "task_id", "criterion_id", "checked", "comment"})
	for i, c := range checked {
		rows.AddRow(i+1, taskID, i+11, c, "")
	}
	return rows
}

func TestUpdateProgressItemsDerivesOnGoing(t *testing.T) {
	db, mock := newMockDB(t)
	assert := assert.New(t)

	actor := policy.Actor{ID: 5, Role: model.RoleEmployee}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `tasks`").
		WillReturnRows(taskRows(1, 5, model.TaskStatusToDo))
	mock.ExpectQuery("SELECT \\* FROM `progress_items`").
		WillReturnRows(progressRows(1, false, false))
	mock.ExpectExec("UPDATE `progress_items`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	// Full current set re-read for the status derivation.
	mock.ExpectQuery("SELECT \\* FROM `progress_items`").
		WillReturnRows(progressRows(1, true, false))
	mock.ExpectExec("UPDATE `tasks`").
		WithArgs(nil, model.TaskStatusOnGoing, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT \\* FROM `progress_items`").
		WillReturnRows(progressRows(1, true, false))
	mock.ExpectQuery("SELECT \\* FROM `checklist_criteria`").
		WillReturnRows(sqlmock.NewRows([]string{"criterion_id", "criteria_text"}).
			AddRow(11, "Header present").AddRow(12, "Signatures checked"))
	mock.ExpectCommit()

	items, err := UpdateProgressItems(db, actor, 1, []dto.ProgressItemPatch{
		{ProgressItemID: 1, Checked: true},
	})
	assert.NoError(err)
	assert.Len(items, 2)
	assert.NoError(mock.ExpectationsWereMet())
}

func TestUpdateProgressItemsAllCheckedSetsDone(t *testing.T) {
	db, mock := newMockDB(t)
	assert := assert.New(t)

	actor := policy.Actor{ID: 5, Role: model.RoleEmployee}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `tasks`").
		WillReturnRows(taskRows(1, 5, model.TaskStatusOnGoing))
	mock.ExpectQuery("SELECT \\* FROM `progress_items`").
		WillReturnRows(progressRows(1, true, false))
	mock.ExpectExec("UPDATE `progress_items`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT \\* FROM `progress_items`").
		WillReturnRows(progressRows(1, true, true))
	mock.ExpectExec("UPDATE `tasks`").
		WithArgs(sqlmock.AnyArg(), model.TaskStatusDone, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT \\* FROM `progress_items`").
		WillReturnRows(progressRows(1, true, true))
	mock.ExpectQuery("SELECT \\* FROM `checklist_criteria`").
		WillReturnRows(sqlmock.NewRows([]string{"criterion_id", "criteria_text"}).
			AddRow(11, "Header present").AddRow(12, "Signatures checked"))
	mock.ExpectCommit()

	_, err := UpdateProgressItems(db, actor, 1, []dto.ProgressItemPatch{
		{ProgressItemID: 2, Checked: true},
	})
	assert.NoError(err)
	assert.NoError(mock.ExpectationsWereMet())
}

// Unchecking an item on a Done task demotes it and clears the completion
// date in the same transaction.
func TestUpdateProgressItemsDemotesDoneTask(t *testing.T) {
	db, mock := newMockDB(t)
	assert := assert.New(t)

	actor := policy.Actor{ID: 1, Role: model.RoleAdmin}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `tasks`").
		WillReturnRows(taskRows(1, 5, model.TaskStatusDone))
	mock.ExpectQuery("SELECT \\* FROM `progress_items`").
		WillReturnRows(progressRows(1, true, true))
	mock.ExpectExec("UPDATE `progress_items`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT \\* FROM `progress_items`").
		WillReturnRows(progressRows(1, false, true))
	mock.ExpectExec("UPDATE `tasks`").
		WithArgs(nil, model.TaskStatusOnGoing, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT \\* FROM `progress_items`").
		WillReturnRows(progressRows(1, false, true))
	mock.ExpectQuery("SELECT \\* FROM `checklist_criteria`").
		WillReturnRows(sqlmock.NewRows([]string{"criterion_id", "criteria_text"}).
			AddRow(11, "Header present").AddRow(12, "Signatures checked"))
	mock.ExpectCommit()

	_, err := UpdateProgressItems(db, actor, 1, []dto.ProgressItemPatch{
		{ProgressItemID: 1, Checked: false},
	})
	assert.NoError(err)
	assert.NoError(mock.ExpectationsWereMet())
}

// A patch naming an item from another task fails the whole batch.
func TestUpdateProgressItemsRejectsForeignItem(t *testing.T) {
	db, mock := newMockDB(t)
	assert := assert.New(t)

	actor := policy.Actor{ID: 5, Role: model.RoleEmployee}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `tasks`").
		WillReturnRows(taskRows(1, 5, model.TaskStatusToDo))
	mock.ExpectQuery("SELECT \\* FROM `progress_items`").
		WillReturnRows(progressRows(1, false, false))
	mock.ExpectRollback()

	_, err := UpdateProgressItems(db, actor, 1, []dto.ProgressItemPatch{
		{ProgressItemID: 99, Checked: true},
	})
	assert.True(errors.Is(err, apperr.ErrNotFound))
	assert.NoError(mock.ExpectationsWereMet())
}

func TestUpdateProgressItemsForbiddenForOtherEmployee(t *testing.T) {
	db, mock := newMockDB(t)
	assert := assert.New(t)

	actor := policy.Actor{ID: 5, Role: model.RoleEmployee}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `tasks`").
		WillReturnRows(taskRows(1, 7, model.TaskStatusToDo))
	mock.ExpectRollback()

	_, err := UpdateProgressItems(db, actor, 1, []dto.ProgressItemPatch{
		{ProgressItemID: 1, Checked: true},
	})
	assert.True(errors.Is(err, apperr.ErrForbidden))
	assert.NoError(mock.ExpectationsWereMet())
}

func TestAddProgressItemRequiresPrivilege(t *testing.T) {
	db, _ := newMockDB(t)

	_, err := AddProgressItem(db, policy.Actor{ID: 5, Role: model.RoleEmployee}, 1, dto.AddProgressItemRequest{CriterionID: 11})
	assert.True(t, errors.Is(err, apperr.ErrForbidden))
}

func TestAddProgressItemDuplicateCriterion(t *testing.T) {
	db, mock := newMockDB(t)
	assert := assert.New(t)

	actor := policy.Actor{ID: 1, Role: model.RoleProjectManager}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `tasks`").
		WillReturnRows(taskRows(1, 5, model.TaskStatusOnGoing))
	mock.ExpectQuery("SELECT \\* FROM `checklist_criteria`").
		WillReturnRows(sqlmock.NewRows([]string{"criterion_id", "criteria_text"}).
			AddRow(11, "Header present"))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `progress_items`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))
	mock.ExpectRollback()

	_, err := AddProgressItem(db, actor, 1, dto.AddProgressItemRequest{CriterionID: 11})
	assert.True(errors.Is(err, apperr.ErrConflict))
	assert.NoError(mock.ExpectationsWereMet())
}

// Deleting the only unchecked item promotes the task to Done.
func TestDeleteProgressItemPromotesToDone(t *testing.T) {
	db, mock := newMockDB(t)
	assert := assert.New(t)

	actor := policy.Actor{ID: 1, Role: model.RoleAdmin}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `tasks`").
		WillReturnRows(taskRows(1, 5, model.TaskStatusOnGoing))
	mock.ExpectExec("DELETE FROM `progress_items`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT \\* FROM `progress_items`").
		WillReturnRows(progressRows(1, true, true))
	mock.ExpectExec("UPDATE `tasks`").
		WithArgs(sqlmock.AnyArg(), model.TaskStatusDone, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := DeleteProgressItem(db, actor, 1, 3)
	assert.NoError(err)
	assert.NoError(mock.ExpectationsWereMet())
}
