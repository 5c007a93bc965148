package service

import (
	"errors"
	"testing"
	"time"

	"doctrack/apperr"
	"doctrack/dto"
	"doctrack/model"
	"doctrack/policy"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestNextMonday(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	cases := []struct {
		day  string
		want string
	}{
		{"2026-08-31", "2026-09-07"}, // Monday rolls to the next one
		{"2026-09-02", "2026-09-07"}, // Wednesday
		{"2026-09-06", "2026-09-07"}, // Sunday
	}
	for _, tc := range cases {
		day, err := time.ParseInLocation("2006-01-02", tc.day, time.UTC)
		assert.NoError(err)
		assert.Equal(tc.want, NextMonday(day).Format("2006-01-02"), tc.day)
	}
}

func TestCloneWeekRequiresPrivilege(t *testing.T) {
	db, _ := newMockDB(t)

	_, err := CloneWeek(db, policy.Actor{ID: 5, Role: model.RoleEmployee}, dto.CloneWeekRequest{ProjectID: 1})
	assert.True(t, errors.Is(err, apperr.ErrForbidden))
}

// The structural copy carries category and item names but resets every
// result and comment.
func TestCloneWeekCopiesStructureOnly(t *testing.T) {
	db, mock := newMockDB(t)
	assert := assert.New(t)

	actor := policy.Actor{ID: 1, Role: model.RoleProjectManager}

	mock.ExpectQuery("SELECT \\* FROM `projects`").
		WillReturnRows(sqlmock.NewRows([]string{"project_id", "project_name", "is_active"}).
			AddRow(1, "Apollo", true))
	mock.ExpectQuery("SELECT \\* FROM `activity_weeks`").
		WillReturnRows(sqlmock.NewRows([]string{"week_id", "project_id", "week_start"}).
			AddRow(10, 1, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `activity_weeks`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `activity_weeks`").
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectQuery("SELECT \\* FROM `activity_categories`").
		WillReturnRows(sqlmock.NewRows([]string{"category_id", "week_id", "category_name"}).
			AddRow(5, 10, "Development"))
	mock.ExpectQuery("SELECT \\* FROM `activity_items`").
		WillReturnRows(sqlmock.NewRows([]string{"activity_item_id", "category_id", "activity_name", "result", "comment"}).
			AddRow(100, 5, "Implement API", "done", "shipped").
			AddRow(101, 5, "Fix bugs", "partial", ""))
	mock.ExpectExec("INSERT INTO `activity_categories`").
		WillReturnResult(sqlmock.NewResult(20, 1))
	mock.ExpectExec("INSERT INTO `activity_items`").
		WithArgs(20, "Implement API", "", "", sqlmock.AnyArg(),
			20, "Fix bugs", "", "", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(200, 2))
	mock.ExpectCommit()

	week, err := CloneWeek(db, actor, dto.CloneWeekRequest{ProjectID: 1, WeekStart: "2026-08-31"})
	assert.NoError(err)
	assert.Equal(11, week.WeekID)
	assert.Equal("2026-08-31", week.WeekStart.Format("2006-01-02"))
	assert.NoError(mock.ExpectationsWereMet())
}

func TestCloneWeekDuplicateStartDate(t *testing.T) {
	db, mock := newMockDB(t)
	assert := assert.New(t)

	actor := policy.Actor{ID: 1, Role: model.RoleAdmin}

	mock.ExpectQuery("SELECT \\* FROM `projects`").
		WillReturnRows(sqlmock.NewRows([]string{"project_id", "project_name", "is_active"}).
			AddRow(1, "Apollo", true))
	mock.ExpectQuery("SELECT \\* FROM `activity_weeks`").
		WillReturnRows(sqlmock.NewRows([]string{"week_id", "project_id", "week_start"}).
			AddRow(10, 1, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `activity_weeks`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	_, err := CloneWeek(db, actor, dto.CloneWeekRequest{ProjectID: 1, WeekStart: "2026-08-31"})
	assert.True(errors.Is(err, apperr.ErrConflict))
	assert.NoError(mock.ExpectationsWereMet())
}

// A project with no prior week gets an empty week, not an error.
func TestCloneWeekWithoutSourceWeek(t *testing.T) {
	db, mock := newMockDB(t)
	assert := assert.New(t)

	actor := policy.Actor{ID: 1, Role: model.RoleAdmin}

	mock.ExpectQuery("SELECT \\* FROM `projects`").
		WillReturnRows(sqlmock.NewRows([]string{"project_id", "project_name", "is_active"}).
			AddRow(1, "Apollo", true))
	mock.ExpectQuery("SELECT \\* FROM `activity_weeks`").
		WillReturnRows(sqlmock.NewRows([]string{"week_id", "project_id", "week_start"}))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `activity_weeks`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `activity_weeks`").
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectCommit()

	week, err := CloneWeek(db, actor, dto.CloneWeekRequest{ProjectID: 1, WeekStart: "2026-08-31"})
	assert.NoError(err)
	assert.Equal(11, week.WeekID)
	assert.NoError(mock.ExpectationsWereMet())
}
