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

func TestCreateTemplateRequiresPrivilege(t *testing.T) {
	db, _ := newMockDB(t)

	_, err := CreateTemplate(db, policy.Actor{ID: 5, Role: model.RoleEmployee}, dto.CreateTemplateRequest{
		TemplateName: "Doc Review",
		CriterionIDs: []int{11},
	})
	assert.True(t, errors.Is(err, apperr.ErrForbidden))
}

func TestCreateTemplateUnknownCriterion(t *testing.T) {
	db, mock := newMockDB(t)
	assert := assert.New(t)

	actor := policy.Actor{ID: 1, Role: model.RoleProjectManager}

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `checklist_criteria`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	_, err := CreateTemplate(db, actor, dto.CreateTemplateRequest{
		TemplateName: "Doc Review",
		CriterionIDs: []int{11, 99},
	})
	assert.True(errors.Is(err, apperr.ErrInvalidArgument))
	assert.NoError(mock.ExpectationsWereMet())
}

func TestCreateTemplateWritesLinks(t *testing.T) {
	db, mock := newMockDB(t)
	assert := assert.New(t)

	actor := policy.Actor{ID: 1, Role: model.RoleAdmin}

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `checklist_criteria`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(2))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `task_templates`").
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectExec("INSERT INTO `template_checklist_links`").
		WithArgs(9, 11, 9, 12).
		WillReturnResult(sqlmock.NewResult(1, 2))
	mock.ExpectCommit()

	template, err := CreateTemplate(db, actor, dto.CreateTemplateRequest{
		TemplateName: "Doc Review",
		// Duplicate ids collapse to one link.
		CriterionIDs: []int{11, 12, 11},
	})
	assert.NoError(err)
	assert.Equal(9, template.TemplateID)
	assert.NoError(mock.ExpectationsWereMet())
}
