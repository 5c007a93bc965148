package policy_test

import (
	"testing"

	"doctrack/model"
	"doctrack/policy"

	"github.com/stretchr/testify/assert"
)

func TestPrivileged(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.True(policy.Actor{ID: 1, Role: model.RoleAdmin}.Privileged())
	assert.True(policy.Actor{ID: 2, Role: model.RoleProjectManager}.Privileged())
	assert.False(policy.Actor{ID: 3, Role: model.RoleEmployee}.Privileged())
}

func TestEmployeeOnlySeesOwnTasks(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	employee := policy.Actor{ID: 5, Role: model.RoleEmployee}
	mine := model.Task{TaskID: 1, AssigneeUserID: 5}
	theirs := model.Task{TaskID: 2, AssigneeUserID: 7}

	assert.True(policy.CanReadTask(employee, mine))
	assert.True(policy.CanWriteTask(employee, mine))
	assert.False(policy.CanReadTask(employee, theirs))
	assert.False(policy.CanWriteTask(employee, theirs))
}

func TestPrivilegedRolesSeeEverything(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	theirs := model.Task{TaskID: 2, AssigneeUserID: 7}
	for _, role := range []string{model.RoleAdmin, model.RoleProjectManager} {
		actor := policy.Actor{ID: 1, Role: role}
		assert.True(policy.CanReadTask(actor, theirs), role)
		assert.True(policy.CanWriteTask(actor, theirs), role)
		assert.True(policy.CanReassign(actor), role)
	}
}

func TestEmployeeCannotReassign(t *testing.T) {
	t.Parallel()

	assert.False(t, policy.CanReassign(policy.Actor{ID: 5, Role: model.RoleEmployee}))
}
