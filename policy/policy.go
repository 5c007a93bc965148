package policy

import (
	"doctrack/model"

	"gorm.io/gorm"
)

// Actor is the already-authenticated caller of every service operation.
// There is no ambient current user; handlers build one from the token claims
// and pass it down explicitly.
type Actor struct {
	ID   int
	Role string
}

// Privileged reports whether the actor may act across all tasks: create for
// any assignee, reassign, and edit any checklist.
func (a Actor) Privileged() bool {
	return a.Role == model.RoleAdmin || a.Role == model.RoleProjectManager
}

// CanReadTask and CanWriteTask implement the two-tier rule: privileged roles
// see and edit everything, employees only their own tasks. Evaluated on every
// call, never cached, since role and assignment can change between requests.
func CanReadTask(actor Actor, task model.Task) bool {
	return actor.Privileged() || task.AssigneeUserID == actor.ID
}

func CanWriteTask(actor Actor, task model.Task) bool {
	return CanReadTask(actor, task)
}

func CanReassign(actor Actor) bool {
	return actor.Privileged()
}

// ScopeTasks narrows a task list query to what the actor may see. For
// employees the assignee filter is a security boundary, not a convenience.
func ScopeTasks(actor Actor) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if actor.Privileged() {
			return db
		}
		return db.Where("assignee_user_id = ?", actor.ID)
	}
}
