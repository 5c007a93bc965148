package service

import (
	"errors"
	"strings"
	"time"

	"doctrack/apperr"
	"doctrack/dto"
	"doctrack/model"
	"doctrack/policy"

	"gorm.io/gorm"
)

// deriveStatus maps the complete current checklist of a task to its status.
// It is a pure function of the item set: all checked means Done, any checked
// means OnGoing, none checked means ToDo. A task with no items keeps whatever
// status it already had. Callers must always pass the full current set, never
// just the rows they touched.
func deriveStatus(items []model.ProgressItem, prev string) string {
	if len(items) == 0 {
		return prev
	}
	checked := 0
	for _, item := range items {
		if item.Checked {
			checked++
		}
	}
	switch {
	case checked == len(items):
		return model.TaskStatusDone
	case checked > 0:
		return model.TaskStatusOnGoing
	default:
		return model.TaskStatusToDo
	}
}

// recomputeStatus re-reads every progress item of the task and persists the
// derived status. Runs inside the caller's transaction so the status is never
// written from a stale item set.
func recomputeStatus(tx *gorm.DB, task *model.Task) error {
	var items []model.ProgressItem
	if err := tx.Where("task_id = ?", task.TaskID).Find(&items).Error; err != nil {
		return err
	}

	status := deriveStatus(items, task.Status)
	updates := map[string]interface{}{"status": status}
	if status == model.TaskStatusDone {
		if task.CompletedDate == nil {
			now := time.Now()
			updates["completed_date"] = now
			task.CompletedDate = &now
		}
	} else if len(items) > 0 {
		updates["completed_date"] = nil
		task.CompletedDate = nil
	}
	task.Status = status

	return tx.Model(&model.Task{}).Where("task_id = ?", task.TaskID).Updates(updates).Error
}

func fetchTask(tx *gorm.DB, taskID int) (*model.Task, error) {
	var task model.Task
	if err := tx.Where("task_id = ?", taskID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("task", taskID)
		}
		return nil, err
	}
	return &task, nil
}

// CreateTask creates a task from a template, cloning one unchecked progress
// item per template criterion. The task row and its cloned items are written
// in one transaction; a task never exists with a partial checklist. The
// template's name is snapshotted onto the task so later template renames or
// deletes cannot touch it.
func CreateTask(db *gorm.DB, actor policy.Actor, req dto.CreateTaskRequest) (*model.Task, error) {
	name := strings.TrimSpace(req.TaskName)
	if name == "" {
		return nil, apperr.InvalidArgument("task name is required")
	}

	// A non-privileged actor can only ever create tasks for themselves,
	// whatever assignee the request carries.
	assigneeID := req.AssigneeUserID
	if !policy.CanReassign(actor) || assigneeID == 0 {
		assigneeID = actor.ID
	}

	var docType model.DocumentType
	if err := db.Where("document_type_id = ?", req.DocumentTypeID).First(&docType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.InvalidArgument("document type does not exist")
		}
		return nil, err
	}
	var project model.Project
	if err := db.Where("project_id = ?", req.ProjectID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.InvalidArgument("project does not exist")
		}
		return nil, err
	}
	var assignee model.User
	if err := db.Where("user_id = ?", assigneeID).First(&assignee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.InvalidArgument("assignee does not exist")
		}
		return nil, err
	}

	var template model.TaskTemplate
	if err := db.Where("template_id = ?", req.TemplateID).First(&template).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("template", req.TemplateID)
		}
		return nil, err
	}
	var links []model.TemplateChecklistLink
	if err := db.Where("template_id = ?", template.TemplateID).Find(&links).Error; err != nil {
		return nil, err
	}

	task := model.Task{
		TaskName:       name,
		DocumentTypeID: req.DocumentTypeID,
		ProjectID:      req.ProjectID,
		AssigneeUserID: assigneeID,
		TemplateName:   template.TemplateName,
		Status:         model.TaskStatusNotStarted,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&task).Error; err != nil {
			return err
		}
		if len(links) == 0 {
			return nil
		}
		items := make([]model.ProgressItem, 0, len(links))
		for _, link := range links {
			items = append(items, model.ProgressItem{
				TaskID:      task.TaskID,
				CriterionID: link.CriterionID,
				Checked:     false,
			})
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return nil, err
	}

	return &task, nil
}

// UpdateTask mutates task fields. Privileged actors may change everything
// including the assignee; an employee may only rename their own task, and an
// attempt to touch any other field is rejected rather than ignored.
func UpdateTask(db *gorm.DB, actor policy.Actor, taskID int, req dto.UpdateTaskRequest) (*model.Task, error) {
	task, err := fetchTask(db, taskID)
	if err != nil {
		return nil, err
	}
	if !policy.CanWriteTask(actor, *task) {
		return nil, apperr.Forbidden("task is not assigned to you")
	}

	updates := map[string]interface{}{}

	if name := strings.TrimSpace(req.TaskName); name != "" && name != task.TaskName {
		updates["task_name"] = name
		task.TaskName = name
	}

	if !policy.CanReassign(actor) {
		if req.AssigneeUserID != 0 && req.AssigneeUserID != task.AssigneeUserID {
			return nil, apperr.Forbidden("only a project manager or admin can reassign a task")
		}
		if (req.DocumentTypeID != 0 && req.DocumentTypeID != task.DocumentTypeID) ||
			(req.ProjectID != 0 && req.ProjectID != task.ProjectID) {
			return nil, apperr.Forbidden("only a project manager or admin can move a task")
		}
	} else {
		if req.DocumentTypeID != 0 && req.DocumentTypeID != task.DocumentTypeID {
			var docType model.DocumentType
			if err := db.Where("document_type_id = ?", req.DocumentTypeID).First(&docType).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, apperr.InvalidArgument("document type does not exist")
				}
				return nil, err
			}
			updates["document_type_id"] = req.DocumentTypeID
			task.DocumentTypeID = req.DocumentTypeID
		}
		if req.ProjectID != 0 && req.ProjectID != task.ProjectID {
			var project model.Project
			if err := db.Where("project_id = ?", req.ProjectID).First(&project).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, apperr.InvalidArgument("project does not exist")
				}
				return nil, err
			}
			updates["project_id"] = req.ProjectID
			task.ProjectID = req.ProjectID
		}
		if req.AssigneeUserID != 0 && req.AssigneeUserID != task.AssigneeUserID {
			var assignee model.User
			if err := db.Where("user_id = ?", req.AssigneeUserID).First(&assignee).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, apperr.InvalidArgument("assignee does not exist")
				}
				return nil, err
			}
			updates["assignee_user_id"] = req.AssigneeUserID
			task.AssigneeUserID = req.AssigneeUserID
		}
	}

	if len(updates) == 0 {
		return task, nil
	}
	if err := db.Model(&model.Task{}).Where("task_id = ?", taskID).Updates(updates).Error; err != nil {
		return nil, err
	}
	return task, nil
}

func DeleteTask(db *gorm.DB, actor policy.Actor, taskID int) error {
	task, err := fetchTask(db, taskID)
	if err != nil {
		return err
	}
	if !policy.CanWriteTask(actor, *task) {
		return apperr.Forbidden("task is not assigned to you")
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", taskID).Delete(&model.ProgressItem{}).Error; err != nil {
			return err
		}
		return tx.Where("task_id = ?", taskID).Delete(&model.Task{}).Error
	})
}

func GetTask(db *gorm.DB, actor policy.Actor, taskID int) (*model.Task, error) {
	task, err := fetchTask(db, taskID)
	if err != nil {
		return nil, err
	}
	if !policy.CanReadTask(actor, *task) {
		return nil, apperr.Forbidden("task is not assigned to you")
	}
	return task, nil
}

// ListTasks returns tasks visible to the actor. The policy scope is applied
// before any caller-supplied filter, so an employee's filters can only narrow
// their own tasks further.
func ListTasks(db *gorm.DB, actor policy.Actor, filter dto.ListTasksFilter) ([]model.Task, error) {
	query := db.Scopes(policy.ScopeTasks(actor))
	if filter.ProjectID != 0 {
		query = query.Where("project_id = ?", filter.ProjectID)
	}
	if filter.AssigneeUserID != 0 {
		query = query.Where("assignee_user_id = ?", filter.AssigneeUserID)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		query = query.Where("task_name LIKE ?", "%"+search+"%")
	}

	var tasks []model.Task
	if err := query.Order("date_added DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}
