package dto

type CreateTaskRequest struct {
	TaskName       string `json:"task_name" binding:"required"`
	DocumentTypeID int    `json:"document_type_id" binding:"required"`
	TemplateID     int    `json:"template_id" binding:"required"`
	ProjectID      int    `json:"project_id" binding:"required"`
	AssigneeUserID int    `json:"assignee_user_id"`
}

type UpdateTaskRequest struct {
	TaskName       string `json:"task_name"`
	DocumentTypeID int    `json:"document_type_id"`
	ProjectID      int    `json:"project_id"`
	AssigneeUserID int    `json:"assignee_user_id"`
}

type ListTasksFilter struct {
	ProjectID      int    `form:"project_id"`
	AssigneeUserID int    `form:"assignee_user_id"`
	Search         string `form:"search"`
}
