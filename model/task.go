package model

import (
	"time"
)

const (
	TaskStatusNotStarted = "NOT_STARTED"
	TaskStatusToDo       = "TO_DO"
	TaskStatusOnGoing    = "ON_GOING"
	TaskStatusDone       = "DONE"
)

type Task struct {
	TaskID         int        `gorm:"column:task_id;primaryKey;autoIncrement"`
	TaskName       string     `gorm:"column:task_name;type:varchar(255);not null"`
	DocumentTypeID int        `gorm:"column:document_type_id;not null"`
	ProjectID      int        `gorm:"column:project_id;not null"`
	AssigneeUserID int        `gorm:"column:assignee_user_id;not null"`
	TemplateName   string     `gorm:"column:template_name;type:varchar(255);not null"`
	Status         string     `gorm:"column:status;type:enum('NOT_STARTED','TO_DO','ON_GOING','DONE');default:'NOT_STARTED';not null"`
	DateAdded      time.Time  `gorm:"column:date_added;autoCreateTime"`
	CompletedDate  *time.Time `gorm:"column:completed_date"`

	// Relations
	DocumentType DocumentType `gorm:"foreignKey:DocumentTypeID;references:DocumentTypeID;constraint:OnUpdate:CASCADE"`
	Project      Project      `gorm:"foreignKey:ProjectID;references:ProjectID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
	Assignee     User         `gorm:"foreignKey:AssigneeUserID;references:UserID;constraint:OnUpdate:CASCADE"`
}

func (Task) TableName() string {
	return "tasks"
}
