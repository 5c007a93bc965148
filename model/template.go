package model

import (
	"time"
)

type TaskTemplate struct {
	TemplateID   int       `gorm:"column:template_id;primaryKey;autoIncrement"`
	TemplateName string    `gorm:"column:template_name;type:varchar(255);not null"`
	CreateAt     time.Time `gorm:"column:create_at;autoCreateTime"`
	UpdateAt     time.Time `gorm:"column:update_at;autoUpdateTime"`
}

func (TaskTemplate) TableName() string {
	return "task_templates"
}

// One row per criterion attached to a template, unique per pair.
type TemplateChecklistLink struct {
	LinkID      int `gorm:"column:link_id;primaryKey;autoIncrement"`
	TemplateID  int `gorm:"column:template_id;not null;uniqueIndex:idx_template_criterion"`
	CriterionID int `gorm:"column:criterion_id;not null;uniqueIndex:idx_template_criterion"`

	// Relations
	Template  TaskTemplate       `gorm:"foreignKey:TemplateID;references:TemplateID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
	Criterion ChecklistCriterion `gorm:"foreignKey:CriterionID;references:CriterionID;constraint:OnUpdate:CASCADE"`
}

func (TemplateChecklistLink) TableName() string {
	return "template_checklist_links"
}
