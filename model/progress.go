package model

import (
	"time"
)

// ProgressItem is one checklist row owned by a task. Rows are cloned from a
// template's links at task creation and never re-synced with the template
// afterwards; the criterion reference is a snapshot taken at clone time.
type ProgressItem struct {
	ProgressItemID int       `gorm:"column:progress_item_id;primaryKey;autoIncrement"`
	TaskID         int       `gorm:"column:task_id;not null;uniqueIndex:idx_task_criterion"`
	CriterionID    int       `gorm:"column:criterion_id;not null;uniqueIndex:idx_task_criterion"`
	Checked        bool      `gorm:"column:checked;default:false;not null"`
	Comment        string    `gorm:"column:comment;type:text"`
	UpdateAt       time.Time `gorm:"column:update_at;autoUpdateTime"`

	// Relations
	Task      Task               `gorm:"foreignKey:TaskID;references:TaskID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
	Criterion ChecklistCriterion `gorm:"foreignKey:CriterionID;references:CriterionID;constraint:OnUpdate:CASCADE"`
}

func (ProgressItem) TableName() string {
	return "progress_items"
}
