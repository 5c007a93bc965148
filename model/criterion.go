package model

import (
	"time"
)

type ChecklistCriterion struct {
	CriterionID  int       `gorm:"column:criterion_id;primaryKey;autoIncrement"`
	CriteriaText string    `gorm:"column:criteria_text;type:varchar(255);not null"`
	Hint         string    `gorm:"column:hint;type:text"`
	CreateAt     time.Time `gorm:"column:create_at;autoCreateTime"`
	UpdateAt     time.Time `gorm:"column:update_at;autoUpdateTime"`
}

func (ChecklistCriterion) TableName() string {
	return "checklist_criteria"
}
