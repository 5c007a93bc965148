package model

import (
	"time"
)

type ActivityWeek struct {
	WeekID    int       `gorm:"column:week_id;primaryKey;autoIncrement"`
	ProjectID int       `gorm:"column:project_id;not null;uniqueIndex:idx_project_week_start"`
	WeekStart time.Time `gorm:"column:week_start;type:date;not null;uniqueIndex:idx_project_week_start"`
	CreateAt  time.Time `gorm:"column:create_at;autoCreateTime"`

	// Relations
	Project Project `gorm:"foreignKey:ProjectID;references:ProjectID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
}

func (ActivityWeek) TableName() string {
	return "activity_weeks"
}

type ActivityCategory struct {
	CategoryID   int    `gorm:"column:category_id;primaryKey;autoIncrement"`
	WeekID       int    `gorm:"column:week_id;not null"`
	CategoryName string `gorm:"column:category_name;type:varchar(255);not null"`

	// Relations
	Week ActivityWeek `gorm:"foreignKey:WeekID;references:WeekID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
}

func (ActivityCategory) TableName() string {
	return "activity_categories"
}

type ActivityItem struct {
	ActivityItemID int       `gorm:"column:activity_item_id;primaryKey;autoIncrement"`
	CategoryID     int       `gorm:"column:category_id;not null"`
	ActivityName   string    `gorm:"column:activity_name;type:varchar(255);not null"`
	Result         string    `gorm:"column:result;type:text"`
	Comment        string    `gorm:"column:comment;type:text"`
	UpdateAt       time.Time `gorm:"column:update_at;autoUpdateTime"`

	// Relations
	Category ActivityCategory `gorm:"foreignKey:CategoryID;references:CategoryID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
}

func (ActivityItem) TableName() string {
	return "activity_items"
}
