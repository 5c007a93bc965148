package model

import (
	"time"
)

type Project struct {
	ProjectID   int       `gorm:"column:project_id;primaryKey;autoIncrement"`
	ProjectName string    `gorm:"column:project_name;type:varchar(255);not null"`
	Description string    `gorm:"column:description;type:text"`
	IsActive    bool      `gorm:"column:is_active;default:true;not null"`
	CreateBy    int       `gorm:"column:create_by"`
	CreateAt    time.Time `gorm:"column:create_at;autoCreateTime"`

	// Relations
	Creator User `gorm:"foreignKey:CreateBy;references:UserID;constraint:OnUpdate:CASCADE"`
}

func (Project) TableName() string {
	return "projects"
}

type DocumentType struct {
	DocumentTypeID int       `gorm:"column:document_type_id;primaryKey;autoIncrement"`
	TypeName       string    `gorm:"column:type_name;type:varchar(255);not null"`
	CreateAt       time.Time `gorm:"column:create_at;autoCreateTime"`
}

func (DocumentType) TableName() string {
	return "document_types"
}
