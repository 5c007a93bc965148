package model

import (
	"time"
)

const (
	RoleAdmin          = "admin"
	RoleProjectManager = "project_manager"
	RoleEmployee       = "employee"
)

type User struct {
	UserID         int       `gorm:"column:user_id;primaryKey;autoIncrement"`
	Email          string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex"`
	Name           string    `gorm:"column:name;type:varchar(255);not null"`
	HashedPassword string    `gorm:"column:hashed_password;type:varchar(255);not null"`
	Role           string    `gorm:"column:role;type:enum('admin','project_manager','employee');default:'employee';not null"`
	IsActive       bool      `gorm:"column:is_active;default:true;not null"`
	CreateAt       time.Time `gorm:"column:create_at;autoCreateTime"`
}

func (User) TableName() string {
	return "user"
}
