package service

import (
	"errors"
	"strings"

	"doctrack/apperr"
	"doctrack/dto"
	"doctrack/model"
	"doctrack/policy"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func CreateUser(db *gorm.DB, actor policy.Actor, req dto.CreateUserRequest) (*model.User, error) {
	if actor.Role != model.RoleAdmin {
		return nil, apperr.Forbidden("only an admin can manage employees")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	var count int64
	if err := db.Model(&model.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Conflict("email is already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := model.User{
		Email:          email,
		Name:           strings.TrimSpace(req.Name),
		HashedPassword: string(hashed),
		Role:           req.Role,
		IsActive:       true,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func UpdateUser(db *gorm.DB, actor policy.Actor, userID int, req dto.UpdateUserRequest) (*model.User, error) {
	if actor.Role != model.RoleAdmin {
		return nil, apperr.Forbidden("only an admin can manage employees")
	}

	var user model.User
	if err := db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user", userID)
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if name := strings.TrimSpace(req.Name); name != "" {
		updates["name"] = name
		user.Name = name
	}
	if req.Role != "" {
		updates["role"] = req.Role
		user.Role = req.Role
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
		user.IsActive = *req.IsActive
	}
	if len(updates) == 0 {
		return &user, nil
	}

	if err := db.Model(&model.User{}).Where("user_id = ?", userID).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func DeleteUser(db *gorm.DB, actor policy.Actor, userID int) error {
	if actor.Role != model.RoleAdmin {
		return apperr.Forbidden("only an admin can manage employees")
	}
	if actor.ID == userID {
		return apperr.InvalidArgument("cannot delete your own account")
	}

	var count int64
	if err := db.Model(&model.Task{}).Where("assignee_user_id = ?", userID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperr.Conflict("user still has assigned tasks")
	}

	result := db.Where("user_id = ?", userID).Delete(&model.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("user", userID)
	}
	return nil
}

func ListUsers(db *gorm.DB) ([]model.User, error) {
	var users []model.User
	if err := db.Order("name").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
