package service

import (
	"strings"

	"doctrack/apperr"
	"doctrack/dto"
	"doctrack/model"
	"doctrack/policy"

	"gorm.io/gorm"
)

func CreateProject(db *gorm.DB, actor policy.Actor, req dto.CreateProjectRequest) (*model.Project, error) {
	if !actor.Privileged() {
		return nil, apperr.Forbidden("only a project manager or admin can manage projects")
	}

	project := model.Project{
		ProjectName: strings.TrimSpace(req.ProjectName),
		Description: req.Description,
		IsActive:    true,
		CreateBy:    actor.ID,
	}
	if project.ProjectName == "" {
		return nil, apperr.InvalidArgument("project name is required")
	}
	if err := db.Create(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func UpdateProject(db *gorm.DB, actor policy.Actor, projectID int, req dto.UpdateProjectRequest) (*model.Project, error) {
	if !actor.Privileged() {
		return nil, apperr.Forbidden("only a project manager or admin can manage projects")
	}

	updates := map[string]interface{}{}
	if name := strings.TrimSpace(req.ProjectName); name != "" {
		updates["project_name"] = name
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return nil, apperr.InvalidArgument("nothing to update")
	}

	result := db.Model(&model.Project{}).Where("project_id = ?", projectID).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, apperr.NotFound("project", projectID)
	}

	var project model.Project
	if err := db.Where("project_id = ?", projectID).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// ListProjects is policy-scoped the same way as task lists: privileged actors
// see everything, employees only projects where they have at least one task.
func ListProjects(db *gorm.DB, actor policy.Actor) ([]model.Project, error) {
	query := db.Order("project_name")
	if !actor.Privileged() {
		query = query.Where(
			"project_id IN (?)",
			db.Model(&model.Task{}).Select("project_id").Where("assignee_user_id = ?", actor.ID),
		)
	}

	var projects []model.Project
	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func CreateDocumentType(db *gorm.DB, actor policy.Actor, req dto.CreateDocumentTypeRequest) (*model.DocumentType, error) {
	if !actor.Privileged() {
		return nil, apperr.Forbidden("only a project manager or admin can manage document types")
	}

	docType := model.DocumentType{TypeName: strings.TrimSpace(req.TypeName)}
	if docType.TypeName == "" {
		return nil, apperr.InvalidArgument("type name is required")
	}
	if err := db.Create(&docType).Error; err != nil {
		return nil, err
	}
	return &docType, nil
}

func ListDocumentTypes(db *gorm.DB) ([]model.DocumentType, error) {
	var docTypes []model.DocumentType
	if err := db.Order("type_name").Find(&docTypes).Error; err != nil {
		return nil, err
	}
	return docTypes, nil
}
