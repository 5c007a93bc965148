package service

import (
	"errors"
	"strings"

	"doctrack/apperr"
	"doctrack/dto"
	"doctrack/model"
	"doctrack/policy"

	"gorm.io/gorm"
)

// A template is a specification: tasks clone it at creation time and are
// never touched by template edits afterwards.

func CreateTemplate(db *gorm.DB, actor policy.Actor, req dto.CreateTemplateRequest) (*model.TaskTemplate, error) {
	if !actor.Privileged() {
		return nil, apperr.Forbidden("only a project manager or admin can manage templates")
	}
	name := strings.TrimSpace(req.TemplateName)
	if name == "" {
		return nil, apperr.InvalidArgument("template name is required")
	}

	criterionIDs, err := dedupeCriterionIDs(db, req.CriterionIDs)
	if err != nil {
		return nil, err
	}

	template := model.TaskTemplate{TemplateName: name}
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&template).Error; err != nil {
			return err
		}
		return createTemplateLinks(tx, template.TemplateID, criterionIDs)
	})
	if err != nil {
		return nil, err
	}
	return &template, nil
}

func UpdateTemplate(db *gorm.DB, actor policy.Actor, templateID int, req dto.UpdateTemplateRequest) (*model.TaskTemplate, error) {
	if !actor.Privileged() {
		return nil, apperr.Forbidden("only a project manager or admin can manage templates")
	}

	var template model.TaskTemplate
	if err := db.Where("template_id = ?", templateID).First(&template).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("template", templateID)
		}
		return nil, err
	}

	var criterionIDs []int
	if req.CriterionIDs != nil {
		ids, err := dedupeCriterionIDs(db, *req.CriterionIDs)
		if err != nil {
			return nil, err
		}
		criterionIDs = ids
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if name := strings.TrimSpace(req.TemplateName); name != "" && name != template.TemplateName {
			if err := tx.Model(&model.TaskTemplate{}).
				Where("template_id = ?", templateID).
				Update("template_name", name).Error; err != nil {
				return err
			}
			template.TemplateName = name
		}
		if req.CriterionIDs == nil {
			return nil
		}
		// Replace the link set wholesale; existing tasks keep their clones.
		if err := tx.Where("template_id = ?", templateID).
			Delete(&model.TemplateChecklistLink{}).Error; err != nil {
			return err
		}
		return createTemplateLinks(tx, templateID, criterionIDs)
	})
	if err != nil {
		return nil, err
	}
	return &template, nil
}

func DeleteTemplate(db *gorm.DB, actor policy.Actor, templateID int) error {
	if !actor.Privileged() {
		return apperr.Forbidden("only a project manager or admin can manage templates")
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("template_id = ?", templateID).
			Delete(&model.TemplateChecklistLink{}).Error; err != nil {
			return err
		}
		result := tx.Where("template_id = ?", templateID).Delete(&model.TaskTemplate{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperr.NotFound("template", templateID)
		}
		return nil
	})
}

func ListTemplates(db *gorm.DB) ([]model.TaskTemplate, error) {
	var templates []model.TaskTemplate
	if err := db.Order("template_name").Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

func GetTemplateCriteria(db *gorm.DB, templateID int) ([]model.ChecklistCriterion, error) {
	var template model.TaskTemplate
	if err := db.Where("template_id = ?", templateID).First(&template).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("template", templateID)
		}
		return nil, err
	}

	var criteria []model.ChecklistCriterion
	err := db.Joins("JOIN template_checklist_links ON template_checklist_links.criterion_id = checklist_criteria.criterion_id").
		Where("template_checklist_links.template_id = ?", templateID).
		Find(&criteria).Error
	if err != nil {
		return nil, err
	}
	return criteria, nil
}

func dedupeCriterionIDs(db *gorm.DB, ids []int) ([]int, error) {
	seen := make(map[int]bool, len(ids))
	deduped := make([]int, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			deduped = append(deduped, id)
		}
	}
	if len(deduped) == 0 {
		return deduped, nil
	}

	var count int64
	if err := db.Model(&model.ChecklistCriterion{}).
		Where("criterion_id IN ?", deduped).Count(&count).Error; err != nil {
		return nil, err
	}
	if int(count) != len(deduped) {
		return nil, apperr.InvalidArgument("one or more criteria do not exist")
	}
	return deduped, nil
}

func createTemplateLinks(tx *gorm.DB, templateID int, criterionIDs []int) error {
	if len(criterionIDs) == 0 {
		return nil
	}
	links := make([]model.TemplateChecklistLink, 0, len(criterionIDs))
	for _, id := range criterionIDs {
		links = append(links, model.TemplateChecklistLink{
			TemplateID:  templateID,
			CriterionID: id,
		})
	}
	return tx.Create(&links).Error
}
