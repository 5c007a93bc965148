package service

import (
	"strings"

	"doctrack/apperr"
	"doctrack/dto"
	"doctrack/model"
	"doctrack/policy"

	"gorm.io/gorm"
)

func CreateCriterion(db *gorm.DB, actor policy.Actor, req dto.CreateCriterionRequest) (*model.ChecklistCriterion, error) {
	if !actor.Privileged() {
		return nil, apperr.Forbidden("only a project manager or admin can manage the checklist catalog")
	}
	text := strings.TrimSpace(req.CriteriaText)
	if text == "" {
		return nil, apperr.InvalidArgument("criteria text is required")
	}

	criterion := model.ChecklistCriterion{CriteriaText: text, Hint: req.Hint}
	if err := db.Create(&criterion).Error; err != nil {
		return nil, err
	}
	return &criterion, nil
}

func UpdateCriterion(db *gorm.DB, actor policy.Actor, criterionID int, req dto.UpdateCriterionRequest) (*model.ChecklistCriterion, error) {
	if !actor.Privileged() {
		return nil, apperr.Forbidden("only a project manager or admin can manage the checklist catalog")
	}

	updates := map[string]interface{}{}
	if text := strings.TrimSpace(req.CriteriaText); text != "" {
		updates["criteria_text"] = text
	}
	if req.Hint != "" {
		updates["hint"] = req.Hint
	}
	if len(updates) == 0 {
		return nil, apperr.InvalidArgument("nothing to update")
	}

	result := db.Model(&model.ChecklistCriterion{}).
		Where("criterion_id = ?", criterionID).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, apperr.NotFound("criterion", criterionID)
	}

	var criterion model.ChecklistCriterion
	if err := db.Where("criterion_id = ?", criterionID).First(&criterion).Error; err != nil {
		return nil, err
	}
	return &criterion, nil
}

// DeleteCriterion refuses to remove a criterion that any template link or any
// live progress item still references. Cloned checklists keep their criterion
// rows; silently cascading here would punch holes in historical tasks.
func DeleteCriterion(db *gorm.DB, actor policy.Actor, criterionID int) error {
	if !actor.Privileged() {
		return apperr.Forbidden("only a project manager or admin can manage the checklist catalog")
	}

	var linkCount int64
	if err := db.Model(&model.TemplateChecklistLink{}).
		Where("criterion_id = ?", criterionID).Count(&linkCount).Error; err != nil {
		return err
	}
	if linkCount > 0 {
		return apperr.Conflict("criterion is referenced by a template")
	}

	var itemCount int64
	if err := db.Model(&model.ProgressItem{}).
		Where("criterion_id = ?", criterionID).Count(&itemCount).Error; err != nil {
		return err
	}
	if itemCount > 0 {
		return apperr.Conflict("criterion is referenced by task checklists")
	}

	result := db.Where("criterion_id = ?", criterionID).Delete(&model.ChecklistCriterion{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("criterion", criterionID)
	}
	return nil
}

func ListCriteria(db *gorm.DB) ([]model.ChecklistCriterion, error) {
	var criteria []model.ChecklistCriterion
	if err := db.Order("criterion_id").Find(&criteria).Error; err != nil {
		return nil, err
	}
	return criteria, nil
}
