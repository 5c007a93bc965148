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

func GetProgressItems(db *gorm.DB, actor policy.Actor, taskID int) ([]model.ProgressItem, error) {
	task, err := fetchTask(db, taskID)
	if err != nil {
		return nil, err
	}
	if !policy.CanReadTask(actor, *task) {
		return nil, apperr.Forbidden("task is not assigned to you")
	}

	var items []model.ProgressItem
	if err := db.Preload("Criterion").Where("task_id = ?", taskID).
		Order("progress_item_id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateProgressItems applies a batch of checked/comment patches and then
// recomputes the task status from the complete current item set, all in one
// transaction. A patch referencing an item that does not belong to the task
// fails the whole batch; nothing is applied partially.
func UpdateProgressItems(db *gorm.DB, actor policy.Actor, taskID int, patches []dto.ProgressItemPatch) ([]model.ProgressItem, error) {
	if len(patches) == 0 {
		return nil, apperr.InvalidArgument("no progress items supplied")
	}

	var updated []model.ProgressItem
	err := db.Transaction(func(tx *gorm.DB) error {
		task, err := fetchTask(tx, taskID)
		if err != nil {
			return err
		}
		if !policy.CanWriteTask(actor, *task) {
			return apperr.Forbidden("task is not assigned to you")
		}

		var existing []model.ProgressItem
		if err := tx.Where("task_id = ?", taskID).Find(&existing).Error; err != nil {
			return err
		}
		owned := make(map[int]bool, len(existing))
		for _, item := range existing {
			owned[item.ProgressItemID] = true
		}

		for _, patch := range patches {
			if !owned[patch.ProgressItemID] {
				return apperr.NotFound("progress item", patch.ProgressItemID)
			}
			err := tx.Model(&model.ProgressItem{}).
				Where("progress_item_id = ? AND task_id = ?", patch.ProgressItemID, taskID).
				Updates(map[string]interface{}{
					"checked": patch.Checked,
					"comment": patch.Comment,
				}).Error
			if err != nil {
				return err
			}
		}

		if err := recomputeStatus(tx, task); err != nil {
			return err
		}

		return tx.Preload("Criterion").Where("task_id = ?", taskID).
			Order("progress_item_id").Find(&updated).Error
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// AddProgressItem appends one unchecked checklist row to an existing task,
// either reusing a catalog criterion or creating a new one. Privileged only.
// Adding an unchecked item to a Done task demotes it on the recompute.
func AddProgressItem(db *gorm.DB, actor policy.Actor, taskID int, req dto.AddProgressItemRequest) (*model.ProgressItem, error) {
	if !actor.Privileged() {
		return nil, apperr.Forbidden("only a project manager or admin can change a checklist")
	}

	var item model.ProgressItem
	err := db.Transaction(func(tx *gorm.DB) error {
		task, err := fetchTask(tx, taskID)
		if err != nil {
			return err
		}

		var criterion model.ChecklistCriterion
		if req.CriterionID != 0 {
			if err := tx.Where("criterion_id = ?", req.CriterionID).First(&criterion).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.NotFound("criterion", req.CriterionID)
				}
				return err
			}
		} else {
			text := strings.TrimSpace(req.CriteriaText)
			if text == "" {
				return apperr.InvalidArgument("criterion id or criteria text is required")
			}
			criterion = model.ChecklistCriterion{CriteriaText: text, Hint: req.Hint}
			if err := tx.Create(&criterion).Error; err != nil {
				return err
			}
		}

		var count int64
		err = tx.Model(&model.ProgressItem{}).
			Where("task_id = ? AND criterion_id = ?", taskID, criterion.CriterionID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return apperr.Conflict("criterion is already on this task's checklist")
		}

		item = model.ProgressItem{
			TaskID:      taskID,
			CriterionID: criterion.CriterionID,
			Checked:     false,
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		item.Criterion = criterion

		return recomputeStatus(tx, task)
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteProgressItem removes one checklist row and recomputes the task status.
// Privileged only. Removing the last unchecked row can promote the task to
// Done.
func DeleteProgressItem(db *gorm.DB, actor policy.Actor, taskID, progressItemID int) error {
	if !actor.Privileged() {
		return apperr.Forbidden("only a project manager or admin can change a checklist")
	}

	return db.Transaction(func(tx *gorm.DB) error {
		task, err := fetchTask(tx, taskID)
		if err != nil {
			return err
		}

		result := tx.Where("progress_item_id = ? AND task_id = ?", progressItemID, taskID).
			Delete(&model.ProgressItem{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperr.NotFound("progress item", progressItemID)
		}

		return recomputeStatus(tx, task)
	})
}
