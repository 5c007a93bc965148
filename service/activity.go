package service

import (
	"errors"
	"strings"
	"time"

	"doctrack/apperr"
	"doctrack/dto"
	"doctrack/model"
	"doctrack/policy"

	"gorm.io/gorm"
)

// The weekly activity log uses the same clone-and-snapshot pattern as task
// creation: a new week copies the category/item structure of a source week,
// with every mutable field (result, comment) reset. The copy holds no
// reference back to the source, so editing or deleting old weeks never
// touches new ones.

// NextMonday returns the Monday strictly after t, at midnight UTC.
func NextMonday(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	days := (8 - int(t.Weekday())) % 7
	if days == 0 {
		days = 7
	}
	return t.AddDate(0, 0, days)
}

func CloneWeek(db *gorm.DB, actor policy.Actor, req dto.CloneWeekRequest) (*model.ActivityWeek, error) {
	if !actor.Privileged() {
		return nil, apperr.Forbidden("only a project manager or admin can open a new week")
	}

	var project model.Project
	if err := db.Where("project_id = ?", req.ProjectID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("project", req.ProjectID)
		}
		return nil, err
	}

	weekStart := NextMonday(time.Now())
	if s := strings.TrimSpace(req.WeekStart); s != "" {
		parsed, err := time.ParseInLocation("2006-01-02", s, time.UTC)
		if err != nil {
			return nil, apperr.InvalidArgument("week_start must be YYYY-MM-DD")
		}
		weekStart = parsed
	}

	var source *model.ActivityWeek
	if req.SourceWeekID != 0 {
		var week model.ActivityWeek
		err := db.Where("week_id = ? AND project_id = ?", req.SourceWeekID, req.ProjectID).
			First(&week).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("week", req.SourceWeekID)
			}
			return nil, err
		}
		source = &week
	} else {
		var week model.ActivityWeek
		err := db.Where("project_id = ?", req.ProjectID).
			Order("week_start DESC").First(&week).Error
		if err == nil {
			source = &week
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		// No prior week: the new week starts empty.
	}

	var count int64
	err := db.Model(&model.ActivityWeek{}).
		Where("project_id = ? AND week_start = ?", req.ProjectID, weekStart).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Conflict("a week with this start date already exists for the project")
	}

	week := model.ActivityWeek{ProjectID: req.ProjectID, WeekStart: weekStart}
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&week).Error; err != nil {
			return err
		}
		if source == nil {
			return nil
		}
		return copyWeekStructure(tx, source.WeekID, week.WeekID)
	})
	if err != nil {
		return nil, err
	}
	return &week, nil
}

// copyWeekStructure clones categories and item names from one week into
// another. Results and comments are deliberately not carried over.
func copyWeekStructure(tx *gorm.DB, sourceWeekID, targetWeekID int) error {
	var categories []model.ActivityCategory
	if err := tx.Where("week_id = ?", sourceWeekID).
		Order("category_id").Find(&categories).Error; err != nil {
		return err
	}

	for _, category := range categories {
		var items []model.ActivityItem
		if err := tx.Where("category_id = ?", category.CategoryID).
			Order("activity_item_id").Find(&items).Error; err != nil {
			return err
		}

		cloned := model.ActivityCategory{
			WeekID:       targetWeekID,
			CategoryName: category.CategoryName,
		}
		if err := tx.Create(&cloned).Error; err != nil {
			return err
		}

		if len(items) == 0 {
			continue
		}
		clonedItems := make([]model.ActivityItem, 0, len(items))
		for _, item := range items {
			clonedItems = append(clonedItems, model.ActivityItem{
				CategoryID:   cloned.CategoryID,
				ActivityName: item.ActivityName,
			})
		}
		if err := tx.Create(&clonedItems).Error; err != nil {
			return err
		}
	}
	return nil
}

// RollForwardWeeks opens the week starting at weekStart for every active
// project that already keeps a weekly log, cloning each project's latest week.
// Projects already rolled forward are skipped. Called from the scheduler.
func RollForwardWeeks(db *gorm.DB, weekStart time.Time) (int, error) {
	var projects []model.Project
	if err := db.Where("is_active = ?", true).Find(&projects).Error; err != nil {
		return 0, err
	}

	rolled := 0
	for _, project := range projects {
		var latest model.ActivityWeek
		err := db.Where("project_id = ?", project.ProjectID).
			Order("week_start DESC").First(&latest).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return rolled, err
		}
		if !latest.WeekStart.Before(weekStart) {
			continue
		}

		week := model.ActivityWeek{ProjectID: project.ProjectID, WeekStart: weekStart}
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&week).Error; err != nil {
				return err
			}
			return copyWeekStructure(tx, latest.WeekID, week.WeekID)
		})
		if err != nil {
			return rolled, err
		}
		rolled++
	}
	return rolled, nil
}

func ListWeeks(db *gorm.DB, projectID int) ([]model.ActivityWeek, error) {
	var weeks []model.ActivityWeek
	if err := db.Where("project_id = ?", projectID).
		Order("week_start DESC").Find(&weeks).Error; err != nil {
		return nil, err
	}
	return weeks, nil
}

func GetWeekCategories(db *gorm.DB, weekID int) ([]model.ActivityCategory, error) {
	var week model.ActivityWeek
	if err := db.Where("week_id = ?", weekID).First(&week).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("week", weekID)
		}
		return nil, err
	}

	var categories []model.ActivityCategory
	if err := db.Where("week_id = ?", weekID).
		Order("category_id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func GetCategoryItems(db *gorm.DB, categoryID int) ([]model.ActivityItem, error) {
	var items []model.ActivityItem
	if err := db.Where("category_id = ?", categoryID).
		Order("activity_item_id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func CreateCategory(db *gorm.DB, actor policy.Actor, req dto.CreateCategoryRequest) (*model.ActivityCategory, error) {
	if !actor.Privileged() {
		return nil, apperr.Forbidden("only a project manager or admin can change the week structure")
	}

	var week model.ActivityWeek
	if err := db.Where("week_id = ?", req.WeekID).First(&week).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("week", req.WeekID)
		}
		return nil, err
	}

	category := model.ActivityCategory{
		WeekID:       req.WeekID,
		CategoryName: strings.TrimSpace(req.CategoryName),
	}
	if category.CategoryName == "" {
		return nil, apperr.InvalidArgument("category name is required")
	}
	if err := db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func DeleteCategory(db *gorm.DB, actor policy.Actor, categoryID int) error {
	if !actor.Privileged() {
		return apperr.Forbidden("only a project manager or admin can change the week structure")
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", categoryID).
			Delete(&model.ActivityItem{}).Error; err != nil {
			return err
		}
		result := tx.Where("category_id = ?", categoryID).Delete(&model.ActivityCategory{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperr.NotFound("category", categoryID)
		}
		return nil
	})
}

func CreateActivityItem(db *gorm.DB, actor policy.Actor, req dto.CreateActivityItemRequest) (*model.ActivityItem, error) {
	if !actor.Privileged() {
		return nil, apperr.Forbidden("only a project manager or admin can change the week structure")
	}

	var category model.ActivityCategory
	if err := db.Where("category_id = ?", req.CategoryID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("category", req.CategoryID)
		}
		return nil, err
	}

	item := model.ActivityItem{
		CategoryID:   req.CategoryID,
		ActivityName: strings.TrimSpace(req.ActivityName),
	}
	if item.ActivityName == "" {
		return nil, apperr.InvalidArgument("activity name is required")
	}
	if err := db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateActivityItem records this week's result/comment. Any authenticated
// employee working the project can fill these in; structure changes stay
// privileged.
func UpdateActivityItem(db *gorm.DB, actor policy.Actor, activityItemID int, req dto.UpdateActivityItemRequest) (*model.ActivityItem, error) {
	var item model.ActivityItem
	if err := db.Where("activity_item_id = ?", activityItemID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("activity item", activityItemID)
		}
		return nil, err
	}

	err := db.Model(&model.ActivityItem{}).
		Where("activity_item_id = ?", activityItemID).
		Updates(map[string]interface{}{
			"result":  req.Result,
			"comment": req.Comment,
		}).Error
	if err != nil {
		return nil, err
	}
	item.Result = req.Result
	item.Comment = req.Comment
	return &item, nil
}

func DeleteActivityItem(db *gorm.DB, actor policy.Actor, activityItemID int) error {
	if !actor.Privileged() {
		return apperr.Forbidden("only a project manager or admin can change the week structure")
	}

	result := db.Where("activity_item_id = ?", activityItemID).Delete(&model.ActivityItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("activity item", activityItemID)
	}
	return nil
}
