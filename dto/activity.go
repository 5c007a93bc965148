package dto

type CloneWeekRequest struct {
	ProjectID    int    `json:"project_id" binding:"required"`
	SourceWeekID int    `json:"source_week_id"`
	WeekStart    string `json:"week_start"` // YYYY-MM-DD, defaults to next Monday
}

type CreateCategoryRequest struct {
	WeekID       int    `json:"week_id" binding:"required"`
	CategoryName string `json:"category_name" binding:"required"`
}

type CreateActivityItemRequest struct {
	CategoryID   int    `json:"category_id" binding:"required"`
	ActivityName string `json:"activity_name" binding:"required"`
}

type UpdateActivityItemRequest struct {
	Result  string `json:"result"`
	Comment string `json:"comment"`
}
