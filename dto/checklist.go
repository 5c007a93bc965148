package dto

type ProgressItemPatch struct {
	ProgressItemID int    `json:"progress_item_id" binding:"required"`
	Checked        bool   `json:"checked"`
	Comment        string `json:"comment"`
}

type UpdateProgressItemsRequest struct {
	Items []ProgressItemPatch `json:"items" binding:"required,min=1,dive"`
}

// Either an existing catalog criterion or a fresh one, not both.
type AddProgressItemRequest struct {
	CriterionID  int    `json:"criterion_id"`
	CriteriaText string `json:"criteria_text"`
	Hint         string `json:"hint"`
}

type CreateCriterionRequest struct {
	CriteriaText string `json:"criteria_text" binding:"required"`
	Hint         string `json:"hint"`
}

type UpdateCriterionRequest struct {
	CriteriaText string `json:"criteria_text"`
	Hint         string `json:"hint"`
}
