package dto

type CreateTemplateRequest struct {
	TemplateName string `json:"template_name" binding:"required"`
	CriterionIDs []int  `json:"criterion_ids" binding:"required"`
}

type UpdateTemplateRequest struct {
	TemplateName string `json:"template_name"`
	CriterionIDs *[]int `json:"criterion_ids"`
}
