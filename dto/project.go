package dto

type CreateProjectRequest struct {
	ProjectName string `json:"project_name" binding:"required"`
	Description string `json:"description"`
}

type UpdateProjectRequest struct {
	ProjectName string `json:"project_name"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

type CreateDocumentTypeRequest struct {
	TypeName string `json:"type_name" binding:"required"`
}
