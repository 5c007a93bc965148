package project

import (
	"net/http"
	"strconv"

	"doctrack/controller"
	"doctrack/dto"
	"doctrack/middleware"
	"doctrack/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ProjectController(router *gin.Engine, db *gorm.DB) {
	router.GET("/projects", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		ListProjects(c, db)
	})
	router.POST("/project", middleware.AccessTokenMiddleware(), middleware.PrivilegedMiddleware(), func(c *gin.Context) {
		CreateProject(c, db)
	})
	router.PUT("/project/:projectid", middleware.AccessTokenMiddleware(), middleware.PrivilegedMiddleware(), func(c *gin.Context) {
		UpdateProject(c, db)
	})
	router.GET("/documenttypes", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		ListDocumentTypes(c, db)
	})
	router.POST("/documenttype", middleware.AccessTokenMiddleware(), middleware.PrivilegedMiddleware(), func(c *gin.Context) {
		CreateDocumentType(c, db)
	})
}

func ListProjects(c *gin.Context, db *gorm.DB) {
	actor := middleware.CurrentActor(c)

	projects, err := service.ListProjects(db, actor)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func CreateProject(c *gin.Context, db *gorm.DB) {
	actor := middleware.CurrentActor(c)

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	created, err := service.CreateProject(db, actor, req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Project created successfully",
		"project": created,
	})
}

func UpdateProject(c *gin.Context, db *gorm.DB) {
	actor := middleware.CurrentActor(c)

	projectID, err := strconv.Atoi(c.Param("projectid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	updated, err := service.UpdateProject(db, actor, projectID, req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Project updated successfully",
		"project": updated,
	})
}

func ListDocumentTypes(c *gin.Context, db *gorm.DB) {
	docTypes, err := service.ListDocumentTypes(db)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"document_types": docTypes})
}

func CreateDocumentType(c *gin.Context, db *gorm.DB) {
	actor := middleware.CurrentActor(c)

	var req dto.CreateDocumentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	created, err := service.CreateDocumentType(db, actor, req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":       "Document type created successfully",
		"document_type": created,
	})
}
