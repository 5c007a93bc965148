package template

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

func TemplateController(router *gin.Engine, db *gorm.DB) {
	router.GET("/templates", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		ListTemplates(c, db)
	})
	router.GET("/template/:templateid/criteria", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		GetTemplateCriteria(c, db)
	})
	router.POST("/template", middleware.AccessTokenMiddleware(), middleware.PrivilegedMiddleware(), func(c *gin.Context) {
		CreateTemplate(c, db)
	})
	router.PUT("/template/:templateid", middleware.AccessTokenMiddleware(), middleware.PrivilegedMiddleware(), func(c *gin.Context) {
		UpdateTemplate(c, db)
	})
	router.DELETE("/template/:templateid", middleware.AccessTokenMiddleware(), middleware.PrivilegedMiddleware(), func(c *gin.Context) {
		DeleteTemplate(c, db)
	})
}

func ListTemplates(c *gin.Context, db *gorm.DB) {
	templates, err := service.ListTemplates(db)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

func GetTemplateCriteria(c *gin.Context, db *gorm.DB) {
	templateID, err := strconv.Atoi(c.Param("templateid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid template ID"})
		return
	}

	criteria, err := service.GetTemplateCriteria(db, templateID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"criteria": criteria})
}

func CreateTemplate(c *gin.Context, db *gorm.DB) {
	actor := middleware.CurrentActor(c)

	var req dto.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	created, err := service.CreateTemplate(db, actor, req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Template created successfully",
		"template": created,
	})
}

func UpdateTemplate(c *gin.Context, db *gorm.DB) {
	actor := middleware.CurrentActor(c)

	templateID, err := strconv.Atoi(c.Param("templateid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid template ID"})
		return
	}

	var req dto.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	updated, err := service.UpdateTemplate(db, actor, templateID, req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Template updated successfully",
		"template": updated,
	})
}

func DeleteTemplate(c *gin.Context, db *gorm.DB) {
	actor := middleware.CurrentActor(c)

	templateID, err := strconv.Atoi(c.Param("templateid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid template ID"})
		return
	}

	if err := service.DeleteTemplate(db, actor, templateID); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "Template deleted successfully",
		"templateID": templateID,
	})
}
