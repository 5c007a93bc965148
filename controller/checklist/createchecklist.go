package checklist

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

func CreateChecklistController(router *gin.Engine, db *gorm.DB) {
	router.POST("/task/:taskid/checklist", middleware.AccessTokenMiddleware(), middleware.PrivilegedMiddleware(), func(c *gin.Context) {
		CreateChecklistItem(c, db)
	})
}

func CreateChecklistItem(c *gin.Context, db *gorm.DB) {
	actor := middleware.CurrentActor(c)

	taskID, err := strconv.Atoi(c.Param("taskid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	var req dto.AddProgressItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	item, err := service.AddProgressItem(db, actor, taskID, req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Checklist item added successfully",
		"item":    item,
	})
}
