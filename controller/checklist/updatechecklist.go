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

func UpdateChecklistController(router *gin.Engine, db *gorm.DB) {
	router.PUT("/task/:taskid/checklist", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		UpdateChecklist(c, db)
	})
}

// UpdateChecklist applies a batch of checked/comment changes. The batch is
// all-or-nothing and the task status is recomputed as part of the same
// operation, so the response items and the stored status never disagree.
func UpdateChecklist(c *gin.Context, db *gorm.DB) {
	actor := middleware.CurrentActor(c)

	taskID, err := strconv.Atoi(c.Param("taskid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	var req dto.UpdateProgressItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	items, err := service.UpdateProgressItems(db, actor, taskID, req.Items)
	if err != nil {
		controller.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checklist updated successfully",
		"items":   items,
	})
}
