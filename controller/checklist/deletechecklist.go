package checklist

import (
	"net/http"
	"strconv"

	"doctrack/controller"
	"doctrack/middleware"
	"doctrack/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func DeleteChecklistController(router *gin.Engine, db *gorm.DB) {
	router.DELETE("/task/:taskid/checklist/:itemid", middleware.AccessTokenMiddleware(), middleware.PrivilegedMiddleware(), func(c *gin.Context) {
		DeleteChecklistItem(c, db)
	})
}

func DeleteChecklistItem(c *gin.Context, db *gorm.DB) {
	actor := middleware.CurrentActor(c)

	taskID, err := strconv.Atoi(c.Param("taskid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}
	itemID, err := strconv.Atoi(c.Param("itemid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid checklist item ID"})
		return
	}

	if err := service.DeleteProgressItem(db, actor, taskID, itemID); err != nil {
		controller.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checklist item deleted successfully",
		"itemID":  itemID,
	})
}
