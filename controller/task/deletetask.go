package task

import (
	"net/http"
	"strconv"

	"doctrack/controller"
	"doctrack/middleware"
	"doctrack/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func DeleteTaskController(router *gin.Engine, db *gorm.DB) {
	router.DELETE("/task/:taskid", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		DeleteTask(c, db)
	})
}

func DeleteTask(c *gin.Context, db *gorm.DB) {
	actor := middleware.CurrentActor(c)

	taskID, err := strconv.Atoi(c.Param("taskid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	if err := service.DeleteTask(db, actor, taskID); err != nil {
		controller.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
		"taskID":  taskID,
	})
}
