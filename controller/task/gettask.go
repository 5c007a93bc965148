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

func GetTaskController(router *gin.Engine, db *gorm.DB) {
	router.GET("/task/:taskid", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		GetTask(c, db)
	})
}

func GetTask(c *gin.Context, db *gorm.DB) {
	actor := middleware.CurrentActor(c)

	taskID, err := strconv.Atoi(c.Param("taskid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	found, err := service.GetTask(db, actor, taskID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": found})
}
