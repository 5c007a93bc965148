package task

import (
	"net/http"

	"doctrack/controller"
	"doctrack/dto"
	"doctrack/middleware"
	"doctrack/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func AllTasksController(router *gin.Engine, db *gorm.DB) {
	router.GET("/tasks", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		AllTasks(c, db)
	})
}

func AllTasks(c *gin.Context, db *gorm.DB) {
	actor := middleware.CurrentActor(c)

	var filter dto.ListTasksFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter"})
		return
	}

	tasks, err := service.ListTasks(db, actor, filter)
	if err != nil {
		controller.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}
