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

func CreateTaskController(router *gin.Engine, db *gorm.DB) {
	router.POST("/task", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		CreateTask(c, db)
	})
}

func CreateTask(c *gin.Context, db *gorm.DB) {
	actor := middleware.CurrentActor(c)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	created, err := service.CreateTask(db, actor, req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}

	items, err := service.GetProgressItems(db, actor, created.TaskID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Task created successfully",
		"task":    created,
		"items":   items,
	})
}
