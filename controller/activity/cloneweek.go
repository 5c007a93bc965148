package activity

import (
	"net/http"

	"doctrack/controller"
	"doctrack/dto"
	"doctrack/middleware"
	"doctrack/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CloneWeekController(router *gin.Engine, db *gorm.DB) {
	router.POST("/week/clone", middleware.AccessTokenMiddleware(), middleware.PrivilegedMiddleware(), func(c *gin.Context) {
		CloneWeek(c, db)
	})
}

// CloneWeek opens a new activity week by copying the category/item structure
// of a prior week. Results and comments of the source week are not carried.
func CloneWeek(c *gin.Context, db *gorm.DB) {
	actor := middleware.CurrentActor(c)

	var req dto.CloneWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	week, err := service.CloneWeek(db, actor, req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Week created successfully",
		"week":    week,
	})
}
