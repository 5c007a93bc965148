package activity

import (
	"net/http"
	"strconv"

	"doctrack/controller"
	"doctrack/middleware"
	"doctrack/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func WeekController(router *gin.Engine, db *gorm.DB) {
	router.GET("/project/:projectid/weeks", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		ListWeeks(c, db)
	})
	router.GET("/week/:weekid/categories", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		GetWeekCategories(c, db)
	})
	router.GET("/category/:categoryid/items", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		GetCategoryItems(c, db)
	})
}

func ListWeeks(c *gin.Context, db *gorm.DB) {
	projectID, err := strconv.Atoi(c.Param("projectid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	weeks, err := service.ListWeeks(db, projectID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"weeks": weeks})
}

func GetWeekCategories(c *gin.Context, db *gorm.DB) {
	weekID, err := strconv.Atoi(c.Param("weekid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid week ID"})
		return
	}

	categories, err := service.GetWeekCategories(db, weekID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func GetCategoryItems(c *gin.Context, db *gorm.DB) {
	categoryID, err := strconv.Atoi(c.Param("categoryid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	items, err := service.GetCategoryItems(db, categoryID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
