package activity

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

func ActivityItemController(router *gin.Engine, db *gorm.DB) {
	router.POST("/category", middleware.AccessTokenMiddleware(), middleware.PrivilegedMiddleware(), func(c *gin.Context) {
		CreateCategory(c, db)
	})
	router.DELETE("/category/:categoryid", middleware.AccessTokenMiddleware(), middleware.PrivilegedMiddleware(), func(c *gin.Context) {
		DeleteCategory(c, db)
	})
	router.POST("/activityitem", middleware.AccessTokenMiddleware(), middleware.PrivilegedMiddleware(), func(c *gin.Context) {
		CreateActivityItem(c, db)
	})
	router.PUT("/activityitem/:itemid", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		UpdateActivityItem(c, db)
	})
	router.DELETE("/activityitem/:itemid", middleware.AccessTokenMiddleware(), middleware.PrivilegedMiddleware(), func(c *gin.Context) {
		DeleteActivityItem(c, db)
	})
}

func CreateCategory(c *gin.Context, db *gorm.DB) {
	actor := middleware.CurrentActor(c)

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	created, err := service.CreateCategory(db, actor, req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Category created successfully",
		"category": created,
	})
}

func DeleteCategory(c *gin.Context, db *gorm.DB) {
	actor := middleware.CurrentActor(c)

	categoryID, err := strconv.Atoi(c.Param("categoryid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	if err := service.DeleteCategory(db, actor, categoryID); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "Category deleted successfully",
		"categoryID": categoryID,
	})
}

func CreateActivityItem(c *gin.Context, db *gorm.DB) {
	actor := middleware.CurrentActor(c)

	var req dto.CreateActivityItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	created, err := service.CreateActivityItem(db, actor, req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Activity item created successfully",
		"item":    created,
	})
}

func UpdateActivityItem(c *gin.Context, db *gorm.DB) {
	actor := middleware.CurrentActor(c)

	itemID, err := strconv.Atoi(c.Param("itemid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity item ID"})
		return
	}

	var req dto.UpdateActivityItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	updated, err := service.UpdateActivityItem(db, actor, itemID, req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Activity item updated successfully",
		"item":    updated,
	})
}

func DeleteActivityItem(c *gin.Context, db *gorm.DB) {
	actor := middleware.CurrentActor(c)

	itemID, err := strconv.Atoi(c.Param("itemid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity item ID"})
		return
	}

	if err := service.DeleteActivityItem(db, actor, itemID); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Activity item deleted successfully",
		"itemID":  itemID,
	})
}
