package criterion

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

func CriterionController(router *gin.Engine, db *gorm.DB) {
	router.GET("/criteria", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		ListCriteria(c, db)
	})
	router.POST("/criterion", middleware.AccessTokenMiddleware(), middleware.PrivilegedMiddleware(), func(c *gin.Context) {
		CreateCriterion(c, db)
	})
	router.PUT("/criterion/:criterionid", middleware.AccessTokenMiddleware(), middleware.PrivilegedMiddleware(), func(c *gin.Context) {
		UpdateCriterion(c, db)
	})
	router.DELETE("/criterion/:criterionid", middleware.AccessTokenMiddleware(), middleware.PrivilegedMiddleware(), func(c *gin.Context) {
		DeleteCriterion(c, db)
	})
}

func ListCriteria(c *gin.Context, db *gorm.DB) {
	criteria, err := service.ListCriteria(db)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"criteria": criteria})
}

func CreateCriterion(c *gin.Context, db *gorm.DB) {
	actor := middleware.CurrentActor(c)

	var req dto.CreateCriterionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	created, err := service.CreateCriterion(db, actor, req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":   "Criterion created successfully",
		"criterion": created,
	})
}

func UpdateCriterion(c *gin.Context, db *gorm.DB) {
	actor := middleware.CurrentActor(c)

	criterionID, err := strconv.Atoi(c.Param("criterionid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid criterion ID"})
		return
	}

	var req dto.UpdateCriterionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	updated, err := service.UpdateCriterion(db, actor, criterionID, req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Criterion updated successfully",
		"criterion": updated,
	})
}

func DeleteCriterion(c *gin.Context, db *gorm.DB) {
	actor := middleware.CurrentActor(c)

	criterionID, err := strconv.Atoi(c.Param("criterionid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid criterion ID"})
		return
	}

	if err := service.DeleteCriterion(db, actor, criterionID); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Criterion deleted successfully",
		"criterionID": criterionID,
	})
}
