package user

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

func UserController(router *gin.Engine, db *gorm.DB) {
	router.GET("/users", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		ListUsers(c, db)
	})
	router.POST("/user", middleware.AccessTokenMiddleware(), middleware.AdminMiddleware(), func(c *gin.Context) {
		CreateUser(c, db)
	})
	router.PUT("/user/:userid", middleware.AccessTokenMiddleware(), middleware.AdminMiddleware(), func(c *gin.Context) {
		UpdateUser(c, db)
	})
	router.DELETE("/user/:userid", middleware.AccessTokenMiddleware(), middleware.AdminMiddleware(), func(c *gin.Context) {
		DeleteUser(c, db)
	})
}

func ListUsers(c *gin.Context, db *gorm.DB) {
	users, err := service.ListUsers(db)
	if err != nil {
		controller.RespondError(c, err)
		return
	}

	// Never expose password hashes through the listing.
	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, gin.H{
			"user_id":   u.UserID,
			"email":     u.Email,
			"name":      u.Name,
			"role":      u.Role,
			"is_active": u.IsActive,
		})
	}
	c.JSON(http.StatusOK, gin.H{"users": out})
}

func CreateUser(c *gin.Context, db *gorm.DB) {
	actor := middleware.CurrentActor(c)

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	created, err := service.CreateUser(db, actor, req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user": gin.H{
			"user_id": created.UserID,
			"email":   created.Email,
			"name":    created.Name,
			"role":    created.Role,
		},
	})
}

func UpdateUser(c *gin.Context, db *gorm.DB) {
	actor := middleware.CurrentActor(c)

	userID, err := strconv.Atoi(c.Param("userid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	updated, err := service.UpdateUser(db, actor, userID, req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"user": gin.H{
			"user_id":   updated.UserID,
			"email":     updated.Email,
			"name":      updated.Name,
			"role":      updated.Role,
			"is_active": updated.IsActive,
		},
	})
}

func DeleteUser(c *gin.Context, db *gorm.DB) {
	actor := middleware.CurrentActor(c)

	userID, err := strconv.Atoi(c.Param("userid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := service.DeleteUser(db, actor, userID); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "User deleted successfully",
		"userID":  userID,
	})
}
