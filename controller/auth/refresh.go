package auth

import (
	"errors"
	"net/http"

	"doctrack/middleware"
	"doctrack/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RefreshTokenController(router *gin.Engine, db *gorm.DB) {
	router.POST("/auth/refresh", middleware.RefreshTokenMiddleware(), func(c *gin.Context) {
		RefreshToken(c, db)
	})
}

// RefreshToken issues a fresh access token. The role claim is re-read from
// the database, not copied from the old token, so role changes take effect on
// the next refresh.
func RefreshToken(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(int)

	var user model.User
	if err := db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User no longer exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user data"})
		return
	}
	if !user.IsActive {
		c.JSON(http.StatusForbidden, gin.H{"error": "Account is deactivated"})
		return
	}

	accessToken, err := issueAccessToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": accessToken})
}
