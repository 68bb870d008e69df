package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"keepnotes-be/internal/middleware"
)

type HomeController struct{}

func NewHomeController() *HomeController {
	return &HomeController{}
}

// Home handles POST /api/v1/home with a personalized greeting
func (hc *HomeController) Home(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Good Morning %s!", user.Name),
	})
}
