package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/kyystore-api/pkg/fieldcrypt"
)

// Health GET /
func Health(service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":    service,
			"status":     "ok",
			"encryption": fieldcrypt.Algorithm,
		})
	}
}
