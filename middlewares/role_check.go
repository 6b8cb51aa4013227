package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tidyrota/cleaning-app/utils"
)

// RequireAdmin membatasi route mutasi hanya untuk admin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("role")

		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
			c.Abort()
			return
		}

		if userRole != "admin" {
			utils.RespondError(c, http.StatusForbidden, fmt.Errorf("admin access required"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireUser -> admin atau cleaner boleh membaca.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("role")

		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
			c.Abort()
			return
		}

		if userRole != "admin" && userRole != "cleaner" {
			utils.RespondError(c, http.StatusForbidden, fmt.Errorf("access required"))
			c.Abort()
			return
		}

		c.Next()
	}
}
