package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pubquiz-admin/internal/auth"
	"pubquiz-admin/internal/models"
)

// TeamIDKey is the context key under which TeamAuth stores the
// authenticated team's ID.
const TeamIDKey = "teamID"

// TeamAuth validates the Bearer token on team-scoped endpoints and
// puts the team ID into the request context.
func TeamAuth(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing Authorization header")
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "Authorization header must use Bearer scheme")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			abortUnauthorized(c, "bearer token is empty")
			return
		}
		teamID, err := auth.ParseToken(tokenString, jwtSecret)
		if err != nil {
			abortUnauthorized(c, "invalid token")
			return
		}
		c.Set(TeamIDKey, teamID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, detail string) {
	c.JSON(http.StatusUnauthorized, models.NewAPIError(detail))
	c.Abort()
}
