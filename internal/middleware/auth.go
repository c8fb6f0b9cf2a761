package middleware

import (
	"net/http"

	"github.com/Pacame2411/TableBooker/internal/session"
	"github.com/wb-go/wbf/ginext"
)

// RequireStaff guards staff-only routes. A valid session is sufficient
// authorization; no finer-grained roles exist.
func RequireStaff(sessions *session.Manager) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		staff, ok := sessions.GetStaff(c.Request)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "authentication required"},
			)
			return
		}
		c.Set("staff", staff)
		c.Next()
	}
}
