package middleware

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/spicevilla/table-booking-api/internal/httperr"
)

// DBReady rejects every request with 503 before it reaches a route
// handler when the store is unreachable. Readiness is a ping against
// the injected handle, not a process-global flag.
func DBReady(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			httperr.ServiceUnavailable(
				c,
				httperr.CodeUnavailable,
				"Database not connected. Please check server logs for connection status.",
			)
			c.Abort()
			return
		}

		c.Next()
	}
}
