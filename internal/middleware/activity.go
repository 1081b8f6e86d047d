package middleware

import (
	"time"

	"github.com/tahir0900/expense-backend/internal/logger"
	"github.com/tahir0900/expense-backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ActivityMiddleware logs every request with logrus and persists mutating
// requests (POST/PUT/PATCH/DELETE) to the activity log.
func ActivityMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		var userID *uint
		if user := CurrentUser(c); user != nil {
			userID = &user.ID
		}

		status := c.Writer.Status()
		logger.Logger.WithFields(map[string]interface{}{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   status,
			"duration": time.Since(start).String(),
			"ip":       c.ClientIP(),
		}).Info("request")

		switch c.Request.Method {
		case "POST", "PUT", "PATCH", "DELETE":
		default:
			return
		}

		entry := models.ActivityLog{
			UserID:    userID,
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Status:    status,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}
		if err := db.Create(&entry).Error; err != nil {
			logger.Logger.WithError(err).Warn("record activity log failed")
		}
	}
}
