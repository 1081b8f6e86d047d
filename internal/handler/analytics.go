package handler

import (
	"net/http"
	"time"

	"github.com/tahir0900/expense-backend/internal/middleware"
	"github.com/tahir0900/expense-backend/internal/models"
	"github.com/tahir0900/expense-backend/internal/stats"
	"github.com/tahir0900/expense-backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AnalyticsOverview returns the category breakdown, monthly net trend,
// 30-day average daily spending, top category share and savings rate.
func AnalyticsOverview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if user == nil {
			util.Error(c, http.StatusUnauthorized, "authentication required")
			return
		}

		var txs []models.Transaction
		if err := db.Where("user_id = ?", user.ID).
			Preload("Category").
			Find(&txs).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, "Failed to load transactions.")
			return
		}

		breakdown := stats.CategoryBreakdown(txs)
		topCategory, topCategoryPercent := stats.TopCategory(breakdown)

		c.JSON(http.StatusOK, gin.H{
			"category_data":          breakdown,
			"trend_data":             stats.MonthlyTrend(txs),
			"average_daily_spending": stats.AverageDailySpending(txs, time.Now()),
			"top_category":           topCategory,
			"top_category_percent":   topCategoryPercent,
			"savings_rate":           stats.SavingsRate(txs),
		})
	}
}
