package handler

import (
	"net/http"

	"github.com/tahir0900/expense-backend/internal/middleware"
	"github.com/tahir0900/expense-backend/internal/models"
	"github.com/tahir0900/expense-backend/internal/stats"
	"github.com/tahir0900/expense-backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DashboardSummary returns totals, the month chart and the five most
// recent transactions for the current user.
func DashboardSummary(db *gorm.DB) gin.HandlerFunc {
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

		income, expenses, balance := stats.Summary(txs)
		chart := stats.MonthlyChart(txs)

		var recent []models.Transaction
		if err := db.Where("user_id = ?", user.ID).
			Preload("Category").
			Order("date DESC, id DESC").
			Limit(5).
			Find(&recent).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, "Failed to load transactions.")
			return
		}
		recentItems := make([]transactionResp, 0, len(recent))
		for i := range recent {
			recentItems = append(recentItems, toTransactionResp(&recent[i]))
		}

		c.JSON(http.StatusOK, gin.H{
			"summary": gin.H{
				"total_income":   income,
				"total_expenses": expenses,
				"balance":        balance,
			},
			"chart":               chart,
			"recent_transactions": recentItems,
		})
	}
}
