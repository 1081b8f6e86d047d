package router

import (
	"net/http"

	"github.com/tahir0900/expense-backend/internal/config"
	"github.com/tahir0900/expense-backend/internal/handler"
	"github.com/tahir0900/expense-backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and the API route table.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.ActivityMiddleware(db))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// auth endpoints, no token required
	authHandler := handler.NewAuthHandler(
		db,
		cfg.JWT.Secret,
		cfg.JWT.ExpireHours,
		cfg.Security.BcryptCost,
		cfg.Security.ResetTokenHours,
	)
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/forgot-password", authHandler.ForgotPassword)

	// everything below requires a valid bearer token
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(cfg.JWT.Secret, db))

	protected.GET("/me", handler.GetMe(db))

	profileHandler := handler.NewProfileHandler(db, cfg.Security.BcryptCost)
	protected.GET("/settings/profile", profileHandler.GetProfile)
	protected.PUT("/settings/profile", profileHandler.UpdateProfile)
	protected.POST("/settings/change-password", profileHandler.ChangePassword)

	categoryHandler := handler.NewCategoryHandler(db)
	protected.GET("/categories", categoryHandler.ListCategories)
	protected.POST("/categories", categoryHandler.CreateCategory)
	protected.GET("/categories/:id", categoryHandler.GetCategory)
	protected.PATCH("/categories/:id", categoryHandler.UpdateCategory)
	protected.PUT("/categories/:id", categoryHandler.UpdateCategory)
	protected.DELETE("/categories/:id", categoryHandler.DeleteCategory)

	transactionHandler := handler.NewTransactionHandler(db)
	protected.GET("/transactions", transactionHandler.ListTransactions)
	protected.POST("/transactions", transactionHandler.CreateTransaction)
	protected.GET("/transactions/:id", transactionHandler.GetTransaction)
	protected.PATCH("/transactions/:id", transactionHandler.UpdateTransaction)
	protected.PUT("/transactions/:id", transactionHandler.UpdateTransaction)
	protected.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)

	protected.GET("/dashboard/summary", handler.DashboardSummary(db))
	protected.GET("/analytics/overview", handler.AnalyticsOverview(db))

	exportHandler := handler.NewExportHandler(db)
	protected.GET("/export/csv", exportHandler.ExportCSV)
	protected.GET("/export/xlsx", exportHandler.ExportXLSX)

	activityHandler := handler.NewActivityHandler(db, cfg.App.PageSize)
	protected.GET("/logs", activityHandler.ListActivity)

	return r
}
