package handler

import (
	"net/http"

	"github.com/tahir0900/expense-backend/internal/middleware"
	"github.com/tahir0900/expense-backend/internal/models"
	"github.com/tahir0900/expense-backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type profileResp struct {
	Currency   string `json:"currency"`
	DateFormat string `json:"date_format"`
}

func toProfileResp(p *models.UserProfile) profileResp {
	return profileResp{Currency: p.Currency, DateFormat: p.DateFormat}
}

// getOrCreateProfile fetches the user's profile, creating it with
// defaults when missing. Idempotent.
func getOrCreateProfile(db *gorm.DB, userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := db.Where(models.UserProfile{UserID: userID}).
		Attrs(models.UserProfile{
			Currency:   models.CurrencyUSD,
			DateFormat: models.DateFormatISO,
		}).
		FirstOrCreate(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetMe returns the current user together with their profile.
func GetMe(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if user == nil {
			util.Error(c, http.StatusUnauthorized, "authentication required")
			return
		}

		profile, err := getOrCreateProfile(db, user.ID)
		if err != nil {
			util.Error(c, http.StatusInternalServerError, "Failed to load profile.")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user":    toUserResp(user),
			"profile": toProfileResp(profile),
		})
	}
}
