package handler

import (
	"net/http"
	"strings"

	"github.com/tahir0900/expense-backend/internal/middleware"
	"github.com/tahir0900/expense-backend/internal/models"
	"github.com/tahir0900/expense-backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ProfileHandler serves the settings endpoints.
type ProfileHandler struct {
	DB         *gorm.DB
	BcryptCost int
}

func NewProfileHandler(db *gorm.DB, bcryptCost int) *ProfileHandler {
	return &ProfileHandler{DB: db, BcryptCost: bcryptCost}
}

// GetProfile returns the current user and profile, same shape as /me.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "authentication required")
		return
	}

	profile, err := getOrCreateProfile(h.DB, user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to load profile.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":    toUserResp(user),
		"profile": toProfileResp(profile),
	})
}

type updateProfileReq struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Currency   *string `json:"currency"`
	DateFormat *string `json:"date_format"`
}

// UpdateProfile applies partial updates to name, email and the profile
// settings. Changing email also changes the login identifier.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "authentication required")
		return
	}

	profile, err := getOrCreateProfile(h.DB, user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to load profile.")
		return
	}

	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if err := util.ValidateEmail(email); err != nil {
			util.Error(c, http.StatusBadRequest, "Invalid email address.")
			return
		}
		var count int64
		if err := h.DB.Model(&models.User{}).
			Where("LOWER(email) = LOWER(?) AND id <> ?", email, user.ID).
			Count(&count).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, "Failed to look up user.")
			return
		}
		if count > 0 {
			util.Error(c, http.StatusBadRequest, "Email is already registered.")
			return
		}
		user.Email = email
	}
	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Currency != nil {
		if !models.ValidCurrency(*req.Currency) {
			util.Error(c, http.StatusBadRequest, "Invalid currency.")
			return
		}
		profile.Currency = *req.Currency
	}
	if req.DateFormat != nil {
		if !models.ValidDateFormat(*req.DateFormat) {
			util.Error(c, http.StatusBadRequest, "Invalid date format.")
			return
		}
		profile.DateFormat = *req.DateFormat
	}

	if err := h.DB.Save(user).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to update user.")
		return
	}
	if err := h.DB.Save(profile).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to update profile.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":    toUserResp(user),
		"profile": toProfileResp(profile),
	})
}

type changePasswordReq struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// ChangePassword verifies the current password and stores a new hash.
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req changePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Current and new password are required.")
		return
	}

	if !util.CheckPassword(req.CurrentPassword, user.PasswordHash) {
		util.Error(c, http.StatusBadRequest, "Current password is incorrect.")
		return
	}

	if err := util.ValidatePassword(req.NewPassword); err != nil {
		util.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := util.HashPassword(req.NewPassword, h.BcryptCost)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to hash password.")
		return
	}

	if err := h.DB.Model(user).Update("password_hash", hash).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to update password.")
		return
	}

	util.Message(c, http.StatusOK, "Password changed successfully.")
}
