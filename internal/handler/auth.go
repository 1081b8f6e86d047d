package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/tahir0900/expense-backend/internal/logger"
	"github.com/tahir0900/expense-backend/internal/models"
	"github.com/tahir0900/expense-backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthHandler serves signup, login and forgot-password.
type AuthHandler struct {
	DB         *gorm.DB
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
	ResetTTL   time.Duration
}

func NewAuthHandler(db *gorm.DB, jwtSecret string, ttlHours, bcryptCost, resetHours int) *AuthHandler {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	if resetHours <= 0 {
		resetHours = 2
	}
	return &AuthHandler{
		DB:         db,
		JWTSecret:  jwtSecret,
		TokenTTL:   time.Duration(ttlHours) * time.Hour,
		BcryptCost: bcryptCost,
		ResetTTL:   time.Duration(resetHours) * time.Hour,
	}
}

type userResp struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toUserResp(u *models.User) userResp {
	return userResp{ID: u.ID, Name: u.Name, Email: u.Email}
}

// ---------- signup ----------

type signupReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Name, email and password are required.")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		util.Error(c, http.StatusBadRequest, "Name, email and password are required.")
		return
	}
	if err := util.ValidateEmail(req.Email); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid email address.")
		return
	}

	// case-insensitive uniqueness on the login identifier
	var count int64
	if err := h.DB.Model(&models.User{}).
		Where("LOWER(email) = LOWER(?)", req.Email).
		Count(&count).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to look up user.")
		return
	}
	if count > 0 {
		util.Error(c, http.StatusBadRequest, "Email is already registered.")
		return
	}

	hash, err := util.HashPassword(req.Password, h.BcryptCost)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to hash password.")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		util.Error(c, http.StatusBadRequest, "Email is already registered.")
		return
	}

	// profile with defaults, created eagerly at signup
	profile := models.UserProfile{
		UserID:     user.ID,
		Currency:   models.CurrencyUSD,
		DateFormat: models.DateFormatISO,
	}
	if err := h.DB.Create(&profile).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to create profile.")
		return
	}

	token, err := util.GenerateToken(h.JWTSecret, user.ID, h.TokenTTL)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to generate token.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  toUserResp(&user),
	})
}

// ---------- login ----------

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Email and password are required.")
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		util.Error(c, http.StatusBadRequest, "Email and password are required.")
		return
	}

	var user models.User
	if err := h.DB.Where("LOWER(email) = LOWER(?)", req.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusBadRequest, "Invalid email or password.")
		} else {
			util.Error(c, http.StatusInternalServerError, "Failed to look up user.")
		}
		return
	}

	if !util.CheckPassword(req.Password, user.PasswordHash) {
		util.Error(c, http.StatusBadRequest, "Invalid email or password.")
		return
	}

	token, err := util.GenerateToken(h.JWTSecret, user.ID, h.TokenTTL)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to generate token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  toUserResp(&user),
	})
}

// ---------- forgot password ----------

type forgotPasswordReq struct {
	Email string `json:"email"`
}

// ForgotPassword always answers with a generic message. When the email
// matches a user a reset token row is minted; no mail is dispatched.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		util.Error(c, http.StatusBadRequest, "Email is required.")
		return
	}

	var user models.User
	err := h.DB.Where("LOWER(email) = LOWER(?)", strings.TrimSpace(req.Email)).First(&user).Error
	if err == nil {
		reset := models.PasswordReset{
			ID:        uuid.New().String(),
			UserID:    user.ID,
			ExpiresAt: time.Now().Add(h.ResetTTL),
		}
		if err := h.DB.Create(&reset).Error; err != nil {
			logger.Logger.WithError(err).Warn("create password reset failed")
		} else {
			logger.Logger.WithField("user_id", user.ID).Info("password reset token issued")
		}
	}

	util.Message(c, http.StatusOK, "If an account with that email exists, a password reset link has been sent.")
}
