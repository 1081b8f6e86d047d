package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/tahir0900/expense-backend/internal/middleware"
	"github.com/tahir0900/expense-backend/internal/models"
	"github.com/tahir0900/expense-backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ActivityHandler serves the current user's activity feed.
type ActivityHandler struct {
	DB       *gorm.DB
	PageSize int
}

func NewActivityHandler(db *gorm.DB, pageSize int) *ActivityHandler {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &ActivityHandler{DB: db, PageSize: pageSize}
}

type activityResp struct {
	ID        uint      `json:"id"`
	Method    string    `json:"method"`
	Path      string    `json:"path"`
	Status    int       `json:"status"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
}

// ListActivity returns the caller's recorded requests, newest first.
func (h *ActivityHandler) ListActivity(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "authentication required")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(h.PageSize)))
	if size <= 0 || size > 100 {
		size = h.PageSize
	}
	offset := (page - 1) * size

	base := h.DB.Model(&models.ActivityLog{}).Where("user_id = ?", user.ID)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to load activity.")
		return
	}

	var logs []models.ActivityLog
	if err := base.Session(&gorm.Session{}).
		Order("created_at DESC, id DESC").
		Limit(size).
		Offset(offset).
		Find(&logs).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to load activity.")
		return
	}

	items := make([]activityResp, 0, len(logs))
	for _, l := range logs {
		items = append(items, activityResp{
			ID:        l.ID,
			Method:    l.Method,
			Path:      l.Path,
			Status:    l.Status,
			IP:        l.IP,
			UserAgent: l.UserAgent,
			CreatedAt: l.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": total,
		"page":  page,
		"size":  size,
	})
}
