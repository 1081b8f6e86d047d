package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/tahir0900/expense-backend/internal/middleware"
	"github.com/tahir0900/expense-backend/internal/models"
	"github.com/tahir0900/expense-backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryHandler serves the scoped category CRUD.
type CategoryHandler struct {
	DB *gorm.DB
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{DB: db}
}

type categoryResp struct {
	ID     uint            `json:"id"`
	Name   string          `json:"name"`
	Color  string          `json:"color"`
	Icon   string          `json:"icon"`
	Type   string          `json:"type"`
	Budget decimal.Decimal `json:"budget"`
	Count  int64           `json:"count"`
	Spent  float64         `json:"spent"`
}

// CategoryCount counts the user's transactions referencing the category.
// Zero when no principal is present.
func CategoryCount(db *gorm.DB, userID, categoryID uint) (int64, error) {
	if userID == 0 {
		return 0, nil
	}
	var count int64
	err := db.Model(&models.Transaction{}).
		Where("category_id = ? AND user_id = ?", categoryID, userID).
		Count(&count).Error
	return count, err
}

// CategorySpent sums abs(amount) over the user's expense transactions in
// the category. Zero when no principal is present or no rows match.
func CategorySpent(db *gorm.DB, userID, categoryID uint) (float64, error) {
	if userID == 0 {
		return 0, nil
	}
	var spent float64
	err := db.Model(&models.Transaction{}).
		Where("category_id = ? AND user_id = ? AND type = ?", categoryID, userID, models.TypeExpense).
		Select("COALESCE(SUM(ABS(amount)), 0)").
		Scan(&spent).Error
	return spent, err
}

func (h *CategoryHandler) toCategoryResp(userID uint, cat *models.Category) (categoryResp, error) {
	count, err := CategoryCount(h.DB, userID, cat.ID)
	if err != nil {
		return categoryResp{}, err
	}
	spent, err := CategorySpent(h.DB, userID, cat.ID)
	if err != nil {
		return categoryResp{}, err
	}
	return categoryResp{
		ID:     cat.ID,
		Name:   cat.Name,
		Color:  cat.Color,
		Icon:   cat.Icon,
		Type:   cat.Type,
		Budget: cat.Budget,
		Count:  count,
		Spent:  spent,
	}, nil
}

// ---------- list / create ----------

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var categories []models.Category
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to load categories.")
		return
	}

	items := make([]categoryResp, 0, len(categories))
	for i := range categories {
		resp, err := h.toCategoryResp(user.ID, &categories[i])
		if err != nil {
			util.Error(c, http.StatusInternalServerError, "Failed to load categories.")
			return
		}
		items = append(items, resp)
	}

	c.JSON(http.StatusOK, items)
}

type categoryReq struct {
	Name   *string          `json:"name"`
	Color  *string          `json:"color"`
	Icon   *string          `json:"icon"`
	Type   *string          `json:"type"`
	Budget *decimal.Decimal `json:"budget"`
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		util.Error(c, http.StatusBadRequest, "Name is required.")
		return
	}

	cat := models.Category{
		UserID: user.ID,
		Name:   strings.TrimSpace(*req.Name),
		Color:  "#3b82f6",
		Icon:   "ShoppingCart",
		Type:   models.TypeExpense,
		Budget: decimal.Zero,
	}
	if req.Color != nil {
		if err := util.ValidateColor(*req.Color); err != nil {
			util.Error(c, http.StatusBadRequest, "Invalid color.")
			return
		}
		cat.Color = *req.Color
	}
	if req.Icon != nil {
		cat.Icon = *req.Icon
	}
	if req.Type != nil {
		if !models.ValidType(*req.Type) {
			util.Error(c, http.StatusBadRequest, "Type must be income or expense.")
			return
		}
		cat.Type = *req.Type
	}
	if req.Budget != nil {
		cat.Budget = *req.Budget
	}

	// per-user name uniqueness; the composite index backs this up
	var count int64
	if err := h.DB.Model(&models.Category{}).
		Where("user_id = ? AND name = ?", user.ID, cat.Name).
		Count(&count).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to look up categories.")
		return
	}
	if count > 0 {
		util.Error(c, http.StatusBadRequest, "You already have a category with this name.")
		return
	}

	if err := h.DB.Create(&cat).Error; err != nil {
		util.Error(c, http.StatusBadRequest, "You already have a category with this name.")
		return
	}

	resp, err := h.toCategoryResp(user.ID, &cat)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to load category.")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ---------- detail / update / delete ----------

func (h *CategoryHandler) findOwned(c *gin.Context, user *models.User) (*models.Category, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusNotFound, "Category not found.")
		return nil, false
	}

	var cat models.Category
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&cat).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, "Category not found.")
		} else {
			util.Error(c, http.StatusInternalServerError, "Failed to load category.")
		}
		return nil, false
	}
	return &cat, true
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "authentication required")
		return
	}

	cat, ok := h.findOwned(c, user)
	if !ok {
		return
	}

	resp, err := h.toCategoryResp(user.ID, cat)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to load category.")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "authentication required")
		return
	}

	cat, ok := h.findOwned(c, user)
	if !ok {
		return
	}

	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			util.Error(c, http.StatusBadRequest, "Name is required.")
			return
		}
		if name != cat.Name {
			var count int64
			if err := h.DB.Model(&models.Category{}).
				Where("user_id = ? AND name = ? AND id <> ?", user.ID, name, cat.ID).
				Count(&count).Error; err != nil {
				util.Error(c, http.StatusInternalServerError, "Failed to look up categories.")
				return
			}
			if count > 0 {
				util.Error(c, http.StatusBadRequest, "You already have a category with this name.")
				return
			}
		}
		cat.Name = name
	}
	if req.Color != nil {
		if err := util.ValidateColor(*req.Color); err != nil {
			util.Error(c, http.StatusBadRequest, "Invalid color.")
			return
		}
		cat.Color = *req.Color
	}
	if req.Icon != nil {
		cat.Icon = *req.Icon
	}
	if req.Type != nil {
		if !models.ValidType(*req.Type) {
			util.Error(c, http.StatusBadRequest, "Type must be income or expense.")
			return
		}
		cat.Type = *req.Type
	}
	if req.Budget != nil {
		cat.Budget = *req.Budget
	}

	if err := h.DB.Save(cat).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to update category.")
		return
	}

	resp, err := h.toCategoryResp(user.ID, cat)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to load category.")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteCategory removes the category after clearing the weak references
// from its transactions; the transactions themselves survive.
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "authentication required")
		return
	}

	cat, ok := h.findOwned(c, user)
	if !ok {
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Transaction{}).
			Where("category_id = ? AND user_id = ?", cat.ID, user.ID).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(cat).Error
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to delete category.")
		return
	}

	c.Status(http.StatusNoContent)
}
