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
	"gorm.io/gorm/clause"
)

// TransactionHandler serves the scoped transaction CRUD.
type TransactionHandler struct {
	DB *gorm.DB
}

func NewTransactionHandler(db *gorm.DB) *TransactionHandler {
	return &TransactionHandler{DB: db}
}

type transactionResp struct {
	ID           uint            `json:"id"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	Category     *uint           `json:"category"`
	CategoryName *string         `json:"category_name"`
	Type         string          `json:"type"`
	Date         string          `json:"date"`
}

func toTransactionResp(t *models.Transaction) transactionResp {
	var categoryName *string
	if t.Category != nil {
		categoryName = &t.Category.Name
	}
	return transactionResp{
		ID:           t.ID,
		Description:  t.Description,
		Amount:       t.Amount,
		Category:     t.CategoryID,
		CategoryName: categoryName,
		Type:         t.Type,
		Date:         t.Date.Format("2006-01-02"),
	}
}

// ---------- list / create ----------

func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "authentication required")
		return
	}

	q := h.DB.Where("user_id = ?", user.ID)

	if txType := c.Query("type"); txType == models.TypeIncome || txType == models.TypeExpense {
		q = q.Where("type = ?", txType)
	}
	if categoryID := c.Query("category"); categoryID != "" {
		if id, err := strconv.Atoi(categoryID); err == nil {
			q = q.Where("category_id = ?", id)
		}
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("LOWER(description) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var txs []models.Transaction
	if err := q.Preload("Category").
		Order("date DESC, id DESC").
		Find(&txs).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to load transactions.")
		return
	}

	items := make([]transactionResp, 0, len(txs))
	for i := range txs {
		items = append(items, toTransactionResp(&txs[i]))
	}
	c.JSON(http.StatusOK, items)
}

type transactionReq struct {
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Category    *uint            `json:"category"`
	Type        *string          `json:"type"`
	Date        *string          `json:"date"`
}

// ownedCategory verifies the referenced category belongs to the user.
func (h *TransactionHandler) ownedCategory(userID, categoryID uint) (bool, error) {
	var count int64
	err := h.DB.Model(&models.Category{}).
		Where("id = ? AND user_id = ?", categoryID, userID).
		Count(&count).Error
	return count > 0, err
}

func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req transactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}
	if req.Description == nil || strings.TrimSpace(*req.Description) == "" ||
		req.Amount == nil || req.Type == nil || req.Date == nil {
		util.Error(c, http.StatusBadRequest, "Description, amount, type and date are required.")
		return
	}
	if !models.ValidType(*req.Type) {
		util.Error(c, http.StatusBadRequest, "Type must be income or expense.")
		return
	}
	date, err := util.ParseDate(*req.Date)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "Date must be in YYYY-MM-DD format.")
		return
	}

	tx := models.Transaction{
		UserID:      user.ID,
		Description: strings.TrimSpace(*req.Description),
		Amount:      *req.Amount,
		Type:        *req.Type,
		Date:        date,
	}
	if req.Category != nil {
		owned, err := h.ownedCategory(user.ID, *req.Category)
		if err != nil {
			util.Error(c, http.StatusInternalServerError, "Failed to look up category.")
			return
		}
		if !owned {
			util.Error(c, http.StatusBadRequest, "Invalid category.")
			return
		}
		tx.CategoryID = req.Category
	}

	// income stays non-negative, expense non-positive
	tx.NormalizeAmount()

	if err := h.DB.Omit(clause.Associations).Create(&tx).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to save transaction.")
		return
	}

	if tx.CategoryID != nil {
		_ = h.DB.Preload("Category").First(&tx, tx.ID).Error
	}
	c.JSON(http.StatusCreated, toTransactionResp(&tx))
}

// ---------- detail / update / delete ----------

func (h *TransactionHandler) findOwned(c *gin.Context, user *models.User) (*models.Transaction, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusNotFound, "Transaction not found.")
		return nil, false
	}

	var tx models.Transaction
	if err := h.DB.Preload("Category").
		Where("id = ? AND user_id = ?", id, user.ID).
		First(&tx).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, "Transaction not found.")
		} else {
			util.Error(c, http.StatusInternalServerError, "Failed to load transaction.")
		}
		return nil, false
	}
	return &tx, true
}

func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "authentication required")
		return
	}

	tx, ok := h.findOwned(c, user)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toTransactionResp(tx))
}

func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "authentication required")
		return
	}

	tx, ok := h.findOwned(c, user)
	if !ok {
		return
	}

	var req transactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	if req.Description != nil {
		desc := strings.TrimSpace(*req.Description)
		if desc == "" {
			util.Error(c, http.StatusBadRequest, "Description is required.")
			return
		}
		tx.Description = desc
	}
	if req.Type != nil {
		if !models.ValidType(*req.Type) {
			util.Error(c, http.StatusBadRequest, "Type must be income or expense.")
			return
		}
		tx.Type = *req.Type
	}
	if req.Amount != nil {
		tx.Amount = *req.Amount
	}
	if req.Date != nil {
		date, err := util.ParseDate(*req.Date)
		if err != nil {
			util.Error(c, http.StatusBadRequest, "Date must be in YYYY-MM-DD format.")
			return
		}
		tx.Date = date
	}
	if req.Category != nil {
		owned, err := h.ownedCategory(user.ID, *req.Category)
		if err != nil {
			util.Error(c, http.StatusInternalServerError, "Failed to look up category.")
			return
		}
		if !owned {
			util.Error(c, http.StatusBadRequest, "Invalid category.")
			return
		}
		tx.CategoryID = req.Category
		tx.Category = nil
	}

	// re-apply the sign invariant after any type/amount change
	tx.NormalizeAmount()

	if err := h.DB.Omit(clause.Associations).Save(tx).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to save transaction.")
		return
	}

	if err := h.DB.Preload("Category").First(tx, tx.ID).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to load transaction.")
		return
	}
	c.JSON(http.StatusOK, toTransactionResp(tx))
}

func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "authentication required")
		return
	}

	tx, ok := h.findOwned(c, user)
	if !ok {
		return
	}

	if err := h.DB.Delete(tx).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to delete transaction.")
		return
	}
	c.Status(http.StatusNoContent)
}
