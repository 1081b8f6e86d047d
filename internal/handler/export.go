package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/tahir0900/expense-backend/internal/middleware"
	"github.com/tahir0900/expense-backend/internal/models"
	"github.com/tahir0900/expense-backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler serves CSV/XLSX downloads of the caller's transactions.
type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

var exportHeaders = []string{"Type", "Description", "Category", "Amount", "Date"}

func (h *ExportHandler) fetch(userID uint) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := h.DB.Where("user_id = ?", userID).
		Preload("Category").
		Order("date DESC, id DESC").
		Find(&txs).Error
	return txs, err
}

func exportRow(t *models.Transaction) []string {
	categoryName := ""
	if t.Category != nil {
		categoryName = t.Category.Name
	}
	return []string{
		t.Type,
		t.Description,
		categoryName,
		t.Amount.StringFixed(2),
		t.Date.Format("2006-01-02"),
	}
}

// ExportCSV streams the user's transactions as CSV.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "authentication required")
		return
	}

	txs, err := h.fetch(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to load transactions.")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeaders)
	for i := range txs {
		writer.Write(exportRow(&txs[i]))
	}
}

// ExportXLSX writes the user's transactions as an XLSX workbook.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "authentication required")
		return
	}

	txs, err := h.fetch(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to load transactions.")
		return
	}

	f := excelize.NewFile()
	sheetName := "Transactions"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to create worksheet.")
		return
	}
	f.SetActiveSheet(index)

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for idx := range txs {
		row := idx + 2
		for col, val := range exportRow(&txs[idx]) {
			cell := fmt.Sprintf("%c%d", 'A'+col, row)
			f.SetCellValue(sheetName, cell, val)
		}
	}

	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 30)
	f.SetColWidth(sheetName, "C", "C", 15)
	f.SetColWidth(sheetName, "D", "D", 12)
	f.SetColWidth(sheetName, "E", "E", 12)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to export transactions.")
	}
}
