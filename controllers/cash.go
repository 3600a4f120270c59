// controllers/cash.go
package controllers

import (
	"net/http"
	"time"

	"fugazero-backend/config"
	"fugazero-backend/models"
	"fugazero-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateCashTransactionInput defines the expected JSON structure for
// registering a cash movement. Amount accepts numbers or strings.
type CreateCashTransactionInput struct {
	Type          string          `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Amount        utils.FlexFloat `json:"amount"`
	Category      string          `json:"category" binding:"required"`
	PaymentMethod string          `json:"paymentMethod"`
	Description   string          `json:"description"`
	Date          *time.Time      `json:"date"`
}

// CreateCashTransaction registers an income or expense
func CreateCashTransaction(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input CreateCashTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Datos inválidos: "+err.Error())
		return
	}

	if input.Amount.Float64() <= 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "El monto debe ser mayor a cero")
		return
	}

	date := time.Now()
	if input.Date != nil {
		date = *input.Date
	}

	transaction := models.CashTransaction{
		CreatedByID:   userID,
		Type:          input.Type,
		Amount:        input.Amount.Float64(),
		Category:      input.Category,
		PaymentMethod: input.PaymentMethod,
		Description:   input.Description,
		Date:          date,
	}

	if err := config.DB.Create(&transaction).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "No se pudo registrar el movimiento")
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

func applyCashFilters(c *gin.Context, query *gorm.DB) *gorm.DB {
	if txType := c.Query("type"); txType != "" {
		query = query.Where("type = ?", txType)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if dateFrom := c.Query("dateFrom"); dateFrom != "" {
		if t, err := time.Parse("2006-01-02", dateFrom); err == nil {
			query = query.Where("date >= ?", t)
		}
	}
	if dateTo := c.Query("dateTo"); dateTo != "" {
		if t, err := time.Parse("2006-01-02", dateTo); err == nil {
			query = query.Where("date < ?", t.AddDate(0, 0, 1))
		}
	}
	return query
}

// GetCashTransactions lists cash movements with optional filters
func GetCashTransactions(c *gin.Context) {
	var transactions []models.CashTransaction
	if err := applyCashFilters(c, config.DB.Model(&models.CashTransaction{})).
		Order("date DESC").Find(&transactions).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "No se pudieron obtener los movimientos")
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// GetCashSummary returns income/expense totals and a per-category breakdown
// over the filtered range
func GetCashSummary(c *gin.Context) {
	var income, expense float64
	if err := runQueries(
		func() error {
			return applyCashFilters(c, config.DB.Model(&models.CashTransaction{})).
				Where("type = ?", models.CashIncome).
				Select("COALESCE(SUM(amount), 0)").Scan(&income).Error
		},
		func() error {
			return applyCashFilters(c, config.DB.Model(&models.CashTransaction{})).
				Where("type = ?", models.CashExpense).
				Select("COALESCE(SUM(amount), 0)").Scan(&expense).Error
		},
	); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "No se pudo obtener el resumen de caja")
		return
	}

	type categoryRow struct {
		Category string  `json:"category"`
		Type     string  `json:"type"`
		Total    float64 `json:"total"`
	}
	var byCategory []categoryRow
	if err := applyCashFilters(c, config.DB.Model(&models.CashTransaction{})).
		Select("category, type, COALESCE(SUM(amount), 0) as total").
		Group("category, type").
		Order("total DESC").
		Scan(&byCategory).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "No se pudo obtener el resumen de caja")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"income":     income,
		"expense":    expense,
		"balance":    income - expense,
		"byCategory": byCategory,
	})
}

// DeleteCashTransaction removes a cash movement
func DeleteCashTransaction(c *gin.Context) {
	txUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Identificador de movimiento inválido")
		return
	}

	result := config.DB.Where("id = ?", txUUID).Delete(&models.CashTransaction{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "No se pudo eliminar el movimiento")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Movimiento no encontrado")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Movimiento eliminado correctamente"})
}
