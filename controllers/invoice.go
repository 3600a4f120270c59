// controllers/invoice.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"fugazero-backend/config"
	"fugazero-backend/models"
	"fugazero-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvoiceItemInput defines the structure for an invoice line item. Numeric
// fields accept both JSON numbers and strings.
type InvoiceItemInput struct {
	ServiceID   *uuid.UUID      `json:"serviceId"`
	Description string          `json:"description"`
	Quantity    utils.FlexFloat `json:"quantity"`
	UnitPrice   utils.FlexFloat `json:"unitPrice"`
	Total       utils.FlexFloat `json:"total"`
}

// CreateInvoiceInput defines the expected JSON structure for creating an invoice
type CreateInvoiceInput struct {
	ClientID      *uuid.UUID         `json:"clientId"`
	InvoiceNumber string             `json:"invoiceNumber"`
	IssueDate     *time.Time         `json:"issueDate"`
	DueDate       *time.Time         `json:"dueDate"`
	Items         []InvoiceItemInput `json:"items"`
	Subtotal      utils.FlexFloat    `json:"subtotal"`
	Tax           *utils.FlexFloat   `json:"tax"`
	Total         utils.FlexFloat    `json:"total"`
	Status        string             `json:"status"`
	Notes         string             `json:"notes"`
}

// UpdateInvoiceInput defines the expected JSON structure for updating an invoice
type UpdateInvoiceInput struct {
	IssueDate *time.Time `json:"issueDate"`
	DueDate   *time.Time `json:"dueDate"`
	Status    *string    `json:"status"`
	Notes     *string    `json:"notes"`
}

// validateCreateInvoice applies the business rules in order. It returns 0
// when the input is valid, otherwise an HTTP status plus a message.
func validateCreateInvoice(input *CreateInvoiceInput) (int, string) {
	if input.ClientID == nil || input.InvoiceNumber == "" || input.IssueDate == nil || len(input.Items) == 0 {
		return http.StatusBadRequest, "Faltan campos obligatorios"
	}
	if input.Subtotal.Float64() <= 0 || input.Total.Float64() <= 0 {
		return http.StatusBadRequest, "El subtotal y el total deben ser mayores a cero"
	}
	for _, item := range input.Items {
		if item.Description == "" {
			return http.StatusBadRequest, "Cada ítem debe tener una descripción"
		}
		if item.Quantity.Float64() <= 0 || item.UnitPrice.Float64() <= 0 {
			return http.StatusBadRequest, "La cantidad y el precio unitario deben ser mayores a cero"
		}
	}
	if input.Status != "" && !models.ValidInvoiceStatus(input.Status) {
		return http.StatusBadRequest, "Estado de factura inválido"
	}
	return 0, ""
}

// buildInvoice shapes the model from already-validated input, applying the
// default tax rate and computing line totals where the caller omitted them.
func buildInvoice(input *CreateInvoiceInput, createdBy uuid.UUID) models.Invoice {
	tax := input.Subtotal.Float64() * models.DefaultTaxRate
	if input.Tax != nil {
		tax = input.Tax.Float64()
	}

	status := input.Status
	if status == "" {
		status = models.InvoicePending
	}

	items := make([]models.InvoiceItem, 0, len(input.Items))
	for _, item := range input.Items {
		total := item.Total.Float64()
		if total == 0 {
			total = item.Quantity.Float64() * item.UnitPrice.Float64()
		}
		items = append(items, models.InvoiceItem{
			ServiceID:   item.ServiceID,
			Description: item.Description,
			Quantity:    item.Quantity.Float64(),
			UnitPrice:   item.UnitPrice.Float64(),
			Total:       total,
		})
	}

	return models.Invoice{
		CreatedByID:   createdBy,
		InvoiceNumber: input.InvoiceNumber,
		ClientID:      *input.ClientID,
		IssueDate:     *input.IssueDate,
		DueDate:       input.DueDate,
		Subtotal:      input.Subtotal.Float64(),
		Tax:           tax,
		Total:         input.Total.Float64(),
		Status:        status,
		Notes:         input.Notes,
		Items:         items,
	}
}

// CreateInvoice creates an invoice and its items in one transaction. The
// unique index on invoice_number does the duplicate check; the client
// foreign key does the existence check.
func CreateInvoice(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Datos inválidos: "+err.Error())
		return
	}

	if code, msg := validateCreateInvoice(&input); code != 0 {
		utils.RespondWithError(c, code, msg)
		return
	}

	// Referenced services must exist before the insert so a foreign-key
	// violation can only mean a missing client.
	for _, item := range input.Items {
		if item.ServiceID == nil {
			continue
		}
		var service models.Service
		if err := config.DB.Where("id = ?", *item.ServiceID).First(&service).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusNotFound, "Servicio no encontrado: "+item.ServiceID.String())
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Error interno del servidor")
			}
			return
		}
	}

	invoice := buildInvoice(&input, userID)

	if err := config.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&invoice).Error
	}); err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			utils.RespondWithError(c, http.StatusBadRequest, "El número de factura ya existe")
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			utils.RespondWithError(c, http.StatusNotFound, "Cliente no encontrado")
		default:
			log.Printf("create invoice %s: %v", invoice.InvoiceNumber, err)
			utils.RespondWithError(c, http.StatusInternalServerError, "No se pudo crear la factura")
		}
		return
	}

	c.JSON(http.StatusCreated, invoice)
}

func applyInvoiceFilters(c *gin.Context, query *gorm.DB) *gorm.DB {
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if clientID := c.Query("clientId"); clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}
	if dateFrom := c.Query("dateFrom"); dateFrom != "" {
		if t, err := time.Parse("2006-01-02", dateFrom); err == nil {
			query = query.Where("issue_date >= ?", t)
		}
	}
	if dateTo := c.Query("dateTo"); dateTo != "" {
		if t, err := time.Parse("2006-01-02", dateTo); err == nil {
			query = query.Where("issue_date < ?", t.AddDate(0, 0, 1))
		}
	}
	return query
}

// GetInvoices retrieves a paginated invoice list plus aggregate sums over
// the filtered set
func GetInvoices(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	var total int64
	if err := applyInvoiceFilters(c, config.DB.Model(&models.Invoice{})).Count(&total).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "No se pudieron obtener las facturas")
		return
	}

	var invoices []models.Invoice
	if err := applyInvoiceFilters(c, config.DB.Model(&models.Invoice{})).
		Preload("Items").Preload("Client").
		Order("issue_date DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&invoices).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "No se pudieron obtener las facturas")
		return
	}

	var totalAmount, paidAmount, pendingAmount float64
	if err := runQueries(
		func() error {
			return applyInvoiceFilters(c, config.DB.Model(&models.Invoice{})).
				Select("COALESCE(SUM(total), 0)").Scan(&totalAmount).Error
		},
		func() error {
			return applyInvoiceFilters(c, config.DB.Model(&models.Invoice{})).
				Where("status = ?", models.InvoicePaid).
				Select("COALESCE(SUM(total), 0)").Scan(&paidAmount).Error
		},
		func() error {
			return applyInvoiceFilters(c, config.DB.Model(&models.Invoice{})).
				Where("status IN ?", []string{models.InvoicePending, models.InvoiceOverdue}).
				Select("COALESCE(SUM(total), 0)").Scan(&pendingAmount).Error
		},
	); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "No se pudieron obtener las facturas")
		return
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)

	c.JSON(http.StatusOK, gin.H{
		"invoices": invoices,
		"pagination": gin.H{
			"page":       page,
			"limit":      limit,
			"total":      total,
			"totalPages": totalPages,
		},
		"summary": gin.H{
			"totalAmount":   totalAmount,
			"paidAmount":    paidAmount,
			"pendingAmount": pendingAmount,
		},
	})
}

// GetInvoice retrieves a specific invoice by ID
func GetInvoice(c *gin.Context) {
	invoiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Identificador de factura inválido")
		return
	}

	var invoice models.Invoice
	if err := config.DB.Preload("Items").Preload("Client").
		Where("id = ?", invoiceUUID).First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Factura no encontrada")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error interno del servidor")
		}
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// UpdateInvoice updates the mutable header fields of an invoice
func UpdateInvoice(c *gin.Context) {
	invoiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Identificador de factura inválido")
		return
	}

	var input UpdateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Datos inválidos: "+err.Error())
		return
	}

	var invoice models.Invoice
	if err := config.DB.Preload("Items").Where("id = ?", invoiceUUID).First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Factura no encontrada")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error interno del servidor")
		}
		return
	}

	if input.IssueDate != nil {
		invoice.IssueDate = *input.IssueDate
	}
	if input.DueDate != nil {
		invoice.DueDate = input.DueDate
	}
	if input.Status != nil {
		if !models.ValidInvoiceStatus(*input.Status) {
			utils.RespondWithError(c, http.StatusBadRequest, "Estado de factura inválido")
			return
		}
		invoice.Status = *input.Status
	}
	if input.Notes != nil {
		invoice.Notes = *input.Notes
	}

	if err := config.DB.Save(&invoice).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "No se pudo actualizar la factura")
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// DeleteInvoice removes an invoice and its items in one transaction
func DeleteInvoice(c *gin.Context) {
	invoiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Identificador de factura inválido")
		return
	}

	var invoice models.Invoice
	if err := config.DB.Where("id = ?", invoiceUUID).First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Factura no encontrada")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error interno del servidor")
		}
		return
	}

	if err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", invoice.ID).Delete(&models.InvoiceItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&invoice).Error
	}); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "No se pudo eliminar la factura")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Factura eliminada correctamente"})
}
