package controllers

import (
	"net/http"
	"testing"
	"time"

	"fugazero-backend/models"
	"fugazero-backend/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInvoiceInput() CreateInvoiceInput {
	clientID := uuid.New()
	issueDate := time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC)
	return CreateInvoiceInput{
		ClientID:      &clientID,
		InvoiceNumber: "F-2025-0042",
		IssueDate:     &issueDate,
		Items: []InvoiceItemInput{
			{Description: "Detección de fuga", Quantity: 2, UnitPrice: 1000, Total: 2000},
		},
		Subtotal: 2000,
		Total:    2380,
	}
}

func TestValidateCreateInvoiceAccepts(t *testing.T) {
	input := validInvoiceInput()
	code, msg := validateCreateInvoice(&input)
	assert.Zero(t, code)
	assert.Empty(t, msg)
}

func TestValidateCreateInvoiceMissingFields(t *testing.T) {
	mutations := map[string]func(*CreateInvoiceInput){
		"no client":  func(i *CreateInvoiceInput) { i.ClientID = nil },
		"no number":  func(i *CreateInvoiceInput) { i.InvoiceNumber = "" },
		"no date":    func(i *CreateInvoiceInput) { i.IssueDate = nil },
		"empty list": func(i *CreateInvoiceInput) { i.Items = nil },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			input := validInvoiceInput()
			mutate(&input)
			code, msg := validateCreateInvoice(&input)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, "Faltan campos obligatorios", msg)
		})
	}
}

func TestValidateCreateInvoiceNonPositiveAmounts(t *testing.T) {
	input := validInvoiceInput()
	input.Subtotal = 0
	code, msg := validateCreateInvoice(&input)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, msg, "subtotal")

	input = validInvoiceInput()
	input.Total = -10
	code, _ = validateCreateInvoice(&input)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestValidateCreateInvoiceBadItems(t *testing.T) {
	input := validInvoiceInput()
	input.Items[0].Description = ""
	code, msg := validateCreateInvoice(&input)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, msg, "descripción")

	input = validInvoiceInput()
	input.Items[0].Quantity = 0
	code, _ = validateCreateInvoice(&input)
	assert.Equal(t, http.StatusBadRequest, code)

	input = validInvoiceInput()
	input.Items[0].UnitPrice = -1
	code, _ = validateCreateInvoice(&input)
	assert.Equal(t, http.StatusBadRequest, code)
}

// Missing required fields win over bad amounts: an empty payload reports the
// missing fields, not the zero subtotal.
func TestValidateCreateInvoiceOrder(t *testing.T) {
	input := CreateInvoiceInput{}
	code, msg := validateCreateInvoice(&input)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Faltan campos obligatorios", msg)
}

func TestValidateCreateInvoiceBadStatus(t *testing.T) {
	input := validInvoiceInput()
	input.Status = "DRAFT"
	code, _ := validateCreateInvoice(&input)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestBuildInvoiceDefaultsTaxTo19Percent(t *testing.T) {
	input := validInvoiceInput()
	input.Tax = nil

	invoice := buildInvoice(&input, uuid.New())
	assert.InDelta(t, 380.0, invoice.Tax, 0.001)
}

func TestBuildInvoiceKeepsExplicitTax(t *testing.T) {
	input := validInvoiceInput()
	tax := utils.FlexFloat(0.5)
	input.Tax = &tax

	invoice := buildInvoice(&input, uuid.New())
	assert.Equal(t, 0.5, invoice.Tax)
}

func TestBuildInvoicePersistsSubmittedValues(t *testing.T) {
	input := validInvoiceInput()
	creator := uuid.New()

	invoice := buildInvoice(&input, creator)

	assert.Equal(t, "F-2025-0042", invoice.InvoiceNumber)
	assert.Equal(t, *input.ClientID, invoice.ClientID)
	assert.Equal(t, creator, invoice.CreatedByID)
	assert.Equal(t, 2000.0, invoice.Subtotal)
	assert.Equal(t, 2380.0, invoice.Total)
	assert.Equal(t, models.InvoicePending, invoice.Status)

	require.Len(t, invoice.Items, len(input.Items))
	assert.Equal(t, 2.0, invoice.Items[0].Quantity)
	assert.Equal(t, 1000.0, invoice.Items[0].UnitPrice)
	assert.Equal(t, 2000.0, invoice.Items[0].Total)
}

func TestBuildInvoiceComputesMissingItemTotal(t *testing.T) {
	input := validInvoiceInput()
	input.Items[0].Total = 0

	invoice := buildInvoice(&input, uuid.New())
	assert.Equal(t, 2000.0, invoice.Items[0].Total)
}

func TestBuildInvoiceKeepsExplicitStatus(t *testing.T) {
	input := validInvoiceInput()
	input.Status = models.InvoicePaid

	invoice := buildInvoice(&input, uuid.New())
	assert.Equal(t, models.InvoicePaid, invoice.Status)
}
