package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	InvoicePending   = "PENDING"
	InvoicePaid      = "PAID"
	InvoiceOverdue   = "OVERDUE"
	InvoiceCancelled = "CANCELLED"
)

// IVA rate applied when an invoice arrives without an explicit tax amount.
const DefaultTaxRate = 0.19

type Invoice struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedByID uuid.UUID `gorm:"type:uuid;index;not null"`

	InvoiceNumber string    `gorm:"uniqueIndex;not null"`
	ClientID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Client        Client    `gorm:"foreignKey:ClientID"`

	IssueDate time.Time `gorm:"not null"`
	DueDate   *time.Time

	Subtotal float64 `gorm:"type:decimal(12,2);not null"`
	Tax      float64 `gorm:"type:decimal(12,2);default:0.0"`
	Total    float64 `gorm:"type:decimal(12,2);not null"`

	Status string `gorm:"type:varchar(20);default:'PENDING';index"`
	Notes  string

	Items []InvoiceItem `gorm:"foreignKey:InvoiceID"`

	gorm.Model
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}

type InvoiceItem struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key"`
	InvoiceID uuid.UUID  `gorm:"type:uuid;index;not null"`
	ServiceID *uuid.UUID `gorm:"type:uuid;index"`

	Description string  `gorm:"not null"`
	Quantity    float64 `gorm:"type:decimal(10,2);not null"`
	UnitPrice   float64 `gorm:"type:decimal(12,2);not null"`
	Total       float64 `gorm:"type:decimal(12,2);not null"`
}

func (i *InvoiceItem) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}

func ValidInvoiceStatus(s string) bool {
	switch s {
	case InvoicePending, InvoicePaid, InvoiceOverdue, InvoiceCancelled:
		return true
	}
	return false
}
