package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CashIncome  = "INCOME"
	CashExpense = "EXPENSE"
)

// CashTransaction records money in or out of the till, independent of
// any job or invoice.
type CashTransaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedByID uuid.UUID `gorm:"type:uuid;index;not null"`

	Type          string  `gorm:"type:varchar(10);not null;index"`
	Amount        float64 `gorm:"type:decimal(12,2);not null"`
	Category      string  `gorm:"not null"`
	PaymentMethod string
	Description   string
	Date          time.Time `gorm:"index;not null"`

	gorm.Model
}

func (t *CashTransaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}

func ValidCashType(t string) bool {
	return t == CashIncome || t == CashExpense
}
