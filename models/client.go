package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Client struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name          string `gorm:"not null"`
	Email         string `gorm:"uniqueIndex;not null"`
	Phone         string `gorm:"not null"`
	Address       string
	Commune       string
	Company       string
	RUT           string
	ContactPerson string
	Notes         string
	IsActive      bool `gorm:"default:true"`

	Jobs     []Job     `gorm:"foreignKey:ClientID"`
	Invoices []Invoice `gorm:"foreignKey:ClientID"`

	gorm.Model
}

func (c *Client) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
