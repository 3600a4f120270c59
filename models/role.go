package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Canonical role names. "operador" is the technician role; some UI copy
// calls it "técnico" but only "operador" is ever persisted or compared.
const (
	RoleAdmin      = "admin"
	RoleSecretary  = "secretaria"
	RoleTechnician = "operador"
)

type Role struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Name        string    `gorm:"type:varchar(30);uniqueIndex;not null"`
	Description string

	Users []User `gorm:"foreignKey:RoleID"`

	gorm.Model
}

func (r *Role) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
