package models

import (
	"fugazero-backend/utils"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	Name     string    `gorm:"not null"`
	Email    string    `gorm:"uniqueIndex;not null"`
	Password string    `gorm:"not null" json:"-"`
	Phone    string

	RoleID uuid.UUID `gorm:"type:uuid;index;not null"`
	Role   Role      `gorm:"foreignKey:RoleID"`

	LastLogin *time.Time
	IsActive  bool `gorm:"default:true"`

	AssignedJobs []Job `gorm:"foreignKey:AssignedToID"`

	gorm.Model
}

// Hash the password before the row ever hits the database.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}
