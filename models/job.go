package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	JobPending    = "PENDING"
	JobInProgress = "IN_PROGRESS"
	JobCompleted  = "COMPLETED"
	JobCancelled  = "CANCELLED"
)

const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
)

type Job struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Title       string    `gorm:"not null"`
	Description string
	Status      string `gorm:"type:varchar(20);default:'PENDING';index"`
	Priority    string `gorm:"type:varchar(10);default:'MEDIUM'"`

	ScheduledAt time.Time `gorm:"index;not null"`
	CompletedAt *time.Time

	// Address override when the work site differs from the client's address.
	Address string

	ClientID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Client    Client    `gorm:"foreignKey:ClientID"`
	ServiceID uuid.UUID `gorm:"type:uuid;index;not null"`
	Service   Service   `gorm:"foreignKey:ServiceID"`

	AssignedToID *uuid.UUID `gorm:"type:uuid;index"`
	AssignedTo   *User      `gorm:"foreignKey:AssignedToID"`
	CreatedByID  uuid.UUID  `gorm:"type:uuid;index;not null"`

	Observations string
	EvidenceURLs StringList `gorm:"type:jsonb;default:'[]'"`
	SignatureURL string

	gorm.Model
}

func (j *Job) BeforeCreate(tx *gorm.DB) (err error) {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return
}

var statusRank = map[string]int{
	JobPending:    0,
	JobInProgress: 1,
	JobCompleted:  2,
}

// CanTransition reports whether a job may move from one status to another.
// Transitions only go forward; cancellation is allowed from any non-terminal
// status; completed and cancelled jobs are final.
func CanTransition(from, to string) bool {
	if from == JobCompleted || from == JobCancelled {
		return false
	}
	if to == JobCancelled {
		return true
	}
	fromRank, ok := statusRank[from]
	if !ok {
		return false
	}
	toRank, ok := statusRank[to]
	if !ok {
		return false
	}
	return toRank > fromRank
}

func ValidStatus(s string) bool {
	switch s {
	case JobPending, JobInProgress, JobCompleted, JobCancelled:
		return true
	}
	return false
}

func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// StringList stores a list of URLs as a jsonb column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			b = []byte(s)
		} else {
			return errors.New("type assertion to []byte failed")
		}
	}
	return json.Unmarshal(b, l)
}
