package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Notification is the audit trail of fan-out attempts. One row per attempted
// send; failures are recorded here and nowhere else.
type Notification struct {
	BaseModel
	GroupID    uuid.UUID      `gorm:"type:uuid;index"`
	ActivityID uuid.UUID      `gorm:"type:uuid;index"`
	Recipients pq.StringArray `gorm:"type:text[]"`
	Subject    string
	Delivered  bool
	Error      string
}
