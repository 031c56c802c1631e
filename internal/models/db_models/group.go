package db_models

import "github.com/google/uuid"

// Group ties one patient and one owning staff member together. Family
// members attach through GroupMember rows.
type Group struct {
	BaseModel
	PatientID uuid.UUID `gorm:"type:uuid;index"`
	StaffID   uuid.UUID `gorm:"type:uuid;index"`

	Members []GroupMember
}

type GroupMember struct {
	BaseModel
	GroupID uuid.UUID `gorm:"type:uuid;index"`
	UserID  uuid.UUID `gorm:"type:uuid;index"`
}
