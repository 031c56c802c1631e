package request_models

type CreateGroupRequest struct {
	PatientEmail string   `json:"patientEmail" binding:"required,email"`
	FamilyEmails []string `json:"familyEmails" binding:"omitempty,dive,email"`
}

type DeleteGroupRequest struct {
	GroupID string `json:"groupId" binding:"required"`
}
