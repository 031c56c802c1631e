package response_models

type GroupResponse struct {
	ID        string `json:"id"`
	PatientID string `json:"patientId"`
	StaffID   string `json:"staffId"`
	CreatedAt string `json:"createdAt"`
}
