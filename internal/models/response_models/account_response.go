package response_models

type RegisterResponse struct {
	UserID string `json:"userId"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}
