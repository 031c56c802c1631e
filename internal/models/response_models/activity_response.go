package response_models

type ActivityResponse struct {
	ID          string `json:"id"`
	GroupID     string `json:"groupId"`
	Activity    string `json:"activity"`
	Description string `json:"description"`
	IsGoal      bool   `json:"isGoal"`
	CreatedAt   string `json:"createdAt"`
}
