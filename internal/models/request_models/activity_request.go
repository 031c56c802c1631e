package request_models

type LogActivityRequest struct {
	GroupID     string `json:"groupId" binding:"required"`
	Activity    string `json:"activity" binding:"required"`
	Description string `json:"description"`
	IsGoal      bool   `json:"isGoal"`
}
