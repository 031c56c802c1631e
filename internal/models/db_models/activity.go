package db_models

import "github.com/google/uuid"

const (
	KindActivity = "activity"
	KindGoal     = "goal"
)

// Activity is an append-only log entry scoped to a group. Kind records the
// goal/activity distinction so it survives a reload.
type Activity struct {
	BaseModel
	GroupID     uuid.UUID `gorm:"type:uuid;index"`
	Activity    string
	Description string
	Kind        string `gorm:"default:activity"`
}

func (a *Activity) IsGoal() bool {
	return a.Kind == KindGoal
}
