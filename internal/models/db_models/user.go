package db_models

const (
	RolePatient = "patient"
	RoleStaff   = "staff"
	RoleFamily  = "family"
)

type User struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         string
}
