package models

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Role is a named permission class. Roles are seeded at migration time and
// never mutated afterwards.
type Role struct {
	ID   uint   `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"size:20;uniqueIndex;not null"`
}

func (Role) TableName() string {
	return "roles"
}
