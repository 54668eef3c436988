package models

import (
	"time"
)

type User struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	FirstName string `gorm:"size:50"`
	LastName  string `gorm:"size:50"`
	Email     string `gorm:"size:100;uniqueIndex;not null"`
	Password  string `gorm:"size:128;not null"` // bcrypt hash, never serialized
	RoleID    uint   `gorm:"not null"`
	Role      Role   `gorm:"foreignKey:RoleID"`
	CreatedAt time.Time
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u.Role.Name == RoleAdmin
}
