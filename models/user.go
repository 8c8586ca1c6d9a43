package models

import "gorm.io/gorm"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	gorm.Model
	Username string `gorm:"size:80;unique;not null"`
	Password string `gorm:"size:120;not null" json:"-"` // bcrypt hash, never plaintext
	Role     string `gorm:"size:10;not null"`
}
