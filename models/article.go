package models

import "gorm.io/gorm"

// Article is a published piece of content. Name and Company are free-text
// attribution captured at deploy time; they are not re-derived from the user
// record afterwards.
type Article struct {
	gorm.Model
	UserID  uint   `gorm:"not null;index"`
	Title   string `gorm:"size:200;not null"`
	Content string `gorm:"type:text;not null"`
	Slug    string `gorm:"size:220;uniqueIndex;not null"`
	Name    string `gorm:"size:100;not null"`
	Company string `gorm:"size:100;not null"`
	User    User   `gorm:"foreignKey:UserID"`
}
