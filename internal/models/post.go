package models

import "time"

// Post is a community post. Likes is a bare counter: every like call
// increments it by one with no per-user tracking.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"not null" json:"content"`
	Likes     int       `gorm:"default:0" json:"likes"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
