// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a GymHum member.
type User struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Username     string          `gorm:"unique;not null" json:"username"`
	Email        string          `gorm:"unique;not null" json:"email"`
	PasswordHash string          `gorm:"not null" json:"-"`
	Avatar       string          `gorm:"default:👤" json:"avatar"`
	Bio          string          `gorm:"size:200" json:"bio"`
	IsAdmin      bool            `gorm:"default:false" json:"is_admin"`
	CreatedAt    time.Time       `json:"created_at"`
	LastActive   time.Time       `json:"last_active"`
	Workouts     []Workout       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"workouts,omitempty"`
	Posts        []Post          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"posts,omitempty"`
	Plans        []NutritionPlan `gorm:"foreignKey:UserID" json:"plans,omitempty"`
	Challenges   []UserChallenge `gorm:"foreignKey:UserID" json:"challenges,omitempty"`
}

// UserSummary is the compact user representation embedded in resource responses.
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	Bio      string `json:"bio,omitempty"`
}

// Summary returns the compact representation of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID,
		Username: u.Username,
		Avatar:   u.Avatar,
		Bio:      u.Bio,
	}
}
