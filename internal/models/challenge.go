package models

import "time"

// Challenge is a global community challenge with a numeric target.
type Challenge struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `json:"description"`
	Target      int       `gorm:"not null" json:"target"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserChallenge tracks one user's progress against one challenge. Completed is
// derived: it is set once progress reaches the challenge target.
type UserChallenge struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	ChallengeID uint      `gorm:"not null;index" json:"challenge_id"`
	Progress    int       `gorm:"default:0" json:"progress"`
	Completed   bool      `gorm:"default:false" json:"completed"`
	JoinedAt    time.Time `gorm:"autoCreateTime" json:"joined_at"`

	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Challenge Challenge `gorm:"foreignKey:ChallengeID" json:"challenge,omitempty"`
}
