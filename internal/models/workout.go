package models

import "time"

// Workout is a training session owned by a single user. Exercises are kept as
// free-form text; there is no lifecycle beyond owner-authorized update/delete.
type Workout struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `json:"description"`
	Difficulty  string    `json:"difficulty"`
	Duration    int       `gorm:"not null" json:"duration"`
	Exercises   string    `json:"exercises"`
	VideoURL    string    `json:"video_url"`
	CreatedAt   time.Time `json:"created_at"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
