package models

import "time"

// NutritionPlan is a meal plan owned by a single user. Plans are publicly
// listable but only the owner may update or delete them. They are not
// cascade-deleted with the owning user.
type NutritionPlan struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `json:"description"`
	Calories    int       `json:"calories"`
	Protein     int       `json:"protein"`
	Carbs       int       `json:"carbs"`
	Fats        int       `json:"fats"`
	CreatedAt   time.Time `json:"created_at"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
