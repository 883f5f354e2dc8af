package models

import "time"

// Product is a catalog item. Products are global; only admins may mutate them.
type Product struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Features  string    `json:"features"`
	Price     float64   `gorm:"not null" json:"price"`
	Category  string    `gorm:"size:50;not null;index" json:"category"`
	ImageURL  string    `gorm:"size:255" json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}
