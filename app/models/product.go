package models

import "time"

// Product is a catalogue item. Rows are hard-deleted.
type Product struct {
	ID        uint      `gorm:"primaryKey"                     json:"id"`
	Name      string    `gorm:"size:255;not null;uniqueIndex"  json:"name"`
	Price     int64     `gorm:"not null"                       json:"price"`
	Photo     string    `gorm:"size:255;not null"              json:"photo"`
	IsPromo   bool      `gorm:"not null;default:false"         json:"is_promo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName pins the table regardless of naming strategy.
func (Product) TableName() string { return "products" }
