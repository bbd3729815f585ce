package models

import "time"

// AddOn is a catalog entry for chargeable extras (laundry, extra bed, ...).
// The add-on lines attached at checkout are free-form and only loosely tied
// to this catalog.
type AddOn struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Price     float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
