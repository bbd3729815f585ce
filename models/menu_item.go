package models

import "time"

type MenuItem struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"type:varchar(255);not null" json:"name"`
	Category string  `gorm:"type:varchar(100)" json:"category"`
	Price    float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock    int     `json:"stock"`
	Status   string  `gorm:"type:varchar(20);not null;default:'Available'" json:"status"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
