package models

import "time"

// GSTSetting holds the tax rate per billing category. Rates are maintained by
// the admin and read by the front office when preparing invoices.
type GSTSetting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Category  string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"category"`
	GSTRate   float64   `gorm:"column:gst_rate;type:decimal(5,2);not null;default:0.00" json:"gst_rate"`
	IsEnabled bool      `gorm:"not null;default:false" json:"is_enabled"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
