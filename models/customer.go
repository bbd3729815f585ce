package models

import "time"

type Customer struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	Contact  string `gorm:"type:varchar(50)" json:"contact"`
	Email    string `gorm:"type:varchar(255)" json:"email"`
	IDType   string `gorm:"column:id_type;type:varchar(50)" json:"id_type"`
	IDNumber string `gorm:"column:id_number;type:varchar(100)" json:"id_number"`
	Address  string `gorm:"type:text" json:"address"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
