package models

import "time"

// Room statuses. A room's status is derived from its active bookings:
// checkout sets it back to Available, booking creation sets Booked/Occupied.
const (
	RoomAvailable   = "Available"
	RoomBooked      = "Booked"
	RoomOccupied    = "Occupied"
	RoomMaintenance = "Maintenance"
)

type Room struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	RoomNumber    string  `gorm:"type:varchar(50);not null;uniqueIndex" json:"room_number"`
	Category      string  `gorm:"type:varchar(100)" json:"category"`
	Capacity      int     `gorm:"not null;default:2" json:"capacity"`
	PricePerNight float64 `gorm:"type:decimal(10,2);not null" json:"price_per_night"`
	Status        string  `gorm:"type:varchar(50);not null;default:'Available'" json:"status"`
	// Amenities and AddOns hold serialized JSON maps (name -> detail / price).
	Amenities string    `gorm:"type:text" json:"amenities"`
	AddOns    string    `gorm:"type:text" json:"add_ons"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
