package models

import "time"

// Booking statuses. Confirmed/Checked-in are the active states; Checked-out is
// terminal and a booking never leaves it.
const (
	BookingConfirmed  = "Confirmed"
	BookingCheckedIn  = "Checked-in"
	BookingCheckedOut = "Checked-out"
)

type Booking struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	BookingCode string     `gorm:"type:varchar(50);not null;uniqueIndex" json:"booking_code"`
	CustomerID  uint       `gorm:"not null" json:"customer_id"`
	Customer    Customer   `gorm:"foreignKey:CustomerID" json:"customer"`
	RoomID      uint       `gorm:"not null;index" json:"room_id"`
	Room        Room       `gorm:"foreignKey:RoomID" json:"room"`
	CheckIn     time.Time  `gorm:"not null" json:"check_in"`
	CheckOut    *time.Time `json:"check_out,omitempty"`
	Status      string     `gorm:"type:varchar(20);not null;default:'Confirmed'" json:"status"`
	Price       float64    `gorm:"type:decimal(10,2);not null" json:"price"`
	AdvancePaid float64    `gorm:"type:decimal(10,2);not null;default:0.00" json:"advance_paid"`
	PeopleCount int        `gorm:"not null;default:1" json:"people_count"`
	// AddOns holds the serialized add-on selections made at booking time.
	AddOns string `gorm:"type:text" json:"add_ons"`

	// Audit fields stamped at creation from the JWT claims, never updated.
	CreatedByID   *uint  `json:"created_by_id,omitempty"`
	CreatedByName string `gorm:"type:varchar(255)" json:"created_by_name"`
	CreatedByRole string `gorm:"type:varchar(20)" json:"created_by_role"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// IsActive reports whether the booking still holds its room.
func (b *Booking) IsActive() bool {
	return b.Status == BookingConfirmed || b.Status == BookingCheckedIn
}

// RoomStatusFor maps a booking status to the room status it implies.
func RoomStatusFor(bookingStatus string) string {
	switch bookingStatus {
	case BookingCheckedIn:
		return RoomOccupied
	case BookingConfirmed:
		return RoomBooked
	default:
		return RoomAvailable
	}
}
