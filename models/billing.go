package models

import "time"

// Billing is the immutable snapshot written once per checkout. The unique
// index on BookingID backs the at-most-once guarantee at the schema level;
// the orchestrator's conditional status update enforces it at write time.
type Billing struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	BookingID  uint     `gorm:"not null;uniqueIndex" json:"booking_id"`
	Booking    Booking  `gorm:"foreignKey:BookingID" json:"-"`
	CustomerID uint     `gorm:"not null" json:"customer_id"`
	Customer   Customer `gorm:"foreignKey:CustomerID" json:"-"`
	RoomID     uint     `gorm:"not null" json:"room_id"`
	Room       Room     `gorm:"foreignKey:RoomID" json:"-"`

	CheckIn  time.Time `gorm:"not null" json:"check_in"`
	CheckOut time.Time `gorm:"not null" json:"check_out"`

	RoomPrice   float64 `gorm:"type:decimal(12,2);not null" json:"room_price"`
	AdvancePaid float64 `gorm:"type:decimal(12,2);not null;default:0.00" json:"advance_paid"`
	// AddOns and KitchenOrders hold the serialized normalized add-on list and
	// the aggregated kitchen line items included in this snapshot.
	AddOns        string `gorm:"type:text" json:"add_ons"`
	KitchenOrders string `gorm:"type:text" json:"kitchen_orders"`

	ComputedTotal   float64 `gorm:"type:decimal(12,2);not null" json:"computed_total"`
	TotalAmount     float64 `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	TotalOverridden bool    `gorm:"not null;default:false" json:"total_overridden"`

	// Identity of whoever performed the checkout.
	SettledByID   uint   `json:"settled_by_id"`
	SettledByName string `gorm:"type:varchar(255)" json:"settled_by_name"`
	SettledByRole string `gorm:"type:varchar(20)" json:"settled_by_role"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
