package models

import "time"

// Kitchen order statuses. Settled is set only by checkout, for orders folded
// into a billing snapshot; a settled order is never billed again.
const (
	KitchenPending   = "Pending"
	KitchenServed    = "Served"
	KitchenCancelled = "Cancelled"
	KitchenSettled   = "Settled"
)

type KitchenOrder struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	BookingID uint     `gorm:"not null;index" json:"booking_id"`
	Booking   Booking  `gorm:"foreignKey:BookingID" json:"-"`
	RoomID    uint     `gorm:"index" json:"room_id"`
	Room      Room     `gorm:"foreignKey:RoomID" json:"-"`
	ItemID    uint     `gorm:"not null" json:"item_id"`
	Item      MenuItem `gorm:"foreignKey:ItemID" json:"item"`
	Quantity  int      `gorm:"not null" json:"quantity"`
	Status    string   `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
