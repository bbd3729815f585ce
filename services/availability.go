package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/rkarthik/hotel-backend/models"
)

// IsRoomAvailable reports whether the room is free for the proposed interval.
// Overlap is half-open: a booking blocks [check_in, check_out), and a null
// check_out means the stay is open-ended. A proposed interval without a
// check-out is likewise open-ended and collides with anything not yet over.
func IsRoomAvailable(db *gorm.DB, roomID uint, checkIn time.Time, checkOut *time.Time) (bool, error) {
	q := db.Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Where("status IN ?", []string{models.BookingConfirmed, models.BookingCheckedIn}).
		Where("check_out IS NULL OR check_out > ?", checkIn)

	if checkOut != nil {
		q = q.Where("check_in < ?", *checkOut)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}
