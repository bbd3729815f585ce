package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rkarthik/hotel-backend/models"
	"github.com/rkarthik/hotel-backend/utils"
)

func TestIsRoomAvailable(t *testing.T) {
	db := setupCheckoutDB(t, "availability")

	room := models.Room{RoomNumber: "201", PricePerNight: 1200, Status: models.RoomBooked}
	assert.NoError(t, db.Create(&room).Error)

	base := time.Date(2026, 3, 10, 12, 0, 0, 0, utils.IST)
	stayEnd := base.Add(48 * time.Hour)
	assert.NoError(t, db.Create(&models.Booking{
		BookingCode: "BK-AVAIL1",
		CustomerID:  1,
		RoomID:      room.ID,
		CheckIn:     base,
		CheckOut:    &stayEnd,
		Status:      models.BookingConfirmed,
		Price:       2400,
	}).Error)

	at := func(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }

	t.Run("overlapping interval is rejected", func(t *testing.T) {
		end := at(36)
		ok, err := IsRoomAvailable(db, room.ID, at(12), &end)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("back to back at the boundary is allowed", func(t *testing.T) {
		end := at(72)
		ok, err := IsRoomAvailable(db, room.ID, at(48), &end)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("interval ending at existing check-in is allowed", func(t *testing.T) {
		end := base
		ok, err := IsRoomAvailable(db, room.ID, at(-24), &end)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("open-ended proposal collides with future stay", func(t *testing.T) {
		ok, err := IsRoomAvailable(db, room.ID, at(-24), nil)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("different room is unaffected", func(t *testing.T) {
		other := models.Room{RoomNumber: "202", PricePerNight: 1200}
		assert.NoError(t, db.Create(&other).Error)
		end := at(36)
		ok, err := IsRoomAvailable(db, other.ID, at(12), &end)
		assert.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestIsRoomAvailableOpenEndedExistingStay(t *testing.T) {
	db := setupCheckoutDB(t, "availability_open")

	room := models.Room{RoomNumber: "301", PricePerNight: 900, Status: models.RoomOccupied}
	assert.NoError(t, db.Create(&room).Error)

	base := time.Date(2026, 4, 1, 12, 0, 0, 0, utils.IST)
	assert.NoError(t, db.Create(&models.Booking{
		BookingCode: "BK-AVAIL2",
		CustomerID:  1,
		RoomID:      room.ID,
		CheckIn:     base,
		Status:      models.BookingCheckedIn,
		Price:       900,
	}).Error)

	// A stay with no check-out blocks every later interval.
	start := base.Add(30 * 24 * time.Hour)
	end := start.Add(24 * time.Hour)
	ok, err := IsRoomAvailable(db, room.ID, start, &end)
	assert.NoError(t, err)
	assert.False(t, ok)

	// Checked-out stays release the room.
	assert.NoError(t, db.Model(&models.Booking{}).
		Where("booking_code = ?", "BK-AVAIL2").
		Updates(map[string]interface{}{"status": models.BookingCheckedOut, "check_out": base.Add(24 * time.Hour)}).Error)

	ok, err = IsRoomAvailable(db, room.ID, start, &end)
	assert.NoError(t, err)
	assert.True(t, ok)
}
