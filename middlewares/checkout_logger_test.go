package middlewares

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rkarthik/hotel-backend/models"
	"github.com/rkarthik/hotel-backend/utils"
)

func TestCheckoutLoggerResolvesBookingCode(t *testing.T) {
	utils.InitLogger()

	db, err := gorm.Open(sqlite.Open("file:checkout_logger?mode=memory&cache=shared"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.Booking{}))

	booking := models.Booking{
		BookingCode: "BK-LOG1",
		CustomerID:  1,
		RoomID:      1,
		CheckIn:     utils.ISTNow(),
		Status:      models.BookingCheckedIn,
		Price:       1000,
	}
	assert.NoError(t, db.Create(&booking).Error)

	// The middleware reads the shared handle set up by main.
	utils.InitDB(db)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/bookings/:booking_id/checkout", CheckoutLoggerMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req, _ := http.NewRequest("POST", fmt.Sprintf("/bookings/%d/checkout", booking.ID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// An unknown booking id must still pass through.
	req, _ = http.NewRequest("POST", "/bookings/999/checkout", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
