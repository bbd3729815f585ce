package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rkarthik/hotel-backend/controllers"
	"github.com/rkarthik/hotel-backend/models"
	"github.com/rkarthik/hotel-backend/utils"
)

func setupBookingDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	utils.InitLogger()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Staff{},
		&models.Customer{},
		&models.Room{},
		&models.Booking{},
		&models.MenuItem{},
		&models.KitchenOrder{},
		&models.Billing{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// fakeAuth stands in for AuthMiddleware and stamps the claims the handlers read.
func fakeAuth(userID uint, role, name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", role)
		c.Set("name", name)
		c.Next()
	}
}

func setupBookingRouter(db *gorm.DB, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	router.Use(fakeAuth(userID, models.RoleAdmin, "Admin"))

	bookingCtrl := controllers.NewBookingController(db)
	router.GET("/bookings", bookingCtrl.GetAllBookings)
	router.GET("/bookings/:booking_id", bookingCtrl.GetBookingByID)
	router.POST("/bookings", bookingCtrl.CreateBooking)
	router.PUT("/bookings/:booking_id", bookingCtrl.UpdateBooking)
	router.DELETE("/bookings/:booking_id", bookingCtrl.DeleteBooking)
	router.POST("/bookings/:booking_id/checkout", bookingCtrl.CheckoutBooking)
	return router
}

func seedBookingBase(t *testing.T, db *gorm.DB) (models.User, models.Customer, models.Room) {
	t.Helper()
	user := models.User{Name: "Admin", Email: "admin@hotel.com", Password: "x", Role: models.RoleAdmin}
	assert.NoError(t, db.Create(&user).Error)
	customer := models.Customer{Name: "Suresh Kumar", Contact: "9000000001"}
	assert.NoError(t, db.Create(&customer).Error)
	room := models.Room{RoomNumber: "101", PricePerNight: 1500, Status: models.RoomAvailable}
	assert.NoError(t, db.Create(&room).Error)
	return user, customer, room
}

func doJSON(router *gin.Engine, method, url string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewBuffer(b)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req, _ := http.NewRequest(method, url, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateBookingRequiresFields(t *testing.T) {
	db := setupBookingDB(t, "booking_validation")
	user, _, _ := seedBookingBase(t, db)
	router := setupBookingRouter(db, user.ID)

	w := doJSON(router, "POST", "/bookings", map[string]interface{}{"customer_id": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "customer_id, room_id and price are required", response["message"])
}

func TestCreateBookingSuccess(t *testing.T) {
	db := setupBookingDB(t, "booking_create")
	user, customer, room := seedBookingBase(t, db)
	router := setupBookingRouter(db, user.ID)

	w := doJSON(router, "POST", "/bookings", map[string]interface{}{
		"customer_id": customer.ID,
		"room_id":     room.ID,
		"price":       1500,
		"status":      models.BookingCheckedIn,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.NotEmpty(t, data["booking_code"])

	var fresh models.Room
	assert.NoError(t, db.First(&fresh, room.ID).Error)
	assert.Equal(t, models.RoomOccupied, fresh.Status)

	var booking models.Booking
	assert.NoError(t, db.Where("booking_code = ?", data["booking_code"]).First(&booking).Error)
	assert.Equal(t, "Admin", booking.CreatedByName)
	assert.Equal(t, models.RoleAdmin, booking.CreatedByRole)
}

func TestCreateBookingRejectsOverlap(t *testing.T) {
	db := setupBookingDB(t, "booking_overlap")
	user, customer, room := seedBookingBase(t, db)
	router := setupBookingRouter(db, user.ID)

	assert.NoError(t, db.Create(&models.Booking{
		BookingCode: "BK-HELD",
		CustomerID:  customer.ID,
		RoomID:      room.ID,
		CheckIn:     utils.ISTNow(),
		Status:      models.BookingCheckedIn,
		Price:       1500,
	}).Error)

	w := doJSON(router, "POST", "/bookings", map[string]interface{}{
		"customer_id": customer.ID,
		"room_id":     room.ID,
		"price":       1500,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdateBookingRefusesReopen(t *testing.T) {
	db := setupBookingDB(t, "booking_reopen")
	user, customer, room := seedBookingBase(t, db)
	router := setupBookingRouter(db, user.ID)

	out := utils.ISTNow()
	booking := models.Booking{
		BookingCode: "BK-DONE",
		CustomerID:  customer.ID,
		RoomID:      room.ID,
		CheckIn:     utils.ISTNow().Add(-48 * time.Hour),
		CheckOut:    &out,
		Status:      models.BookingCheckedOut,
		Price:       1500,
	}
	assert.NoError(t, db.Create(&booking).Error)

	w := doJSON(router, "PUT", fmt.Sprintf("/bookings/%d", booking.ID),
		map[string]string{"status": models.BookingCheckedIn})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCheckoutBookingHandler(t *testing.T) {
	db := setupBookingDB(t, "booking_checkout")
	user, customer, room := seedBookingBase(t, db)
	router := setupBookingRouter(db, user.ID)

	booking := models.Booking{
		BookingCode: "BK-CO1",
		CustomerID:  customer.ID,
		RoomID:      room.ID,
		CheckIn:     utils.ISTNow().Add(-24 * time.Hour),
		Status:      models.BookingCheckedIn,
		Price:       1500,
	}
	assert.NoError(t, db.Create(&booking).Error)

	url := fmt.Sprintf("/bookings/%d/checkout", booking.ID)
	w := doJSON(router, "POST", url, map[string]interface{}{
		"add_ons": []map[string]interface{}{{"name": "Late checkout", "price": 200}},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Checked out successfully", response["message"])

	data := response["data"].(map[string]interface{})
	summary := data["billing_summary"].(map[string]interface{})
	assert.Equal(t, 1700.0, summary["total_amount"])
	assert.Equal(t, "BK-CO1", summary["booking_id"])

	// A second attempt must conflict, and the billing stays unique.
	w = doJSON(router, "POST", url, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	var billings int64
	db.Model(&models.Billing{}).Where("booking_id = ?", booking.ID).Count(&billings)
	assert.Equal(t, int64(1), billings)
}

func TestCheckoutBookingMissing(t *testing.T) {
	db := setupBookingDB(t, "booking_checkout_404")
	user, _, _ := seedBookingBase(t, db)
	router := setupBookingRouter(db, user.ID)

	w := doJSON(router, "POST", "/bookings/4242/checkout", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
