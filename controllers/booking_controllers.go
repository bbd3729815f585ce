package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rkarthik/hotel-backend/kitchen"
	"github.com/rkarthik/hotel-backend/models"
	"github.com/rkarthik/hotel-backend/services"
	"github.com/rkarthik/hotel-backend/utils"
)

type BookingController struct {
	DB       *gorm.DB
	Checkout *services.CheckoutService
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{
		DB:       db,
		Checkout: services.NewCheckoutService(db),
	}
}

// GetAllBookings -> list bookings joined with customer and room
func (bc *BookingController) GetAllBookings(c *gin.Context) {
	var bookings []models.Booking
	if err := bc.DB.Preload("Customer").Preload("Room").
		Order("id DESC").Find(&bookings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of bookings", bookings)
}

// GetBookingByID -> detail of one booking
func (bc *BookingController) GetBookingByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("booking_id"))

	var booking models.Booking
	if err := bc.DB.Preload("Customer").Preload("Room").First(&booking, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Booking detail", booking)
}

// CreateBooking validates the request, runs the availability check and, in one
// transaction, creates the booking and moves the room to Booked/Occupied.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	type reqBody struct {
		BookingCode string     `json:"booking_code"`
		CustomerID  uint       `json:"customer_id"`
		RoomID      uint       `json:"room_id"`
		CheckIn     *time.Time `json:"check_in"`
		CheckOut    *time.Time `json:"check_out"`
		Status      string     `json:"status"`
		Price       *float64   `json:"price"`
		AdvancePaid float64    `json:"advance_paid"`
		PeopleCount int        `json:"people_count"`
		AddOns      string     `json:"add_ons"`
	}

	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.CustomerID == 0 || body.RoomID == 0 || body.Price == nil {
		utils.RespondError(c, http.StatusBadRequest,
			errors.New("customer_id, room_id and price are required"))
		return
	}

	status := body.Status
	if status == "" {
		status = models.BookingConfirmed
	}
	if status != models.BookingConfirmed && status != models.BookingCheckedIn {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Errorf("invalid booking status %q", status))
		return
	}

	checkIn := utils.ISTNow()
	if body.CheckIn != nil {
		checkIn = utils.ToIST(*body.CheckIn)
	}
	var checkOut *time.Time
	if body.CheckOut != nil {
		t := utils.ToIST(*body.CheckOut)
		checkOut = &t
	}

	available, err := services.IsRoomAvailable(bc.DB, body.RoomID, checkIn, checkOut)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if !available {
		utils.RespondError(c, http.StatusConflict, services.ErrRoomUnavailable)
		return
	}

	code := strings.TrimSpace(body.BookingCode)
	if code == "" {
		code = "BK-" + strings.ToUpper(uuid.NewString()[:8])
	}

	peopleCount := body.PeopleCount
	if peopleCount <= 0 {
		peopleCount = 1
	}

	booking := models.Booking{
		BookingCode: code,
		CustomerID:  body.CustomerID,
		RoomID:      body.RoomID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Status:      status,
		Price:       *body.Price,
		AdvancePaid: body.AdvancePaid,
		PeopleCount: peopleCount,
		AddOns:      body.AddOns,
		CreatedAt:   utils.ISTNow(),
		UpdatedAt:   utils.ISTNow(),
	}

	// Creator identity from the JWT claims, immutable after this point.
	if userID, ok := c.Get("user_id"); ok {
		if id, ok := userID.(uint); ok {
			booking.CreatedByID = &id
		}
	}
	if name, ok := c.Get("name"); ok {
		booking.CreatedByName, _ = name.(string)
	}
	if role, ok := c.Get("role"); ok {
		booking.CreatedByRole, _ = role.(string)
	}

	tx := bc.DB.Begin()
	if err := tx.Create(&booking).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := tx.Model(&models.Room{}).
		Where("id = ?", booking.RoomID).
		Update("status", models.RoomStatusFor(status)).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := tx.Commit().Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Booking %s created for room %d by %s", code, booking.RoomID, booking.CreatedByName)

	kitchen.BroadcastStaffNotification(fmt.Sprintf("Booking %s created for room %d", code, booking.RoomID))

	utils.RespondJSON(c, http.StatusCreated, "Booking created and room status updated", gin.H{
		"id":           booking.ID,
		"booking_code": booking.BookingCode,
	})
}

// UpdateBooking -> status update, keeps the room status in step.
// A Checked-out booking is terminal and cannot be reopened here.
func (bc *BookingController) UpdateBooking(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("booking_id"))

	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Status == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("no valid fields provided"))
		return
	}

	var booking models.Booking
	if err := bc.DB.First(&booking, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("booking not found"))
		return
	}

	res := bc.DB.Model(&models.Booking{}).
		Where("id = ? AND status <> ?", id, models.BookingCheckedOut).
		Updates(map[string]interface{}{"status": body.Status, "updated_at": utils.ISTNow()})
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondError(c, http.StatusConflict, services.ErrAlreadyCheckedOut)
		return
	}

	if err := bc.DB.Model(&models.Room{}).
		Where("id = ?", booking.RoomID).
		Update("status", models.RoomStatusFor(body.Status)).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Status updated successfully", nil)
}

// DeleteBooking
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("booking_id"))

	if err := bc.DB.Delete(&models.Booking{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Booking deleted", gin.H{"booking_id": id})
}

// CheckoutBooking -> POST /bookings/:booking_id/checkout
// Body: { check_out?, add_ons?, total_amount? }. The heavy lifting happens in
// services.CheckoutService inside a single transaction.
func (bc *BookingController) CheckoutBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("booking_id"))
	if err != nil || id <= 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid booking id"))
		return
	}

	// add_ons and total_amount arrive as raw JSON: both fields tolerate more
	// than one shape and malformed input must degrade, not fail.
	var body struct {
		CheckOut    *time.Time      `json:"check_out"`
		AddOns      json.RawMessage `json:"add_ons"`
		TotalAmount json.RawMessage `json:"total_amount"`
	}
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
	}

	actor := actorFromContext(c)
	summary, err := bc.Checkout.Checkout(uint(id), actor, services.CheckoutRequest{
		CheckOut:    body.CheckOut,
		AddOns:      body.AddOns,
		TotalAmount: services.ParseTotalOverride(body.TotalAmount),
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBookingNotFound):
			utils.RespondError(c, http.StatusNotFound, err)
		case errors.Is(err, services.ErrAlreadyCheckedOut), errors.Is(err, services.ErrCheckoutConflict):
			utils.RespondError(c, http.StatusConflict, err)
		default:
			utils.ErrorLogger.Printf("Checkout failed for booking %d: %v", id, err)
			utils.RespondError(c, http.StatusInternalServerError, errors.New("checkout failed"))
		}
		return
	}

	kitchen.BroadcastCheckout(*summary)

	utils.RespondJSON(c, http.StatusOK, "Checked out successfully", gin.H{
		"billing_summary": summary,
	})
}

func actorFromContext(c *gin.Context) services.Actor {
	actor := services.Actor{}
	if v, ok := c.Get("user_id"); ok {
		actor.UserID, _ = v.(uint)
	}
	if v, ok := c.Get("role"); ok {
		actor.Role, _ = v.(string)
	}
	if v, ok := c.Get("name"); ok {
		actor.Name, _ = v.(string)
	}
	if v, ok := c.Get("staff_id"); ok {
		if id, ok := v.(uint); ok {
			actor.StaffID = &id
		}
	}
	return actor
}
