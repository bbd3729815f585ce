package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rkarthik/hotel-backend/models"
	"github.com/rkarthik/hotel-backend/utils"
)

type RoomController struct {
	DB *gorm.DB
}

func NewRoomController(db *gorm.DB) *RoomController {
	return &RoomController{DB: db}
}

// roomView is a room row with the serialized JSON columns decoded and the
// current occupancy summed over active bookings.
type roomView struct {
	models.Room
	AmenitiesMap     map[string]interface{} `json:"amenities_map"`
	AddOnsMap        map[string]interface{} `json:"add_ons_map"`
	CurrentOccupancy int                    `json:"current_occupancy"`
}

func decodeJSONMap(s string) map[string]interface{} {
	out := map[string]interface{}{}
	if s == "" {
		return out
	}
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return map[string]interface{}{}
	}
	return out
}

// GetAllRooms -> every room with its current occupancy
func (rc *RoomController) GetAllRooms(c *gin.Context) {
	var rooms []models.Room
	if err := rc.DB.Order("id").Find(&rooms).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	type occRow struct {
		RoomID uint
		Total  int
	}
	var occ []occRow
	if err := rc.DB.Model(&models.Booking{}).
		Select("room_id, COALESCE(SUM(people_count), 0) AS total").
		Where("status IN ?", []string{models.BookingConfirmed, models.BookingCheckedIn}).
		Group("room_id").
		Scan(&occ).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	occupancy := make(map[uint]int, len(occ))
	for _, o := range occ {
		occupancy[o.RoomID] = o.Total
	}

	views := make([]roomView, 0, len(rooms))
	for _, r := range rooms {
		views = append(views, roomView{
			Room:             r,
			AmenitiesMap:     decodeJSONMap(r.Amenities),
			AddOnsMap:        decodeJSONMap(r.AddOns),
			CurrentOccupancy: occupancy[r.ID],
		})
	}
	utils.RespondJSON(c, http.StatusOK, "List of rooms", views)
}

// GetActiveRooms -> rooms currently held by an active booking, with guest info
func (rc *RoomController) GetActiveRooms(c *gin.Context) {
	type activeRow struct {
		RoomID       uint   `json:"room_id"`
		RoomNumber   string `json:"room_number"`
		BookingCode  string `json:"booking_code"`
		Capacity     int    `json:"capacity"`
		PeopleCount  int    `json:"people_count"`
		CustomerID   uint   `json:"customer_id"`
		CustomerName string `json:"customer_name"`
	}

	var rows []activeRow
	err := rc.DB.Table("bookings b").
		Select(`r.id AS room_id, r.room_number, b.booking_code, r.capacity,
			b.people_count, c.id AS customer_id, c.name AS customer_name`).
		Joins("JOIN rooms r ON b.room_id = r.id").
		Joins("JOIN customers c ON b.customer_id = c.id").
		Where("b.status IN ?", []string{models.BookingConfirmed, models.BookingCheckedIn}).
		Order("b.id DESC").
		Scan(&rows).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Active rooms", rows)
}

// GetRoomByID
func (rc *RoomController) GetRoomByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("room_id"))

	var room models.Room
	if err := rc.DB.First(&room, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Room detail", roomView{
		Room:         room,
		AmenitiesMap: decodeJSONMap(room.Amenities),
		AddOnsMap:    decodeJSONMap(room.AddOns),
	})
}

type roomRequest struct {
	RoomNumber    string                 `json:"room_number" binding:"required"`
	Category      string                 `json:"category"`
	Status        string                 `json:"status"`
	PricePerNight float64                `json:"price_per_night" binding:"required"`
	Capacity      int                    `json:"capacity"`
	Amenities     map[string]interface{} `json:"amenities"`
	AddOns        map[string]interface{} `json:"add_ons"`
}

func (r *roomRequest) serialized() (amenities, addOns string) {
	a, _ := json.Marshal(r.Amenities)
	b, _ := json.Marshal(r.AddOns)
	if r.Amenities == nil {
		a = []byte("{}")
	}
	if r.AddOns == nil {
		b = []byte("{}")
	}
	return string(a), string(b)
}

// CreateRoom
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var body roomRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	status := body.Status
	if status == "" {
		status = models.RoomAvailable
	}
	capacity := body.Capacity
	if capacity <= 0 {
		capacity = 2
	}
	amenities, addOns := body.serialized()

	room := models.Room{
		RoomNumber:    body.RoomNumber,
		Category:      body.Category,
		Status:        status,
		PricePerNight: body.PricePerNight,
		Capacity:      capacity,
		Amenities:     amenities,
		AddOns:        addOns,
	}
	if err := rc.DB.Create(&room).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Room created", gin.H{"id": room.ID})
}

// UpdateRoom
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("room_id"))

	var body roomRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	amenities, addOns := body.serialized()

	res := rc.DB.Model(&models.Room{}).Where("id = ?", id).Updates(map[string]interface{}{
		"room_number":     body.RoomNumber,
		"category":        body.Category,
		"status":          body.Status,
		"price_per_night": body.PricePerNight,
		"capacity":        body.Capacity,
		"amenities":       amenities,
		"add_ons":         addOns,
		"updated_at":      utils.ISTNow(),
	})
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, gorm.ErrRecordNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Room updated", gin.H{"updated": true})
}

// DeleteRoom
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("room_id"))

	res := rc.DB.Delete(&models.Room{}, id)
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, gorm.ErrRecordNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Room deleted", gin.H{"deleted": true})
}
