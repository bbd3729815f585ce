package controllers

import (
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rkarthik/hotel-backend/models"
	"github.com/rkarthik/hotel-backend/utils"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

func (dc *DashboardController) count(model interface{}, query string, args ...interface{}) (int64, error) {
	var cnt int64
	q := dc.DB.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	err := q.Count(&cnt).Error
	return cnt, err
}

// GetSummary -> the front-desk dashboard in one payload
func (dc *DashboardController) GetSummary(c *gin.Context) {
	now := utils.ISTNow()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, utils.IST)
	tomorrow := today.AddDate(0, 0, 1)

	totalRooms, err := dc.count(&models.Room{}, "")
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	availableRooms, _ := dc.count(&models.Room{}, "status = ?", models.RoomAvailable)
	occupiedRooms, _ := dc.count(&models.Room{}, "status = ?", models.RoomOccupied)
	maintenanceRooms, _ := dc.count(&models.Room{}, "status LIKE ?", "%Maintenance%")

	todaysCheckins, _ := dc.count(&models.Booking{}, "check_in >= ? AND check_in < ?", today, tomorrow)
	todaysCheckouts, _ := dc.count(&models.Booking{}, "check_out >= ? AND check_out < ?", today, tomorrow)
	activeBookings, _ := dc.count(&models.Booking{}, "status IN ?",
		[]string{models.BookingConfirmed, models.BookingCheckedIn})

	var todaysRevenue float64
	dc.DB.Model(&models.Billing{}).
		Where("created_at >= ? AND created_at < ?", today, tomorrow).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&todaysRevenue)

	type recentCheckin struct {
		Name string    `json:"name"`
		Room string    `json:"room"`
		Date time.Time `json:"date"`
	}
	var recent []recentCheckin
	dc.DB.Table("bookings b").
		Select("c.name, r.room_number AS room, b.check_in AS date").
		Joins("JOIN customers c ON c.id = b.customer_id").
		Joins("JOIN rooms r ON r.id = b.room_id").
		Where("b.status IN ?", []string{models.BookingConfirmed, models.BookingCheckedIn}).
		Order("b.check_in DESC").
		Limit(5).
		Scan(&recent)

	occupancyRate := 0.0
	if totalRooms > 0 {
		occupancyRate = math.Round(float64(occupiedRooms)/float64(totalRooms)*10000) / 100
	}

	type statusCount struct {
		Status string
		Count  int64
	}
	var kitchenRows []statusCount
	dc.DB.Model(&models.KitchenOrder{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&kitchenRows)
	kitchenStatus := make(map[string]int64, len(kitchenRows))
	for _, row := range kitchenRows {
		kitchenStatus[row.Status] = row.Count
	}

	utils.RespondJSON(c, http.StatusOK, "Dashboard summary", gin.H{
		"totalRooms":       totalRooms,
		"availableRooms":   availableRooms,
		"occupiedRooms":    occupiedRooms,
		"maintenanceRooms": maintenanceRooms,
		"occupancyRate":    occupancyRate,
		"todaysCheckins":   todaysCheckins,
		"todaysCheckouts":  todaysCheckouts,
		"activeBookings":   activeBookings,
		"todaysRevenue":    todaysRevenue,
		"recentCheckins":   recent,
		"kitchenStatus":    kitchenStatus,
	})
}

// GetProfit -> sum of billing totals, ?filter=all|today|week|month
func (dc *DashboardController) GetProfit(c *gin.Context) {
	filter := c.DefaultQuery("filter", "all")

	now := utils.ISTNow()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, utils.IST)

	q := dc.DB.Model(&models.Billing{})
	switch filter {
	case "today":
		q = q.Where("created_at >= ? AND created_at < ?", today, today.AddDate(0, 0, 1))
	case "week":
		// Week runs Sunday through Saturday, like the front desk counts it.
		weekStart := today.AddDate(0, 0, -int(today.Weekday()))
		q = q.Where("created_at >= ? AND created_at < ?", weekStart, weekStart.AddDate(0, 0, 7))
	case "month":
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, utils.IST)
		q = q.Where("created_at >= ? AND created_at < ?", monthStart, monthStart.AddDate(0, 1, 0))
	case "all":
	default:
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid filter"))
		return
	}

	var profit float64
	if err := q.Select("COALESCE(SUM(total_amount), 0)").Scan(&profit).Error; err != nil {
		utils.ErrorLogger.Printf("Profit query error: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to fetch profit"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Profit", gin.H{
		"profit": profit,
		"filter": filter,
	})
}
