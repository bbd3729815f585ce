package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/rkarthik/hotel-backend/models"
	"github.com/rkarthik/hotel-backend/utils"
)

type StaffController struct {
	DB *gorm.DB
}

func NewStaffController(db *gorm.DB) *StaffController {
	return &StaffController{DB: db}
}

// GetAllStaff -> staff rows joined with their login email, admin only
func (sc *StaffController) GetAllStaff(c *gin.Context) {
	type staffRow struct {
		ID        uint   `json:"id"`
		Name      string `json:"name"`
		Phone     string `json:"phone"`
		Status    string `json:"status"`
		CreatedAt string `json:"created_at"`
		Email     string `json:"email"`
	}

	var rows []staffRow
	err := sc.DB.Table("staffs s").
		Select("s.id, s.name, s.phone, s.status, s.created_at, u.email").
		Joins("LEFT JOIN users u ON u.staff_id = s.id AND u.role = ?", models.RoleStaff).
		Order("s.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to fetch staff"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of staff", rows)
}

// CreateStaff adds a staff record and its linked login in one transaction.
// The login email is generated from the staff id.
func (sc *StaffController) CreateStaff(c *gin.Context) {
	var body struct {
		Name     string `json:"name"`
		Phone    string `json:"phone"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.Name == "" || body.Phone == "" || body.Password == "" {
		utils.RespondError(c, http.StatusBadRequest,
			errors.New("name, phone number and password are required"))
		return
	}
	if len(body.Password) < 6 {
		utils.RespondError(c, http.StatusBadRequest,
			errors.New("password must be at least 6 characters"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	tx := sc.DB.Begin()

	staff := models.Staff{
		Name:   body.Name,
		Phone:  body.Phone,
		Status: models.StaffActive,
	}
	if err := tx.Create(&staff).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to add staff"))
		return
	}

	user := models.User{
		Name:     body.Name,
		Email:    fmt.Sprintf("staff%d@hotel.com", staff.ID),
		Password: string(hashed),
		Role:     models.RoleStaff,
		StaffID:  &staff.ID,
	}
	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError,
			errors.New("staff added but login creation failed"))
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Staff %s (id=%d) added with login %s", staff.Name, staff.ID, user.Email)

	utils.RespondJSON(c, http.StatusCreated, "Staff added", gin.H{
		"id":     staff.ID,
		"name":   staff.Name,
		"phone":  staff.Phone,
		"status": staff.Status,
	})
}
