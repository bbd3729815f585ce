package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/rkarthik/hotel-backend/models"
	"github.com/rkarthik/hotel-backend/utils"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// Register -> bootstrap an admin login
func (uc *UserController) Register(c *gin.Context) {
	type request struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}
	if err := uc.DB.Create(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New user registered: %s (role=%s)", user.Email, user.Role)

	utils.RespondJSON(c, http.StatusCreated, "User registered", gin.H{
		"user_id": user.ID,
	})
}

// Login -> return JWT. Staff logins are rejected when their staff record is
// missing or inactive.
func (uc *UserController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	if err := uc.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	name := user.Name
	var staffID *uint
	if user.Role == models.RoleStaff {
		if user.StaffID == nil {
			utils.RespondError(c, http.StatusForbidden, errors.New("staff inactive or not found"))
			return
		}
		var staff models.Staff
		if err := uc.DB.Where("id = ? AND status = ?", *user.StaffID, models.StaffActive).
			First(&staff).Error; err != nil {
			utils.RespondError(c, http.StatusForbidden, errors.New("staff inactive or not found"))
			return
		}
		name = staff.Name
		staffID = user.StaffID
	}

	token, err := utils.GenerateToken(user.ID, user.Role, name, staffID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Login successful for user: %s, role: %s", user.Email, user.Role)

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"name":     name,
			"role":     strings.ToLower(user.Role),
			"staff_id": staffID,
		},
	})
}

// Logout -> blacklist the presented token
func (uc *UserController) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if token != "" {
		utils.BlacklistToken(token)
	}
	utils.RespondJSON(c, http.StatusOK, "Logged out", nil)
}

// GetProfile -> identity behind the presented JWT
func (uc *UserController) GetProfile(c *gin.Context) {
	userIDInterface, exists := c.Get("user_id")
	if !exists {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}
	userID, ok := userIDInterface.(uint)
	if !ok {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("invalid user id type"))
		return
	}

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	profile := gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	}

	if user.Role == models.RoleStaff && user.StaffID != nil {
		var staff models.Staff
		if err := uc.DB.First(&staff, *user.StaffID).Error; err != nil {
			utils.RespondError(c, http.StatusNotFound, errors.New("staff not found"))
			return
		}
		profile["staff_id"] = staff.ID
		profile["name"] = staff.Name
		profile["phone"] = staff.Phone
		profile["status"] = staff.Status
	}

	utils.RespondJSON(c, http.StatusOK, "Profile data retrieved successfully", profile)
}

// GetStaffList -> active staff names, used by the booking form
func (uc *UserController) GetStaffList(c *gin.Context) {
	type staffName struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
	var list []staffName
	if err := uc.DB.Model(&models.Staff{}).
		Where("status = ?", models.StaffActive).
		Order("name").
		Scan(&list).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("error fetching staff list"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Active staff", list)
}

// ChangePassword
func (uc *UserController) ChangePassword(c *gin.Context) {
	var body struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.CurrentPassword == "" || body.NewPassword == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("current and new password required"))
		return
	}
	if len(body.NewPassword) < 6 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("password must be at least 6 characters"))
		return
	}

	userIDInterface, _ := c.Get("user_id")
	userID, _ := userIDInterface.(uint)

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("user not found"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.CurrentPassword)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("current password is incorrect"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := uc.DB.Model(&user).Update("password", string(hashed)).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("password update failed"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Password changed successfully. Please login again.", nil)
}
