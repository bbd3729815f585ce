package Controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rkarthik/hotel-backend/controllers"
	"github.com/rkarthik/hotel-backend/models"
	"github.com/rkarthik/hotel-backend/utils"
)

func setupUserDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	utils.InitLogger()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Staff{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func setupUserRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	userCtrl := controllers.NewUserController(db)
	router.POST("/auth/register", userCtrl.Register)
	router.POST("/auth/login", userCtrl.Login)
	router.GET("/auth/staff-list", userCtrl.GetStaffList)
	return router
}

func hashPassword(t *testing.T, plain string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupUserDB(t, "users_register")
	router := setupUserRouter(db)

	w := doJSON(router, "POST", "/auth/register", map[string]string{
		"name":     "Manager",
		"email":    "manager@hotel.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, "POST", "/auth/login", map[string]string{
		"email":    "manager@hotel.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Login successful", response["message"])
	data := response["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "admin", user["role"])
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupUserDB(t, "users_badpass")
	router := setupUserRouter(db)

	db.Create(&models.User{
		Name: "Admin", Email: "a@hotel.com",
		Password: hashPassword(t, "rightpass"), Role: models.RoleAdmin,
	})

	w := doJSON(router, "POST", "/auth/login", map[string]string{
		"email": "a@hotel.com", "password": "wrongpass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginInactiveStaffRejected(t *testing.T) {
	db := setupUserDB(t, "users_inactive")
	router := setupUserRouter(db)

	staff := models.Staff{Name: "Kumar", Status: models.StaffInactive}
	assert.NoError(t, db.Create(&staff).Error)
	db.Create(&models.User{
		Name: "Kumar", Email: "kumar@hotel.com",
		Password: hashPassword(t, "staffpass"), Role: models.RoleStaff, StaffID: &staff.ID,
	})

	w := doJSON(router, "POST", "/auth/login", map[string]string{
		"email": "kumar@hotel.com", "password": "staffpass",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "staff inactive or not found", response["message"])
}

func TestLoginActiveStaffUsesStaffName(t *testing.T) {
	db := setupUserDB(t, "users_activestaff")
	router := setupUserRouter(db)

	staff := models.Staff{Name: "Lakshmi", Status: models.StaffActive}
	assert.NoError(t, db.Create(&staff).Error)
	db.Create(&models.User{
		Name: "staff-login", Email: "lakshmi@hotel.com",
		Password: hashPassword(t, "staffpass"), Role: models.RoleStaff, StaffID: &staff.ID,
	})

	w := doJSON(router, "POST", "/auth/login", map[string]string{
		"email": "lakshmi@hotel.com", "password": "staffpass",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	user := response["data"].(map[string]interface{})["user"].(map[string]interface{})
	assert.Equal(t, "Lakshmi", user["name"])
}

func TestStaffListOnlyActive(t *testing.T) {
	db := setupUserDB(t, "users_stafflist")
	router := setupUserRouter(db)

	db.Create(&models.Staff{Name: "Active One", Status: models.StaffActive})
	db.Create(&models.Staff{Name: "Gone", Status: models.StaffInactive})

	req, _ := http.NewRequest("GET", "/auth/staff-list", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].([]interface{})
	assert.Len(t, data, 1)
	assert.Equal(t, "Active One", data[0].(map[string]interface{})["name"])
}
