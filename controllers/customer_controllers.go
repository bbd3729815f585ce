package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rkarthik/hotel-backend/models"
	"github.com/rkarthik/hotel-backend/utils"
)

type CustomerController struct {
	DB *gorm.DB
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

// GetAllCustomers
func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	var customers []models.Customer
	if err := cc.DB.Order("id DESC").Find(&customers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of customers", customers)
}

// GetCustomerByID
func (cc *CustomerController) GetCustomerByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("customer_id"))

	var customer models.Customer
	if err := cc.DB.First(&customer, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customer detail", customer)
}

type customerRequest struct {
	Name     string `json:"name" binding:"required"`
	Contact  string `json:"contact"`
	Email    string `json:"email"`
	IDType   string `json:"id_type"`
	IDNumber string `json:"id_number"`
	Address  string `json:"address"`
}

// CreateCustomer
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var body customerRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customer := models.Customer{
		Name:     body.Name,
		Contact:  body.Contact,
		Email:    body.Email,
		IDType:   body.IDType,
		IDNumber: body.IDNumber,
		Address:  body.Address,
	}
	if err := cc.DB.Create(&customer).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Customer added", gin.H{"id": customer.ID})
}

// UpdateCustomer
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("customer_id"))

	var body customerRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	res := cc.DB.Model(&models.Customer{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":       body.Name,
		"contact":    body.Contact,
		"email":      body.Email,
		"id_type":    body.IDType,
		"id_number":  body.IDNumber,
		"address":    body.Address,
		"updated_at": utils.ISTNow(),
	})
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, gorm.ErrRecordNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customer updated", nil)
}

// DeleteCustomer
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("customer_id"))

	if err := cc.DB.Delete(&models.Customer{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customer deleted", gin.H{"customer_id": id})
}
