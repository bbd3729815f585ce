package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rkarthik/hotel-backend/models"
	"github.com/rkarthik/hotel-backend/utils"
)

// BillingController is read-only: billing rows are written exclusively by the
// checkout orchestrator.
type BillingController struct {
	DB *gorm.DB
}

func NewBillingController(db *gorm.DB) *BillingController {
	return &BillingController{DB: db}
}

// GetAllBillings
func (bc *BillingController) GetAllBillings(c *gin.Context) {
	var billings []models.Billing
	if err := bc.DB.Order("id DESC").Find(&billings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of billings", billings)
}

// GetBillingByID
func (bc *BillingController) GetBillingByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("billing_id"))

	var billing models.Billing
	if err := bc.DB.First(&billing, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Billing detail", billing)
}
