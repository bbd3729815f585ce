package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rkarthik/hotel-backend/models"
	"github.com/rkarthik/hotel-backend/utils"
)

// AddOnController manages the catalog of chargeable extras.
type AddOnController struct {
	DB *gorm.DB
}

func NewAddOnController(db *gorm.DB) *AddOnController {
	return &AddOnController{DB: db}
}

// GetAddOns
func (ac *AddOnController) GetAddOns(c *gin.Context) {
	var addOns []models.AddOn
	if err := ac.DB.Order("name").Find(&addOns).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of add-ons", addOns)
}

// CreateAddOn
func (ac *AddOnController) CreateAddOn(c *gin.Context) {
	var body struct {
		Name  string   `json:"name"`
		Price *float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.Name == "" || body.Price == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("name and price are required"))
		return
	}

	addOn := models.AddOn{Name: body.Name, Price: *body.Price}
	if err := ac.DB.Create(&addOn).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Add-on created", addOn)
}

// UpdateAddOn
func (ac *AddOnController) UpdateAddOn(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("addon_id"))

	var body struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	res := ac.DB.Model(&models.AddOn{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":       body.Name,
		"price":      body.Price,
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
	utils.RespondJSON(c, http.StatusOK, "Add-on updated", gin.H{"updated": true})
}

// DeleteAddOn
func (ac *AddOnController) DeleteAddOn(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("addon_id"))

	if err := ac.DB.Delete(&models.AddOn{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Add-on deleted", gin.H{"deleted": true})
}
