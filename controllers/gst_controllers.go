package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rkarthik/hotel-backend/models"
	"github.com/rkarthik/hotel-backend/utils"
)

type GSTController struct {
	DB *gorm.DB
}

func NewGSTController(db *gorm.DB) *GSTController {
	return &GSTController{DB: db}
}

// GetGSTSettings
func (gc *GSTController) GetGSTSettings(c *gin.Context) {
	var settings []models.GSTSetting
	if err := gc.DB.Order("category").Find(&settings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "GST settings", settings)
}

// UpdateGSTSettings -> bulk rate update, all categories in one transaction
func (gc *GSTController) UpdateGSTSettings(c *gin.Context) {
	var settings []struct {
		Category  string  `json:"category"`
		GSTRate   float64 `json:"gst_rate"`
		IsEnabled bool    `json:"is_enabled"`
	}
	if err := c.ShouldBindJSON(&settings); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid GST payload format"))
		return
	}

	tx := gc.DB.Begin()
	for _, s := range settings {
		if err := tx.Model(&models.GSTSetting{}).
			Where("category = ?", s.Category).
			Updates(map[string]interface{}{
				"gst_rate":   s.GSTRate,
				"is_enabled": s.IsEnabled,
				"updated_at": utils.ISTNow(),
			}).Error; err != nil {
			tx.Rollback()
			utils.ErrorLogger.Printf("GST update error for category %s: %v", s.Category, err)
			utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to save GST settings"))
			return
		}
	}
	if err := tx.Commit().Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to save GST settings"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "GST settings updated successfully", nil)
}
