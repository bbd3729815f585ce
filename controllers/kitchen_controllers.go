package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rkarthik/hotel-backend/kitchen"
	"github.com/rkarthik/hotel-backend/models"
	"github.com/rkarthik/hotel-backend/utils"
)

// KitchenController covers menu items, menu categories and kitchen orders.
type KitchenController struct {
	DB *gorm.DB
}

func NewKitchenController(db *gorm.DB) *KitchenController {
	return &KitchenController{DB: db}
}

/*
========================================
 MENU ITEMS
========================================
*/

// GetMenuItems
func (kc *KitchenController) GetMenuItems(c *gin.Context) {
	var items []models.MenuItem
	if err := kc.DB.Order("category, name").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}

// GetMenuItemByID
func (kc *KitchenController) GetMenuItemByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("item_id"))

	var item models.MenuItem
	if err := kc.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item detail", item)
}

type menuItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category"`
	Price    float64 `json:"price" binding:"required"`
	Stock    int     `json:"stock"`
	Status   string  `json:"status"`
}

// CreateMenuItem
func (kc *KitchenController) CreateMenuItem(c *gin.Context) {
	var body menuItemRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	status := body.Status
	if status == "" {
		status = "Available"
	}
	item := models.MenuItem{
		Name:     body.Name,
		Category: body.Category,
		Price:    body.Price,
		Stock:    body.Stock,
		Status:   status,
	}
	if err := kc.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Menu item created", gin.H{"id": item.ID})
}

// UpdateMenuItem
func (kc *KitchenController) UpdateMenuItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("item_id"))

	var body menuItemRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	res := kc.DB.Model(&models.MenuItem{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":       body.Name,
		"category":   body.Category,
		"price":      body.Price,
		"stock":      body.Stock,
		"status":     body.Status,
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
	utils.RespondJSON(c, http.StatusOK, "Menu item updated", nil)
}

// DeleteMenuItem
func (kc *KitchenController) DeleteMenuItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("item_id"))

	if err := kc.DB.Delete(&models.MenuItem{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", gin.H{"item_id": id})
}

/*
========================================
 CATEGORIES
========================================
*/

// GetCategories
func (kc *KitchenController) GetCategories(c *gin.Context) {
	var categories []models.MenuCategory
	if err := kc.DB.Order("name").Find(&categories).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of categories", categories)
}

// CreateCategory
func (kc *KitchenController) CreateCategory(c *gin.Context) {
	var body struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	category := models.MenuCategory{Name: body.Name}
	if err := kc.DB.Create(&category).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Category created", gin.H{"id": category.ID})
}

// DeleteCategory
func (kc *KitchenController) DeleteCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("cat_id"))

	if err := kc.DB.Delete(&models.MenuCategory{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Category deleted", gin.H{"cat_id": id})
}

/*
========================================
 KITCHEN ORDERS
========================================
*/

// GetKitchenOrders -> orders joined with room, guest and item
func (kc *KitchenController) GetKitchenOrders(c *gin.Context) {
	type orderRow struct {
		ID           uint    `json:"id"`
		Quantity     int     `json:"quantity"`
		Status       string  `json:"status"`
		CreatedAt    string  `json:"created_at"`
		BookingID    uint    `json:"booking_id"`
		RoomNumber   string  `json:"room_number"`
		CustomerName string  `json:"customer_name"`
		ItemName     string  `json:"item_name"`
		Price        float64 `json:"price"`
	}

	var rows []orderRow
	err := kc.DB.Table("kitchen_orders ko").
		Select(`ko.id, ko.quantity, ko.status, ko.created_at, ko.booking_id,
			r.room_number, c.name AS customer_name, mi.name AS item_name, mi.price`).
		Joins("JOIN bookings b ON ko.booking_id = b.id").
		Joins("JOIN rooms r ON ko.room_id = r.id").
		Joins("JOIN customers c ON b.customer_id = c.id").
		Joins("JOIN menu_items mi ON ko.item_id = mi.id").
		Order("ko.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of kitchen orders", rows)
}

// CreateKitchenOrder -> new order in Pending, broadcast to the kitchen display
func (kc *KitchenController) CreateKitchenOrder(c *gin.Context) {
	var body struct {
		RoomID    uint `json:"room_id"`
		BookingID uint `json:"booking_id" binding:"required"`
		ItemID    uint `json:"item_id" binding:"required"`
		Quantity  int  `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order := models.KitchenOrder{
		RoomID:    body.RoomID,
		BookingID: body.BookingID,
		ItemID:    body.ItemID,
		Quantity:  body.Quantity,
		Status:    models.KitchenPending,
		CreatedAt: utils.ISTNow(),
		UpdatedAt: utils.ISTNow(),
	}
	if err := kc.DB.Create(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	kitchen.BroadcastOrderUpdate(order)

	utils.RespondJSON(c, http.StatusCreated, "Order added", gin.H{"id": order.ID})
}

// UpdateKitchenOrderStatus -> Pending/Served/Cancelled transitions by staff.
// Settled is reserved for checkout and rejected here.
func (kc *KitchenController) UpdateKitchenOrderStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("order_id"))

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.Status == models.KitchenSettled {
		utils.RespondError(c, http.StatusBadRequest, ErrSettledReserved)
		return
	}

	var order models.KitchenOrder
	if err := kc.DB.First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	// Settled orders belong to a billing snapshot and stay that way.
	res := kc.DB.Model(&models.KitchenOrder{}).
		Where("id = ? AND status <> ?", id, models.KitchenSettled).
		Updates(map[string]interface{}{"status": body.Status, "updated_at": utils.ISTNow()})
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondError(c, http.StatusConflict, ErrOrderSettled)
		return
	}

	order.Status = body.Status
	kitchen.BroadcastOrderUpdate(order)

	utils.RespondJSON(c, http.StatusOK, "Kitchen order status updated", nil)
}
