package Controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rkarthik/hotel-backend/controllers"
	"github.com/rkarthik/hotel-backend/models"
	"github.com/rkarthik/hotel-backend/utils"
)

func setupKitchenDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	utils.InitLogger()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&models.Customer{},
		&models.Room{},
		&models.Booking{},
		&models.MenuCategory{},
		&models.MenuItem{},
		&models.KitchenOrder{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func setupKitchenRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	kitchenCtrl := controllers.NewKitchenController(db)
	router.GET("/kitchen/items", kitchenCtrl.GetMenuItems)
	router.POST("/kitchen/items", kitchenCtrl.CreateMenuItem)
	router.PUT("/kitchen/items/:item_id", kitchenCtrl.UpdateMenuItem)
	router.GET("/kitchen/orders", kitchenCtrl.GetKitchenOrders)
	router.POST("/kitchen/orders", kitchenCtrl.CreateKitchenOrder)
	router.PUT("/kitchen/orders/:order_id", kitchenCtrl.UpdateKitchenOrderStatus)
	return router
}

func seedKitchenStay(t *testing.T, db *gorm.DB) (models.Booking, models.MenuItem) {
	t.Helper()
	customer := models.Customer{Name: "Arjun"}
	assert.NoError(t, db.Create(&customer).Error)
	room := models.Room{RoomNumber: "102", PricePerNight: 1000, Status: models.RoomOccupied}
	assert.NoError(t, db.Create(&room).Error)
	booking := models.Booking{
		BookingCode: "BK-K1", CustomerID: customer.ID, RoomID: room.ID,
		CheckIn: utils.ISTNow(), Status: models.BookingCheckedIn, Price: 1000,
	}
	assert.NoError(t, db.Create(&booking).Error)
	item := models.MenuItem{Name: "Paneer Tikka", Price: 220}
	assert.NoError(t, db.Create(&item).Error)
	return booking, item
}

func TestCreateMenuItem(t *testing.T) {
	db := setupKitchenDB(t, "kitchen_item_create")
	router := setupKitchenRouter(db)

	w := doJSON(router, "POST", "/kitchen/items", map[string]interface{}{
		"name": "Idli", "price": 60, "category": "Breakfast",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var item models.MenuItem
	assert.NoError(t, db.Where("name = ?", "Idli").First(&item).Error)
	assert.Equal(t, "Available", item.Status)
}

func TestCreateKitchenOrderStartsPending(t *testing.T) {
	db := setupKitchenDB(t, "kitchen_order_create")
	booking, item := seedKitchenStay(t, db)
	router := setupKitchenRouter(db)

	w := doJSON(router, "POST", "/kitchen/orders", map[string]interface{}{
		"booking_id": booking.ID,
		"room_id":    booking.RoomID,
		"item_id":    item.ID,
		"quantity":   2,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var order models.KitchenOrder
	assert.NoError(t, db.Where("booking_id = ?", booking.ID).First(&order).Error)
	assert.Equal(t, models.KitchenPending, order.Status)
	assert.Equal(t, 2, order.Quantity)
}

func TestGetKitchenOrdersJoined(t *testing.T) {
	db := setupKitchenDB(t, "kitchen_order_list")
	booking, item := seedKitchenStay(t, db)
	db.Create(&models.KitchenOrder{
		BookingID: booking.ID, RoomID: booking.RoomID, ItemID: item.ID,
		Quantity: 1, Status: models.KitchenPending,
	})

	router := setupKitchenRouter(db)
	req, _ := http.NewRequest("GET", "/kitchen/orders", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].([]interface{})
	assert.Len(t, data, 1)
	row := data[0].(map[string]interface{})
	assert.Equal(t, "102", row["room_number"])
	assert.Equal(t, "Arjun", row["customer_name"])
	assert.Equal(t, "Paneer Tikka", row["item_name"])
}

func TestUpdateKitchenOrderRejectsSettledStatus(t *testing.T) {
	db := setupKitchenDB(t, "kitchen_order_reserved")
	booking, item := seedKitchenStay(t, db)
	order := models.KitchenOrder{
		BookingID: booking.ID, RoomID: booking.RoomID, ItemID: item.ID,
		Quantity: 1, Status: models.KitchenPending,
	}
	assert.NoError(t, db.Create(&order).Error)

	router := setupKitchenRouter(db)
	w := doJSON(router, "PUT", fmt.Sprintf("/kitchen/orders/%d", order.ID),
		map[string]string{"status": models.KitchenSettled})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateKitchenOrderSettledIsFinal(t *testing.T) {
	db := setupKitchenDB(t, "kitchen_order_final")
	booking, item := seedKitchenStay(t, db)
	order := models.KitchenOrder{
		BookingID: booking.ID, RoomID: booking.RoomID, ItemID: item.ID,
		Quantity: 1, Status: models.KitchenSettled,
	}
	assert.NoError(t, db.Create(&order).Error)

	router := setupKitchenRouter(db)
	w := doJSON(router, "PUT", fmt.Sprintf("/kitchen/orders/%d", order.ID),
		map[string]string{"status": models.KitchenCancelled})
	assert.Equal(t, http.StatusConflict, w.Code)

	var fresh models.KitchenOrder
	assert.NoError(t, db.First(&fresh, order.ID).Error)
	assert.Equal(t, models.KitchenSettled, fresh.Status)
}
