package kitchen

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"

	"github.com/rkarthik/hotel-backend/models"
)

// dialTestClient upgrades a connection against a throwaway server and
// registers it with the hub, returning the client side.
func dialTestClient(t *testing.T, role string) (*websocket.Conn, func()) {
	t.Helper()

	upgrader := websocket.Upgrader{}
	registered := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		RegisterClient(conn, role)
		registered <- conn
	}))

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	assert.NoError(t, err)

	server := <-registered
	cleanup := func() {
		UnregisterClient(server)
		client.Close()
		srv.Close()
	}
	return client, cleanup
}

func TestBroadcastStaffNotification(t *testing.T) {
	client, cleanup := dialTestClient(t, models.RoleStaff)
	defer cleanup()

	BroadcastStaffNotification("Booking BK-HUB1 created for room 7")

	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := client.ReadMessage()
	assert.NoError(t, err)

	var msg Message
	assert.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, EventStaffNotif, msg.Event)
	assert.Equal(t, "Booking BK-HUB1 created for room 7", msg.Data)
}

func TestBroadcastOrderUpdate(t *testing.T) {
	client, cleanup := dialTestClient(t, models.RoleAdmin)
	defer cleanup()

	BroadcastOrderUpdate(models.KitchenOrder{
		ID:        3,
		BookingID: 12,
		ItemID:    5,
		Quantity:  2,
		Status:    models.KitchenPending,
	})

	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := client.ReadMessage()
	assert.NoError(t, err)

	var msg Message
	assert.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, EventOrderUpdate, msg.Event)

	order := msg.Data.(map[string]interface{})
	assert.Equal(t, 12.0, order["booking_id"])
	assert.Equal(t, models.KitchenPending, order["status"])
}
