package kitchen

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/rkarthik/hotel-backend/models"
)

// Event types pushed to connected kitchen/front-desk clients.
const (
	EventOrderUpdate       = "kitchen_order_update"
	EventCheckoutCompleted = "checkout_completed"
	EventStaffNotif        = "staff_notification"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub holds every connected client (kitchen display, front desk, admin)
// keyed by role.
type Hub struct {
	clients map[*websocket.Conn]string
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient adds a connection with its role.
func RegisterClient(conn *websocket.Conn, role string) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = role
}

// UnregisterClient drops a connection.
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// BroadcastOrderUpdate pushes a kitchen order change to every client.
func BroadcastOrderUpdate(order models.KitchenOrder) {
	broadcast(Message{
		Event: EventOrderUpdate,
		Data:  order,
	})
}

// BroadcastCheckout announces a completed checkout, so the kitchen display
// clears the room's settled orders.
func BroadcastCheckout(summary interface{}) {
	broadcast(Message{
		Event: EventCheckoutCompleted,
		Data:  summary,
	})
}

// BroadcastStaffNotification sends a free-form notice to staff clients.
func BroadcastStaffNotification(message string) {
	broadcast(Message{
		Event: EventStaffNotif,
		Data:  message,
	})
}

func broadcast(msg Message) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling message: %v", err)
		return
	}

	for conn, role := range hub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("Error sending message to %s client: %v", role, err)
			continue
		}
	}
}
