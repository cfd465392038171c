// Package kds fans service events out to connected kitchen-display
// and floor clients over websockets. Delivery is best effort; the
// database is the source of truth and clients refetch on reconnect.
package kds

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/sreekln/HotelOrderingSystem-sub000/models"
	"github.com/sreekln/HotelOrderingSystem-sub000/utils"
)

// Event types.
const (
	EventPartOrderCreate = "part_order_create"
	EventPartOrderUpdate = "part_order_update"
	EventSessionUpdate   = "session_update"
	EventPaymentUpdate   = "payment_update"
	EventReceiptCreate   = "receipt_generated"
	EventStaffNotif      = "staff_notification"
	EventKitchenBacklog  = "kitchen_backlog"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub holds every connected client (kitchen, server, admin) keyed by
// role so broadcasts could be filtered later.
type Hub struct {
	clients map[*websocket.Conn]string
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]string),
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Upgrade takes over an HTTP request as a websocket and registers the
// connection under the given role until it drops.
func Upgrade(w http.ResponseWriter, r *http.Request, role string) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	// Backlog goes out before the client joins the broadcast set so
	// nothing else writes to the connection concurrently.
	sendBacklog(conn)
	RegisterClient(conn, role)

	// Reader loop only exists to detect the close.
	go func() {
		defer UnregisterClient(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
	return nil
}

func RegisterClient(conn *websocket.Conn, role string) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = role
}

func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// BroadcastPartOrderCreate announces a new kitchen round.
func BroadcastPartOrderCreate(po models.PartOrder) {
	broadcast(Message{Event: EventPartOrderCreate, Data: po})
}

// BroadcastPartOrderUpdate announces a status change on a round.
func BroadcastPartOrderUpdate(po models.PartOrder) {
	broadcast(Message{Event: EventPartOrderUpdate, Data: po})
}

// BroadcastSessionUpdate announces total/status changes on a session.
func BroadcastSessionUpdate(session models.TableSession) {
	broadcast(Message{Event: EventSessionUpdate, Data: session})
}

// BroadcastPaymentUpdate announces a charge result.
func BroadcastPaymentUpdate(payment models.Payment) {
	broadcast(Message{Event: EventPaymentUpdate, Data: payment})
}

// BroadcastReceipt announces a generated receipt for printing.
func BroadcastReceipt(receipt models.Receipt) {
	broadcast(Message{Event: EventReceiptCreate, Data: receipt})
}

// BroadcastStaffNotification sends a free-form message to all clients.
func BroadcastStaffNotification(text string) {
	broadcast(Message{Event: EventStaffNotif, Data: text})
}

// sendBacklog pushes the rounds still in the kitchen to a freshly
// connected client so a reconnecting display does not start blank.
func sendBacklog(conn *websocket.Conn) {
	db := utils.GetDB()
	if db == nil {
		return
	}
	var orders []models.PartOrder
	err := db.Preload("Items").
		Where("status IN ?", []models.PartOrderStatus{models.PartOrderSentToKitchen, models.PartOrderPreparing}).
		Order("created_at asc").
		Find(&orders).Error
	if err != nil {
		if utils.ErrorLogger != nil {
			utils.ErrorLogger.Printf("kds: load backlog: %v", err)
		}
		return
	}

	payload, err := json.Marshal(Message{Event: EventKitchenBacklog, Data: orders})
	if err != nil {
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		if utils.ErrorLogger != nil {
			utils.ErrorLogger.Printf("kds: send backlog: %v", err)
		}
	}
}

func broadcast(msg Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		if utils.ErrorLogger != nil {
			utils.ErrorLogger.Printf("kds: marshal %s event: %v", msg.Event, err)
		}
		return
	}

	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	for conn := range hub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			delete(hub.clients, conn)
			conn.Close()
		}
	}
}
