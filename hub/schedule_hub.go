package hub

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Event types
const (
	EventAssignmentCreate = "assignment_create"
	EventAssignmentUpdate = "assignment_update"
	EventAssignmentDelete = "assignment_delete"
	EventDashboardUpdate  = "dashboard_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// ScheduleHub menampung semua client dashboard (admin, cleaner) dan
// menyiarkan perubahan jadwal ke mereka.
type ScheduleHub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

var scheduleHub = ScheduleHub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient -> menambahkan connection ke set dengan role
func RegisterClient(conn *websocket.Conn, role string) {
	scheduleHub.mutex.Lock()
	defer scheduleHub.mutex.Unlock()
	scheduleHub.clients[conn] = role
}

// UnregisterClient -> melepaskan connection
func UnregisterClient(conn *websocket.Conn) {
	scheduleHub.mutex.Lock()
	defer scheduleHub.mutex.Unlock()
	delete(scheduleHub.clients, conn)
	conn.Close()
}

// BroadcastAssignmentCreate -> menyiarkan assignment baru ke semua client
func BroadcastAssignmentCreate(data interface{}) {
	broadcast(Message{Event: EventAssignmentCreate, Data: data})
}

func BroadcastAssignmentUpdate(data interface{}) {
	broadcast(Message{Event: EventAssignmentUpdate, Data: data})
}

func BroadcastAssignmentDelete(data interface{}) {
	broadcast(Message{Event: EventAssignmentDelete, Data: data})
}

// BroadcastDashboardUpdate -> memberi tahu client agar refresh dashboard
func BroadcastDashboardUpdate(data interface{}) {
	broadcast(Message{Event: EventDashboardUpdate, Data: data})
}

func broadcast(msg Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshalling hub message: %v", err)
		return
	}

	scheduleHub.mutex.Lock()
	defer scheduleHub.mutex.Unlock()
	for conn := range scheduleHub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("Error broadcasting to client: %v", err)
			conn.Close()
			delete(scheduleHub.clients, conn)
		}
	}
}
