package main

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

// NotificationHub fans hire-request events out to connected clients.
type NotificationHub struct {
	clients    map[int]*websocket.Conn
	register   chan hubClient
	unregister chan int
	events     chan hubEvent
}

type hubClient struct {
	ID     int
	Socket *websocket.Conn
}

type hubEvent struct {
	UserID  int         `json:"user_id"`
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

func NewNotificationHub() *NotificationHub {
	return &NotificationHub{
		clients:    make(map[int]*websocket.Conn),
		register:   make(chan hubClient),
		unregister: make(chan int),
		events:     make(chan hubEvent, 64),
	}
}

func (h *NotificationHub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client.ID] = client.Socket
		case clientID := <-h.unregister:
			if conn, ok := h.clients[clientID]; ok {
				conn.Close()
				delete(h.clients, clientID)
			}
		case event := <-h.events:
			conn, ok := h.clients[event.UserID]
			if !ok {
				continue
			}
			if err := conn.WriteJSON(event); err != nil {
				log.Println("Error sending notification:", err)
				conn.Close()
				delete(h.clients, event.UserID)
			}
		}
	}
}

// Notify implements services.Notifier. Non-blocking; an offline user just
// misses the in-app event (FCM still reaches them).
func (h *NotificationHub) Notify(userID int, event string, payload interface{}) {
	select {
	case h.events <- hubEvent{UserID: userID, Event: event, Payload: payload}:
	default:
	}
}

func (app *application) WebSocketHandler(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}

	var clientData struct {
		UserID int `json:"userId"`
	}
	if err := conn.ReadJSON(&clientData); err != nil {
		log.Println("Failed to read client data:", err)
		conn.Close()
		return
	}

	app.hub.register <- hubClient{ID: clientData.UserID, Socket: conn}

	go func() {
		defer func() {
			app.hub.unregister <- clientData.UserID
		}()
		for {
			// Clients only listen; drain control frames until disconnect.
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
