package ws

import (
	"log"
	"net/http"
	"sync"

	"canteen/entity"
	"canteen/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// NotifyHub fans notifications out to connected employees. Each employee
// may hold several connections (multiple tabs); all of them get the push.
type NotifyHub struct {
	clients    map[string]map[*websocket.Conn]bool // employeeID -> set of clients
	push       chan pushMessage
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

type subscription struct {
	Conn       *websocket.Conn
	EmployeeID string
}

type pushMessage struct {
	EmployeeID string
	Feedback   *entity.Feedback
}

func NewNotifyHub() *NotifyHub {
	return &NotifyHub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		push:       make(chan pushMessage),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

func (h *NotifyHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.EmployeeID] == nil {
				h.clients[sub.EmployeeID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.EmployeeID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.EmployeeID][sub.Conn]; ok {
				delete(h.clients[sub.EmployeeID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case msg := <-h.push:
			h.mu.Lock()
			for conn := range h.clients[msg.EmployeeID] {
				if err := conn.WriteJSON(msg.Feedback); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[msg.EmployeeID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Push implements services.Notifier. Delivery is best effort; an employee
// with no open connection simply misses the live push and sees the
// notification on their next fetch.
func (h *NotifyHub) Push(recipientID string, f *entity.Feedback) {
	h.push <- pushMessage{EmployeeID: recipientID, Feedback: f}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/notifications. The employee id comes from the JWT the
// auth middleware already verified, never from the client.
func (h *NotifyHub) HandleWebSocket(c *gin.Context) {
	employeeID := utils.CurrentEmployeeID(c)
	if employeeID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{Conn: conn, EmployeeID: employeeID}
	h.register <- sub

	go h.keepAlive(sub)
}

// keepAlive drains client frames until the connection closes. Clients
// only receive on this socket; anything they send is discarded.
func (h *NotifyHub) keepAlive(sub subscription) {
	defer func() { h.unregister <- sub }()

	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
