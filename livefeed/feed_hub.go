package livefeed

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/saveursmaghreb/storefront/models"
	"github.com/saveursmaghreb/storefront/utils"
)

// Event types
const (
	EventOrderPaid = "order_paid"
	EventHello     = "hello"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// FeedHub holds the back-office websocket clients watching incoming orders.
type FeedHub struct {
	clients map[*websocket.Conn]bool
	mutex   sync.Mutex
}

var feedHub = FeedHub{
	clients: make(map[*websocket.Conn]bool),
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// RegisterClient adds a connection to the set.
func RegisterClient(conn *websocket.Conn) {
	feedHub.mutex.Lock()
	defer feedHub.mutex.Unlock()
	feedHub.clients[conn] = true
}

// UnregisterClient drops a connection.
func UnregisterClient(conn *websocket.Conn) {
	feedHub.mutex.Lock()
	defer feedHub.mutex.Unlock()
	delete(feedHub.clients, conn)
	conn.Close()
}

// BroadcastOrderPaid pushes a freshly persisted order to every watcher.
func BroadcastOrderPaid(order models.Order) {
	broadcast(Message{
		Event: EventOrderPaid,
		Data:  order,
	})
}

func broadcast(msg Message) {
	feedHub.mutex.Lock()
	defer feedHub.mutex.Unlock()

	for conn := range feedHub.clients {
		if err := conn.WriteJSON(msg); err != nil {
			utils.ErrorLogger.Printf("Error broadcasting to feed client: %v", err)
			delete(feedHub.clients, conn)
			conn.Close()
		}
	}
}

// Handler upgrades the connection and keeps it registered until the client
// goes away.
func Handler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("Error upgrading feed connection: %v", err)
		return
	}

	RegisterClient(conn)
	defer UnregisterClient(conn)

	conn.WriteJSON(Message{Event: EventHello, Data: "connected"})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
