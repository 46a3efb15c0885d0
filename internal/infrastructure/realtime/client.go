package realtime

import (
	"time"

	"github.com/gofiber/contrib/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 * 1024
)

// Client puentea una conexión websocket con el hub.
type Client struct {
	tenantID string
	hub      *Hub
	conn     *websocket.Conn
	send     chan Message
}

// Serve registra la conexión en la sala del tenant y bombea mensajes hasta
// que la conexión se cierre. Bloquea: llamar desde el handler websocket de Fiber.
func Serve(hub *Hub, conn *websocket.Conn, tenantID string) {
	client := &Client{
		tenantID: tenantID,
		hub:      hub,
		conn:     conn,
		send:     make(chan Message, 64),
	}
	hub.register <- client

	go client.writePump()
	client.readPump()
}

// readPump lee de la conexión solo para detectar cierre y contestar pings del cliente.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}
		if msg.Type == MessageTypePing {
			select {
			case c.send <- Message{Type: MessageTypePong}:
			default:
			}
		}
	}
}

// writePump envía los mensajes de la cola y pings periódicos de keepalive.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// el hub cerró la cola
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
