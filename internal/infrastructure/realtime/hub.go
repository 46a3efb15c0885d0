// Package realtime implementa el canal de eventos en vivo del tablero.
// Cada tenant tiene su propia sala: un evento job_update solo llega a las
// conexiones del mismo tenant, nunca a las de otro.
package realtime

import (
	"context"
	"sync"

	"github.com/tu-usuario/fieldops-pro/internal/application/dto"
	"github.com/tu-usuario/fieldops-pro/internal/application/ports"
	"github.com/tu-usuario/fieldops-pro/pkg/logger"
)

// Tipos de mensaje del canal.
const (
	MessageTypeJobUpdate = "job_update"
	MessageTypePing      = "ping"
	MessageTypePong      = "pong"
)

// Message es el sobre JSON que viaja por el websocket.
type Message struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// tenantMessage es un mensaje dirigido a la sala de un tenant.
type tenantMessage struct {
	tenantID string
	msg      Message
}

var _ ports.JobEventPublisher = (*Hub)(nil)

// Hub mantiene las conexiones activas agrupadas por tenant y reparte los broadcasts.
type Hub struct {
	rooms      map[string]map[*Client]bool // tenantID -> clientes
	broadcast  chan tenantMessage
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
	log        *logger.Logger
}

// NewHub construye el hub.
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		broadcast:  make(chan tenantMessage, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		log:        log,
	}
}

// PublishJobUpdate encola un evento job_update para la sala del tenant.
// No bloquea: si el buffer está lleno el evento se descarta (el tablero
// se reconcilia en la siguiente carga, no hay entrega garantizada).
func (h *Hub) PublishJobUpdate(tenantID string, job *dto.JobResponse) {
	select {
	case h.broadcast <- tenantMessage{tenantID: tenantID, msg: Message{Type: MessageTypeJobUpdate, Data: job}}:
	default:
		h.log.Warn().Str("tenant_id", tenantID).Msg("buffer de broadcast lleno, evento descartado")
	}
}

// Run procesa registros, bajas y broadcasts hasta que el contexto se cancele.
// Al salir cierra todas las conexiones registradas.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			h.log.Info().Msg("hub realtime detenido")
			return

		case client := <-h.register:
			h.mu.Lock()
			room, ok := h.rooms[client.tenantID]
			if !ok {
				room = make(map[*Client]bool)
				h.rooms[client.tenantID] = room
			}
			room[client] = true
			total := len(room)
			h.mu.Unlock()
			h.log.Info().Str("tenant_id", client.tenantID).Int("clients", total).Msg("cliente websocket conectado")

		case client := <-h.unregister:
			h.mu.Lock()
			if room, ok := h.rooms[client.tenantID]; ok {
				if _, exists := room[client]; exists {
					delete(room, client)
					close(client.send)
				}
				if len(room) == 0 {
					delete(h.rooms, client.tenantID)
				}
			}
			h.mu.Unlock()
			h.log.Info().Str("tenant_id", client.tenantID).Msg("cliente websocket desconectado")

		case tm := <-h.broadcast:
			h.mu.RLock()
			for client := range h.rooms[tm.tenantID] {
				select {
				case client.send <- tm.msg:
				default:
					// cliente lento: se descarta su mensaje, la conexión sigue viva
					h.log.Warn().Str("tenant_id", tm.tenantID).Msg("cola de cliente llena, mensaje descartado")
				}
			}
			h.mu.RUnlock()
		}
	}
}

// ClientCount devuelve cuántas conexiones tiene la sala de un tenant.
func (h *Hub) ClientCount(tenantID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[tenantID])
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for tenantID, room := range h.rooms {
		for client := range room {
			close(client.send)
		}
		delete(h.rooms, tenantID)
	}
}
