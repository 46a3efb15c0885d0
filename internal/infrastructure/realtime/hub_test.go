package realtime

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/fieldops-pro/internal/application/dto"
	"github.com/tu-usuario/fieldops-pro/pkg/logger"
)

func newTestHub(t *testing.T) (*Hub, context.CancelFunc) {
	t.Helper()
	hub := NewHub(logger.New(logger.Config{Env: "development", Level: "error"}))
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	return hub, cancel
}

// registra un cliente sin conexión real: solo nos interesa la cola send.
func registerTestClient(hub *Hub, tenantID string) *Client {
	c := &Client{tenantID: tenantID, hub: hub, send: make(chan Message, 8)}
	hub.register <- c
	return c
}

func waitForCount(t *testing.T, hub *Hub, tenantID string, want int) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for hub.ClientCount(tenantID) != want {
		select {
		case <-deadline:
			t.Fatalf("timeout esperando %d clientes del tenant %s", want, tenantID)
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestPublishJobUpdateSoloLlegaAlMismoTenant(t *testing.T) {
	hub, cancel := newTestHub(t)
	defer cancel()

	a1 := registerTestClient(hub, "tenant-a")
	a2 := registerTestClient(hub, "tenant-a")
	b1 := registerTestClient(hub, "tenant-b")
	waitForCount(t, hub, "tenant-a", 2)
	waitForCount(t, hub, "tenant-b", 1)

	job := &dto.JobResponse{ID: "job-1", Status: "Scheduled"}
	hub.PublishJobUpdate("tenant-a", job)

	for _, c := range []*Client{a1, a2} {
		select {
		case msg := <-c.send:
			assert.Equal(t, MessageTypeJobUpdate, msg.Type)
			got, ok := msg.Data.(*dto.JobResponse)
			require.True(t, ok)
			assert.Equal(t, "job-1", got.ID)
		case <-time.After(2 * time.Second):
			t.Fatal("el cliente del tenant-a no recibió el evento")
		}
	}

	select {
	case msg := <-b1.send:
		t.Fatalf("el cliente del tenant-b recibió un evento ajeno: %+v", msg)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestUnregisterCierraLaCola(t *testing.T) {
	hub, cancel := newTestHub(t)
	defer cancel()

	c := registerTestClient(hub, "tenant-a")
	waitForCount(t, hub, "tenant-a", 1)

	hub.unregister <- c
	waitForCount(t, hub, "tenant-a", 0)

	select {
	case _, open := <-c.send:
		assert.False(t, open, "la cola debe quedar cerrada tras el unregister")
	case <-time.After(2 * time.Second):
		t.Fatal("timeout esperando el cierre de la cola")
	}
}

func TestRunCancelandoContextoCierraTodo(t *testing.T) {
	hub, cancel := newTestHub(t)

	c := registerTestClient(hub, "tenant-a")
	waitForCount(t, hub, "tenant-a", 1)

	cancel()

	select {
	case _, open := <-c.send:
		assert.False(t, open)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout esperando el apagado del hub")
	}
}
