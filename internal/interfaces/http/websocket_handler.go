package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/fieldops-pro/internal/application/dto"
	"github.com/tu-usuario/fieldops-pro/internal/infrastructure/realtime"
	"github.com/tu-usuario/fieldops-pro/pkg/jwt"
)

// WebSocketHandlers registra la ruta /ws del canal realtime.
// El browser no puede mandar headers en el handshake websocket, así que el
// token JWT viaja como query param: /ws?token=<jwt>. La conexión queda
// suscrita a la sala de SU tenant: los eventos de otros tenants no llegan.
func WebSocketHandlers(app *fiber.App, hub *realtime.Hub, jwtSecret string) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		token := c.Query("token")
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token requerido"})
		}
		_, tenantID, _, err := jwt.Parse(jwtSecret, token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalTenantID, tenantID)
		return c.Next()
	})

	app.Get("/ws", websocket.New(func(conn *websocket.Conn) {
		tenantID, _ := conn.Locals(LocalTenantID).(string)
		if tenantID == "" {
			_ = conn.Close()
			return
		}
		realtime.Serve(hub, conn, tenantID)
	}))
}
