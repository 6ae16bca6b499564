package http

import (
	"encoding/json"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/ArjunTewari/plexora/internal/application/ports"
	"github.com/ArjunTewari/plexora/internal/infrastructure/realtime"
)

// EventJoined primer mensaje del canal: confirma la sala del cliente.
const EventJoined = "joined"

// SocketHandler canal en vivo por restaurante.
type SocketHandler struct {
	hub *realtime.Hub
	log zerolog.Logger
}

// NewSocketHandler construye el handler.
func NewSocketHandler(hub *realtime.Hub, log zerolog.Logger) *SocketHandler {
	return &SocketHandler{hub: hub, log: log}
}

// RequireUpgrade rechaza con 426 las peticiones que no son WebSocket.
func (h *SocketHandler) RequireUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Stream une al cliente a la sala de su restaurante y le reenvía los eventos.
func (h *SocketHandler) Stream() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		restaurantID, _ := conn.Locals(LocalRestaurantID).(string)
		sub := h.hub.Subscribe(restaurantID)
		defer h.hub.Unsubscribe(sub)

		log := h.log.With().Str("room", sub.Room()).Logger()
		log.Debug().Msg("cliente conectado")

		joined, _ := json.Marshal(ports.Event{
			Name:         EventJoined,
			RestaurantID: restaurantID,
			Payload:      fiber.Map{"room": sub.Room()},
			At:           time.Now().UTC(),
		})
		if err := conn.WriteMessage(websocket.TextMessage, joined); err != nil {
			return
		}

		// El cliente no envía datos; la lectura solo detecta el cierre.
		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case msg, ok := <-sub.Events():
				if !ok {
					return
				}
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					log.Debug().Err(err).Msg("escritura al cliente falló")
					return
				}
			case <-closed:
				log.Debug().Msg("cliente desconectado")
				return
			}
		}
	})
}
