// Package realtime entrega eventos en vivo a los clientes conectados, agrupados
// por sala de restaurante. Con Redis configurado los eventos viajan por pub/sub
// para que todas las instancias los reciban.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ArjunTewari/plexora/internal/application/ports"
)

var _ ports.EventPublisher = (*Hub)(nil)

// subscriberBuffer eventos pendientes por cliente antes de descartar.
const subscriberBuffer = 16

// RoomFor sala de un restaurante.
func RoomFor(restaurantID string) string { return "restaurant-" + restaurantID }

// Subscriber cliente suscrito a una sala.
type Subscriber struct {
	room string
	ch   chan []byte
}

// Events canal de mensajes JSON para el cliente. Se cierra al desuscribir.
func (s *Subscriber) Events() <-chan []byte { return s.ch }

// Room sala del suscriptor.
func (s *Subscriber) Room() string { return s.room }

// envelope formato del mensaje en el canal Redis.
type envelope struct {
	Room string          `json:"room"`
	Data json.RawMessage `json:"data"`
}

// Hub registro de salas y suscriptores.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Subscriber]struct{}
	log   zerolog.Logger

	redis   redis.UniversalClient
	channel string
	pubsub  *redis.PubSub
}

// Option configura el Hub.
type Option func(*Hub)

// WithRedis activa el fan-out entre instancias vía Redis pub/sub.
func WithRedis(client redis.UniversalClient, channel string) Option {
	return func(h *Hub) {
		h.redis = client
		h.channel = channel
	}
}

// NewHub crea el hub. Sin WithRedis la entrega es solo en proceso.
func NewHub(log zerolog.Logger, opts ...Option) *Hub {
	h := &Hub{
		rooms: make(map[string]map[*Subscriber]struct{}),
		log:   log,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Start se suscribe al canal Redis y reenvía cada mensaje a los suscriptores locales.
// Sin Redis no hace nada. Retorna cuando la suscripción está confirmada.
func (h *Hub) Start(ctx context.Context) error {
	if h.redis == nil {
		return nil
	}
	ps := h.redis.Subscribe(ctx, h.channel)
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return fmt.Errorf("realtime: suscribir canal %s: %w", h.channel, err)
	}
	h.pubsub = ps

	go func() {
		for msg := range ps.Channel() {
			var env envelope
			if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
				h.log.Warn().Err(err).Msg("realtime: mensaje Redis inválido")
				continue
			}
			h.deliver(env.Room, env.Data)
		}
	}()
	h.log.Info().Str("channel", h.channel).Msg("realtime: fan-out Redis activo")
	return nil
}

// Close libera la suscripción Redis.
func (h *Hub) Close() error {
	if h.pubsub != nil {
		return h.pubsub.Close()
	}
	return nil
}

// Subscribe une un cliente a la sala del restaurante.
func (h *Hub) Subscribe(restaurantID string) *Subscriber {
	s := &Subscriber{room: RoomFor(restaurantID), ch: make(chan []byte, subscriberBuffer)}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[s.room] == nil {
		h.rooms[s.room] = make(map[*Subscriber]struct{})
	}
	h.rooms[s.room][s] = struct{}{}
	return s
}

// Unsubscribe saca al cliente de su sala y cierra su canal. Idempotente.
func (h *Hub) Unsubscribe(s *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	members, ok := h.rooms[s.room]
	if !ok {
		return
	}
	if _, ok := members[s]; !ok {
		return
	}
	delete(members, s)
	close(s.ch)
	if len(members) == 0 {
		delete(h.rooms, s.room)
	}
}

// Count suscriptores de la sala del restaurante.
func (h *Hub) Count(restaurantID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[RoomFor(restaurantID)])
}

// Publish envía el evento a la sala de ev.RestaurantID.
func (h *Hub) Publish(ctx context.Context, ev ports.Event) error {
	if ev.RestaurantID == "" {
		return fmt.Errorf("realtime: evento %s sin restaurante", ev.Name)
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("realtime: serializar evento: %w", err)
	}
	room := RoomFor(ev.RestaurantID)

	if h.redis == nil {
		h.deliver(room, data)
		return nil
	}
	payload, err := json.Marshal(envelope{Room: room, Data: data})
	if err != nil {
		return fmt.Errorf("realtime: serializar sobre: %w", err)
	}
	if err := h.redis.Publish(ctx, h.channel, payload).Err(); err != nil {
		return fmt.Errorf("realtime: publicar en Redis: %w", err)
	}
	return nil
}

func (h *Hub) deliver(room string, data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for s := range h.rooms[room] {
		select {
		case s.ch <- data:
		default:
			h.log.Warn().Str("room", room).Msg("realtime: cliente lento, evento descartado")
		}
	}
}
