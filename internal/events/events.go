// Package events fans domain happenings out to Kafka so kitchen displays and
// reception dashboards can react in real time. Publishing is fire-and-forget:
// a broker outage never fails the request that triggered the event.
package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"time"

	"hotelier/infras/kafka"

	"github.com/rs/zerolog/log"
)

const publishTimeout = 5 * time.Second

type BookingCreated struct {
	BookingID  string    `json:"booking_id"`
	RoomID     string    `json:"room_id"`
	RoomNumber string    `json:"room_number"`
	GuestName  string    `json:"guest_name"`
	CheckIn    time.Time `json:"check_in"`
}

type OrderCreated struct {
	OrderID   string  `json:"order_id"`
	BookingID string  `json:"booking_id"`
	Total     float64 `json:"total"`
	Items     int     `json:"items"`
}

type OrderStatusChanged struct {
	OrderID   string `json:"order_id"`
	BookingID string `json:"booking_id"`
	Status    string `json:"status"`
}

type HallBookingCreated struct {
	HallBookingID string    `json:"hall_booking_id"`
	GuestID       string    `json:"guest_id"`
	EventDate     time.Time `json:"event_date"`
	Session       string    `json:"session"`
}

type Publisher interface {
	BookingCreated(ctx context.Context, topic string, payload BookingCreated)
	OrderCreated(ctx context.Context, topic string, payload OrderCreated)
	OrderStatusChanged(ctx context.Context, topic string, payload OrderStatusChanged)
	HallBookingCreated(ctx context.Context, topic string, payload HallBookingCreated)
}

type publisherImpl struct {
	client kafka.Client
}

func New(client kafka.Client) Publisher {
	return &publisherImpl{client: client}
}

func (p *publisherImpl) BookingCreated(ctx context.Context, topic string, payload BookingCreated) {
	p.publish(ctx, topic, payload.BookingID, payload)
}

func (p *publisherImpl) OrderCreated(ctx context.Context, topic string, payload OrderCreated) {
	p.publish(ctx, topic, payload.OrderID, payload)
}

func (p *publisherImpl) OrderStatusChanged(ctx context.Context, topic string, payload OrderStatusChanged) {
	p.publish(ctx, topic, payload.OrderID, payload)
}

func (p *publisherImpl) HallBookingCreated(ctx context.Context, topic string, payload HallBookingCreated) {
	p.publish(ctx, topic, payload.HallBookingID, payload)
}

// publish serializes and ships the payload on a detached context so the
// caller's request can complete, or be cancelled, independently.
func (p *publisherImpl) publish(ctx context.Context, topic, key string, payload any) {
	value, err := json.Marshal(payload)
	if err != nil {
		log.Warn().Err(err).Str("topic", topic).Msg("failed to marshal event payload")

		return
	}

	detached := context.WithoutCancel(ctx)

	go func() {
		sendCtx, cancel := context.WithTimeout(detached, publishTimeout)
		defer cancel()

		if err := p.client.SendMessages(sendCtx, topic, kafka.Message{Key: key, Value: value}); err != nil {
			log.Warn().Err(err).Str("topic", topic).Str("key", key).Msg("failed to publish event")
		}
	}()
}
