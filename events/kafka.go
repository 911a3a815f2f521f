package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"hotel-booking/models"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer messageWriter
	log    *slog.Logger
}

func NewKafkaPublisher(brokers []string, topic string, log *slog.Logger) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  3,
		WriteTimeout: 5 * time.Second,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			log.Error(fmt.Sprintf(msg, args...), "component", "kafka")
		}),
	}
	return &KafkaPublisher{writer: w, log: log}, nil
}

// PublishBookingCreated keys the message by room so that events of one room
// stay ordered within a partition.
func (p *KafkaPublisher) PublishBookingCreated(ctx context.Context, booking models.Booking) error {
	body, err := json.Marshal(NewBookingCreated(booking))
	if err != nil {
		return fmt.Errorf("marshal booking event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(booking.RoomID), 10)),
		Value: body,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("booking.created")},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write booking event: %w", err)
	}
	p.log.Debug("booking event published", "booking_id", booking.ID, "room_id", booking.RoomID)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
