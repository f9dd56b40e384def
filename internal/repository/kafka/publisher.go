package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/iamasit07/4-in-a-row/minimax/internal/service/tournament"
	"github.com/segmentio/kafka-go"
)

const EventTournamentFinished = "tournament_finished"

// MessageWriter is the part of kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// SummaryEvent is the message body sent for every finished tournament.
type SummaryEvent struct {
	EventType string             `json:"event_type"`
	EventID   string             `json:"event_id"`
	Timestamp time.Time          `json:"timestamp"`
	WinRate   float64            `json:"win_rate"`
	Summary   tournament.Summary `json:"summary"`
}

type Publisher struct {
	writer MessageWriter
	topic  string
}

func NewPublisher(brokers []string, topic string) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
		MaxAttempts:  3,
		ErrorLogger:  kafka.LoggerFunc(log.Printf),
	}
	log.Printf("[KAFKA] Publishing summaries to %s on %v", topic, brokers)
	return NewPublisherWithWriter(writer, topic)
}

func NewPublisherWithWriter(writer MessageWriter, topic string) *Publisher {
	return &Publisher{writer: writer, topic: topic}
}

func (p *Publisher) Publish(ctx context.Context, summary tournament.Summary) error {
	event := SummaryEvent{
		EventType: EventTournamentFinished,
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		WinRate:   summary.WinRate(),
		Summary:   summary,
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %v", err)
	}

	// keyed by run so every opponent of one run lands on the same partition
	msg := kafka.Message{
		Key:   []byte(summary.RunID),
		Value: data,
		Time:  event.Timestamp,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write to %s: %v", p.topic, err)
	}
	log.Printf("[KAFKA] Published %s for %s", event.EventID, summary.Opponent)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
