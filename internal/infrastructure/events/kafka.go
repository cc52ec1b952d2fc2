package events

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"admission-backend/internal/domain/audit"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher streams committed audit entries to a topic keyed by student.
type KafkaPublisher struct {
	writer messageWriter
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			WriteTimeout: 10 * time.Second,
		},
	}
}

// ParseBrokers splits a comma separated broker list, dropping blanks.
func ParseBrokers(s string) []string {
	var out []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

type auditMessage struct {
	ID          string    `json:"id"`
	Action      string    `json:"action"`
	PerformedBy string    `json:"performedBy"`
	StudentID   string    `json:"studentId"`
	CreatedAt   time.Time `json:"createdAt"`
}

func encode(e audit.Entry) (kafka.Message, error) {
	v, err := json.Marshal(auditMessage(e))
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{Key: []byte(e.StudentID), Value: v, Time: e.CreatedAt}, nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, e audit.Entry) error {
	if p == nil || p.writer == nil {
		return nil
	}
	msg, err := encode(e)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return p.writer.WriteMessages(ctx, msg)
}

func (p *KafkaPublisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
