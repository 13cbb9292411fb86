package service

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"

	"github.com/sarpras/borrowing-service/internal/model"
)

const (
	EventRequestCreated = "request_created"
	EventStatusChanged  = "status_changed"
	EventRequestDeleted = "request_deleted"
)

// Event is the lifecycle record published to Kafka when a borrowing
// request is created, re-statused or deleted.
type Event struct {
	ID        string       `json:"id"`
	Type      string       `json:"type"`
	RequestID int64        `json:"requestId"`
	Actor     string       `json:"actor"`
	Status    model.Status `json:"status,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

type Publisher interface {
	Publish(ev Event) error
}

type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaPublisher(producer sarama.SyncProducer, topic string) *kafkaPublisher {
	return &kafkaPublisher{
		producer: producer,
		topic:    topic,
	}
}

func (p *kafkaPublisher) Publish(ev Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: p.topic, Value: sarama.StringEncoder(data)}
	_, _, err = p.producer.SendMessage(msg)
	return err
}

type nopPublisher struct{}

// NewNopPublisher is used when no brokers are configured.
func NewNopPublisher() *nopPublisher { return &nopPublisher{} }

func (*nopPublisher) Publish(Event) error { return nil }

func newEvent(typ string, requestID int64, actor string, status model.Status) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      typ,
		RequestID: requestID,
		Actor:     actor,
		Status:    status,
		Timestamp: time.Now().UTC(),
	}
}
