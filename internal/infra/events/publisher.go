package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher публикует события жизненного цикла бронирований в Kafka
type KafkaPublisher struct {
	writer MessageWriter
	topic  string
	log    Logger
}

// NewKafkaWriter создает writer для брокеров
func NewKafkaWriter(brokers []string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
}

// NewKafkaPublisher создает публикатор событий в топик topic
func NewKafkaPublisher(writer MessageWriter, topic string, log Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer: writer,
		topic:  topic,
		log:    log,
	}
}

// Publish отправляет событие, ключ сообщения - сущность, над которой выполнена команда
func (p *KafkaPublisher) Publish(ctx context.Context, event ReservationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	message := kafka.Message{
		Topic: p.topic,
		Key:   []byte(event.Key()),
		Value: data,
		Time:  event.OccurredAt,
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("%w: topic=%s key=%s: %v", ErrPublish, p.topic, event.Key(), err)
	}

	p.log.Info("Published %s event for %s", event.Command, event.Key())
	return nil
}

// Close закрывает writer
func (p *KafkaPublisher) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}

// Noop публикатор-заглушка, когда Kafka отключена в конфигурации
type Noop struct{}

func (Noop) Publish(context.Context, ReservationEvent) error {
	return nil
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
