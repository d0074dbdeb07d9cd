package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"freight/internal/entities"
)

// statusChangedEvent - wire-формат уведомления о смене статуса.
type statusChangedEvent struct {
	EntityType string `json:"entity_type"`
	EntityID   int64  `json:"entity_id"`
	Line       string `json:"line"`
	OldStatus  string `json:"old_status"`
	NewStatus  string `json:"new_status"`
}

type Gateway struct {
	producer producer
	topic    string
}

func New(producer producer, topic string) *Gateway {
	return &Gateway{
		producer: producer,
		topic:    topic,
	}
}

// Notify публикует событие смены статуса. Ключ сообщения - идентификатор
// сущности, чтобы события одной отправки попадали в одну партицию.
func (g *Gateway) Notify(ctx context.Context, notification entities.StatusNotification) error {
	start := time.Now()

	event := statusChangedEvent{
		EntityType: notification.EntityType,
		EntityID:   notification.EntityID,
		Line:       notification.Line.String(),
		OldStatus:  notification.OldStatus,
		NewStatus:  notification.NewStatus,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("gateway notification, marshal event: %w", err)
	}

	msg := sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(notification.EntityID, 10)),
		Value: sarama.ByteEncoder(payload),
	}

	_, _, err = g.producer.SendMessage(&msg)

	result := resultOK
	if err != nil {
		result = resultError
	}
	// Метрики Prometheus
	NotificationPublishDuration.WithLabelValues(g.topic, result).Observe(time.Since(start).Seconds())
	NotificationsPublishedTotal.WithLabelValues(g.topic, result).Inc()

	if err != nil {
		return fmt.Errorf("gateway notification, send message: %w", err)
	}
	return nil
}
