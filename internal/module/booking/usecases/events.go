package usecases

import (
	"context"
	"time"

	"tour-backoffice/internal/module/booking/models/request"
	"tour-backoffice/internal/module/booking/models/response"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	TopicBookingCreated  = "booking_created"
	TopicBookingUpdated  = "booking_updated"
	TopicPaymentRecorded = "payment_recorded"
	TopicPoisonedQueue   = "poisoned_queue"
)

// publishEvent announces a write that already succeeded. A failed publish
// is logged and never reaches the caller.
func (u *usecase) publishEvent(ctx context.Context, topic string, payload any) {
	if u.publish == nil {
		return
	}

	id := watermill.NewUUID()
	body, err := json.Marshal(response.BookingEvent{
		EventID:    id,
		EventType:  topic,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
		Payload:    payload,
	})
	if err != nil {
		u.log.Error(ctx, "error marshal event", err, zap.String("topic", topic))
		return
	}

	msg := message.NewMessage(id, body)
	msg.SetContext(ctx)
	if err := u.publish.Publish(topic, msg); err != nil {
		u.log.Error(ctx, "error publish event", err, zap.String("topic", topic))
	}
}

// ConsumeBookingEvent writes the audit line for one consumed event.
func (u *usecase) ConsumeBookingEvent(ctx context.Context, event *request.BookingEvent) error {
	u.log.Info(ctx, "booking event received",
		zap.String("event_id", event.EventID),
		zap.String("event_type", event.EventType),
		zap.String("occurred_at", event.OccurredAt),
		zap.ByteString("payload", event.Payload),
	)
	return nil
}
