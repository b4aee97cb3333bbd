package publisher

import (
	"context"
	"encoding/json"
	"myStore/domain"
	"myStore/pkg/logger"
	"myStore/pkg/metrics"
	"time"

	"github.com/segmentio/kafka-go"
)

// RecordSource is the consumer-side view of the dataLayer queue.
type RecordSource interface {
	DrainUpTo(n int) []any
}

// DataLayerForwarder plays the external analytics consumer: it drains the
// dataLayer on a tick and ships records to the analytics ingestion topic.
// Delivery is fire-and-forget, the tag-manager contract has no confirmation
// and no retry.
type DataLayerForwarder struct {
	tick      time.Duration
	batchSize int
	source    RecordSource
	writer    *kafka.Writer
}

func NewDataLayerForwarder(source RecordSource, topic string, brokers ...string) *DataLayerForwarder {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &DataLayerForwarder{time.Second, 100, source, w}
}

func (f *DataLayerForwarder) Run(ctx context.Context) {
	ticker := time.NewTicker(f.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			f.forwardBatch(ctx)
		case <-ctx.Done():
			if err := f.writer.Close(); err != nil {
				logger.Error("failed to close kafka writer", err)
			}
			return
		}
	}
}

func (f *DataLayerForwarder) forwardBatch(ctx context.Context) {
	records := f.source.DrainUpTo(f.batchSize)
	if len(records) == 0 {
		return
	}

	messages := make([]kafka.Message, 0, len(records))
	for _, record := range records {
		payload, err := json.Marshal(record)
		if err != nil {
			logger.Error("failed to marshal dataLayer record", err)
			continue
		}

		msg := kafka.Message{Value: payload}
		if name := eventName(record); name != "" {
			msg.Headers = []kafka.Header{
				{Key: "event_type", Value: []byte(name)},
			}
		}
		messages = append(messages, msg)
	}

	if len(messages) == 0 {
		return
	}

	if err := f.writer.WriteMessages(ctx, messages...); err != nil {
		logger.Error("failed to ship dataLayer records", err, "count", len(messages))
		return
	}

	metrics.DataLayerForwardedTotal.Add(float64(len(messages)))
}

// eventName pulls the discriminating event field where a record has one. The
// identity bootstrap record deliberately has none.
func eventName(record any) string {
	switch r := record.(type) {
	case domain.CartEvent:
		return r.Event
	case domain.WishlistEvent:
		return r.Event
	case domain.LoginEvent:
		return r.Event
	case domain.LogoutEvent:
		return r.Event
	default:
		return ""
	}
}
