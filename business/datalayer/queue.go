package datalayer

import (
	"sync"

	"myStore/pkg/metrics"
)

// Queue is the dataLayer: an append-only sequence of analytics records drained
// by an external consumer. The storefront services only ever append, they
// never read records back. Requests run concurrently, so appends are guarded
// by a mutex.
type Queue struct {
	mu      sync.Mutex
	records []any
}

func NewQueue() *Queue {
	return &Queue{}
}

// Publish appends one record. The first use starts from an empty sequence.
func (q *Queue) Publish(record any) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.records = append(q.records, record)

	metrics.DataLayerPublishedTotal.Inc()
	metrics.DataLayerQueueDepth.Set(float64(len(q.records)))
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.records)
}

// DrainUpTo removes and returns at most n records in publish order. Only the
// consumer side (the Kafka forwarder, the debug endpoint) calls this.
func (q *Queue) DrainUpTo(n int) []any {
	q.mu.Lock()
	defer q.mu.Unlock()

	if n <= 0 || len(q.records) == 0 {
		return nil
	}
	if n > len(q.records) {
		n = len(q.records)
	}

	drained := make([]any, n)
	copy(drained, q.records[:n])
	q.records = q.records[n:]

	metrics.DataLayerQueueDepth.Set(float64(len(q.records)))

	return drained
}
