package datalayer

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublish_PreservesOrder(t *testing.T) {
	sut := NewQueue()

	sut.Publish("first")
	sut.Publish("second")
	sut.Publish("third")

	require.Equal(t, 3, sut.Len())
	drained := sut.DrainUpTo(10)
	assert.Equal(t, []any{"first", "second", "third"}, drained)
	assert.Equal(t, 0, sut.Len())
}

func TestDrainUpTo_PartialDrain(t *testing.T) {
	sut := NewQueue()
	for i := 0; i < 5; i++ {
		sut.Publish(i)
	}

	drained := sut.DrainUpTo(2)
	assert.Equal(t, []any{0, 1}, drained)
	assert.Equal(t, 3, sut.Len())

	drained = sut.DrainUpTo(2)
	assert.Equal(t, []any{2, 3}, drained)

	drained = sut.DrainUpTo(2)
	assert.Equal(t, []any{4}, drained)
	assert.Equal(t, 0, sut.Len())
}

func TestDrainUpTo_EmptyQueue(t *testing.T) {
	sut := NewQueue()

	assert.Nil(t, sut.DrainUpTo(10))
	assert.Nil(t, sut.DrainUpTo(0))
	assert.Equal(t, 0, sut.Len())
}

func TestPublish_ConcurrentAppendsAllLand(t *testing.T) {
	sut := NewQueue()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			sut.Publish(n)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, sut.Len())
	assert.Len(t, sut.DrainUpTo(100), 50)
}
