package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameQueueRunsRequestsOnce(t *testing.T) {
	q := NewFrameQueue()
	calls := 0
	q.RequestFrame(func() { calls++ })

	assert.Equal(t, 1, q.Advance())
	assert.Equal(t, 0, q.Advance())
	assert.Equal(t, 1, calls)
}

func TestFrameQueueDefersRequestsMadeDuringAdvance(t *testing.T) {
	q := NewFrameQueue()
	var order []string
	q.RequestFrame(func() {
		order = append(order, "first")
		q.RequestFrame(func() { order = append(order, "second") })
	})

	q.Advance()
	assert.Equal(t, []string{"first"}, order)
	assert.Equal(t, 1, q.Pending())

	q.Advance()
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestFrameQueueCancel(t *testing.T) {
	q := NewFrameQueue()
	fired := false
	id := q.RequestFrame(func() { fired = true })

	q.CancelFrame(id)
	assert.Equal(t, 0, q.Pending())
	assert.Equal(t, 0, q.Advance())
	assert.False(t, fired)
}

func TestFrameQueueCancelAfterFireIsNoop(t *testing.T) {
	q := NewFrameQueue()
	id := q.RequestFrame(func() {})
	q.Advance()

	other := 0
	q.RequestFrame(func() { other++ })
	assert.NotPanics(t, func() {
		q.CancelFrame(id)
		q.CancelFrame(0)
		q.CancelFrame(9999)
	})
	q.Advance()
	assert.Equal(t, 1, other)
}

func TestFrameQueueCancelWithinSameFrame(t *testing.T) {
	q := NewFrameQueue()
	var second FrameID
	secondFired := false

	q.RequestFrame(func() { q.CancelFrame(second) })
	second = q.RequestFrame(func() { secondFired = true })

	assert.Equal(t, 1, q.Advance())
	assert.False(t, secondFired)
}

func TestFrameIDsAreNeverZero(t *testing.T) {
	q := NewFrameQueue()
	for i := 0; i < 5; i++ {
		assert.NotZero(t, q.RequestFrame(func() {}))
	}
}
