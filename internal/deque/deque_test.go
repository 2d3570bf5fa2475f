package deque

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElementsComeOutInPushOrder(t *testing.T) {
	d := New[int]()
	for i := 0; i < 50; i++ {
		d.PushBack(i)
	}
	for i := 0; i < 50; i++ {
		element, ok := d.PopFront()
		assert.True(t, ok)
		assert.Equal(t, i, element)
	}
	_, ok := d.PopFront()
	assert.False(t, ok)
}

func TestPopFrontOnEmptyReturnsZeroValue(t *testing.T) {
	d := New[string]()
	element, ok := d.PopFront()
	assert.False(t, ok)
	assert.Equal(t, "", element)
	assert.Equal(t, 0, d.Len())
}

func TestLenTracksPushAndPop(t *testing.T) {
	d := New[int]()
	assert.Equal(t, 0, d.Len())
	d.PushBack(1)
	d.PushBack(2)
	assert.Equal(t, 2, d.Len())
	d.PopFront()
	assert.Equal(t, 1, d.Len())
	d.PopFront()
	assert.Equal(t, 0, d.Len())
}

func TestOrderSurvivesWrapAroundAndGrowth(t *testing.T) {
	d := New[int]()
	// Interleave pushes and pops so head walks around the ring before the
	// buffer has to grow past minCapacity.
	for i := 0; i < 10; i++ {
		d.PushBack(i)
	}
	for i := 0; i < 10; i++ {
		element, ok := d.PopFront()
		assert.True(t, ok)
		assert.Equal(t, i, element)
	}
	for i := 10; i < 100; i++ {
		d.PushBack(i)
	}
	assert.Equal(t, 90, d.Len())
	for i := 10; i < 100; i++ {
		element, ok := d.PopFront()
		assert.True(t, ok)
		assert.Equal(t, i, element)
	}
}

func TestBufferShrinksAfterDraining(t *testing.T) {
	d := New[int]()
	for i := 0; i < 200; i++ {
		d.PushBack(i)
	}
	grown := len(d.buf)
	assert.GreaterOrEqual(t, grown, 200)

	for i := 0; i < 195; i++ {
		element, ok := d.PopFront()
		assert.True(t, ok)
		assert.Equal(t, i, element)
	}
	assert.Less(t, len(d.buf), grown)
	for i := 195; i < 200; i++ {
		element, ok := d.PopFront()
		assert.True(t, ok)
		assert.Equal(t, i, element)
	}
}

func TestPoppedSlotHoldsNoResidualReference(t *testing.T) {
	d := New[*int]()
	value := 42
	d.PushBack(&value)
	element, ok := d.PopFront()
	assert.True(t, ok)
	assert.Equal(t, &value, element)
	assert.Nil(t, d.buf[0])
}
