package pick

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	items := []string{"a", "b", "c"}
	for range 50 {
		got, ok := From(items)
		assert.True(t, ok)
		assert.Contains(t, items, got)
	}

	got, ok := From([]string(nil))
	assert.False(t, ok)
	assert.Equal(t, "", got)
}

func TestRange(t *testing.T) {
	for range 50 {
		got, ok := Range(1, 6)
		assert.True(t, ok)
		assert.GreaterOrEqual(t, got, 1)
		assert.LessOrEqual(t, got, 6)
	}

	got, ok := Range(5, 5)
	assert.True(t, ok)
	assert.Equal(t, 5, got)

	_, ok = Range(3, 1)
	assert.False(t, ok)
}

func TestClip(t *testing.T) {
	assert.Equal(t, 5, Clip(5, 1, 10))
	assert.Equal(t, 1, Clip(-2, 1, 10))
	assert.Equal(t, 10, Clip(99, 1, 10))
	assert.Equal(t, 1.0, Clip(2.5, 0.0, 1.0))
	assert.Equal(t, "b", Clip("a", "b", "d"))
}

func TestClipParsed(t *testing.T) {
	got, err := ClipParsed("5", "1", "10")
	assert.NoError(t, err)
	assert.Equal(t, 5.0, got)

	got, err = ClipParsed("20", "1", "10")
	assert.NoError(t, err)
	assert.Equal(t, 10.0, got)

	_, err = ClipParsed("x", "1", "10")
	assert.ErrorIs(t, err, ErrInvalidBound)

	_, err = ClipParsed("5", "1", "oops")
	assert.ErrorIs(t, err, ErrInvalidBound)

	_, err = ClipParsed("5", "10", "1")
	assert.ErrorIs(t, err, ErrInvalidBound)
}
