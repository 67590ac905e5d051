package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextBuffer_New(t *testing.T) {
	assert.Equal(t, "", NewTextBuffer().Text())
	assert.Equal(t, 0, NewTextBuffer().Len())

	tb := NewTextBufferFromString("abc")
	assert.Equal(t, "abc", tb.Text())
	assert.Equal(t, 3, tb.Len())
}

func TestTextBuffer_Insert(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		text    string
		pos     int
		want    string
	}{
		{"into empty", "", "Hello", 0, "Hello"},
		{"at start", "world", "Hello, ", 0, "Hello, world"},
		{"in middle", "Helo", "l", 2, "Hello"},
		{"at end", "Sir!", "?", 4, "Sir!?"},
		{"empty text", "abc", "", 1, "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := NewTextBufferFromString(tt.initial)
			_, err := tb.Insert(tt.text, tt.pos)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tb.Text())
		})
	}
}

func TestTextBuffer_InsertOutOfRange(t *testing.T) {
	tb := NewTextBufferFromString("abc")

	_, err := tb.Insert("x", 4)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = tb.Insert("x", -1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, "abc", tb.Text())
}

func TestTextBuffer_Delete(t *testing.T) {
	tb := NewTextBufferFromString("Hello, Sir!")

	_, err := tb.Delete(0, 7)
	require.NoError(t, err)
	assert.Equal(t, "Sir!", tb.Text())

	_, err = tb.Delete(4, 0)
	require.NoError(t, err)
	assert.Equal(t, "Sir!", tb.Text())
}

func TestTextBuffer_DeleteOutOfRange(t *testing.T) {
	tb := NewTextBufferFromString("abc")

	for _, r := range [][2]int{{2, 2}, {4, 0}, {0, -1}, {-1, 1}} {
		_, err := tb.Delete(r[0], r[1])
		assert.ErrorIs(t, err, ErrOutOfRange, "delete(%d,%d)", r[0], r[1])
	}
	assert.Equal(t, "abc", tb.Text())
}

func TestTextBuffer_Replace(t *testing.T) {
	tb := NewTextBufferFromString("Hello, world")

	info, err := tb.Replace(7, 5, "Sir!")
	require.NoError(t, err)
	assert.Equal(t, "Hello, Sir!", tb.Text())
	assert.Equal(t, uint32(7), info.StartIndex)
	assert.Equal(t, uint32(12), info.OldEndIndex)
	assert.Equal(t, uint32(11), info.NewEndIndex)
}

func TestTextBuffer_Slice(t *testing.T) {
	tb := NewTextBufferFromString("Hello, world")

	s, err := tb.Slice(7, 5)
	require.NoError(t, err)
	assert.Equal(t, "world", s)

	_, err = tb.Slice(7, 6)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestTextBuffer_TextIsCopy(t *testing.T) {
	tb := NewTextBufferFromString("abc")
	before := tb.Text()

	_, err := tb.Replace(0, 1, "z")
	require.NoError(t, err)
	assert.Equal(t, "abc", before)
	assert.Equal(t, "zbc", tb.Text())
}

func TestTextBuffer_Identify(t *testing.T) {
	var id Identifier = NewTextBuffer()
	assert.Equal(t, IdentifyBuffer, id.Identify())
}
