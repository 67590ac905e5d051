package types

import (
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/stretchr/testify/assert"
)

func TestPointAt(t *testing.T) {
	text := []byte("ab\ncde\nf")

	tests := []struct {
		offset int
		want   sitter.Point
	}{
		{0, sitter.Point{Row: 0, Column: 0}},
		{2, sitter.Point{Row: 0, Column: 2}},
		{3, sitter.Point{Row: 1, Column: 0}},
		{5, sitter.Point{Row: 1, Column: 2}},
		{8, sitter.Point{Row: 2, Column: 1}},
		{100, sitter.Point{Row: 2, Column: 1}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PointAt(text, tt.offset), "offset %d", tt.offset)
	}
}

func TestNewEditInfo_Insert(t *testing.T) {
	info := NewEditInfo([]byte("hello"), 5, 0, []byte(" big\nworld"))

	assert.Equal(t, uint32(5), info.StartIndex)
	assert.Equal(t, uint32(5), info.OldEndIndex)
	assert.Equal(t, uint32(15), info.NewEndIndex)
	assert.Equal(t, sitter.Point{Row: 0, Column: 5}, info.StartPosition)
	assert.Equal(t, sitter.Point{Row: 0, Column: 5}, info.OldEndPosition)
	assert.Equal(t, sitter.Point{Row: 1, Column: 5}, info.NewEndPosition)
	assert.False(t, info.IsEmpty())
}

func TestNewEditInfo_Replace(t *testing.T) {
	info := NewEditInfo([]byte("Hello, world"), 7, 5, []byte("Sir!"))

	assert.Equal(t, uint32(7), info.StartIndex)
	assert.Equal(t, uint32(12), info.OldEndIndex)
	assert.Equal(t, uint32(11), info.NewEndIndex)
	assert.Equal(t, sitter.Point{Row: 0, Column: 12}, info.OldEndPosition)
	assert.Equal(t, sitter.Point{Row: 0, Column: 11}, info.NewEndPosition)

	in := info.InputEdit()
	assert.Equal(t, info.StartIndex, in.StartIndex)
	assert.Equal(t, info.NewEndPosition, in.NewEndPoint)
}

func TestNewEditInfo_Empty(t *testing.T) {
	assert.True(t, NewEditInfo([]byte("abc"), 1, 0, nil).IsEmpty())
}
