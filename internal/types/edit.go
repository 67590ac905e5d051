package types

import (
	"bytes"

	sitter "github.com/smacker/go-tree-sitter"
)

// EditInfo encapsulates the information needed for tree-sitter's Edit function.
type EditInfo struct {
	StartIndex     uint32       // Start byte of the edit
	OldEndIndex    uint32       // End byte of the old text
	NewEndIndex    uint32       // End byte of the new text
	StartPosition  sitter.Point // Start position (row, column)
	OldEndPosition sitter.Point // Old end position
	NewEndPosition sitter.Point // New end position
}

// NewEditInfo describes replacing oldLen bytes at pos of text (the content
// before the edit) with inserted.
func NewEditInfo(text []byte, pos, oldLen int, inserted []byte) EditInfo {
	start := PointAt(text, pos)
	return EditInfo{
		StartIndex:     uint32(pos),
		OldEndIndex:    uint32(pos + oldLen),
		NewEndIndex:    uint32(pos + len(inserted)),
		StartPosition:  start,
		OldEndPosition: PointAt(text, pos+oldLen),
		NewEndPosition: advancePoint(start, inserted),
	}
}

// InputEdit converts the info into the form accepted by (*sitter.Tree).Edit.
func (e EditInfo) InputEdit() sitter.EditInput {
	return sitter.EditInput{
		StartIndex:  e.StartIndex,
		OldEndIndex: e.OldEndIndex,
		NewEndIndex: e.NewEndIndex,
		StartPoint:  e.StartPosition,
		OldEndPoint: e.OldEndPosition,
		NewEndPoint: e.NewEndPosition,
	}
}

// IsEmpty reports whether the edit changed nothing.
func (e EditInfo) IsEmpty() bool {
	return e.StartIndex == e.OldEndIndex && e.StartIndex == e.NewEndIndex
}

// PointAt returns the row/column (both byte based) of offset within text.
// Offsets past the end are clamped.
func PointAt(text []byte, offset int) sitter.Point {
	if offset > len(text) {
		offset = len(text)
	}
	if offset < 0 {
		offset = 0
	}
	head := text[:offset]
	row := bytes.Count(head, []byte{'\n'})
	col := offset
	if last := bytes.LastIndexByte(head, '\n'); last >= 0 {
		col = offset - last - 1
	}
	return sitter.Point{Row: uint32(row), Column: uint32(col)}
}

func advancePoint(p sitter.Point, inserted []byte) sitter.Point {
	rows := bytes.Count(inserted, []byte{'\n'})
	if rows == 0 {
		return sitter.Point{Row: p.Row, Column: p.Column + uint32(len(inserted))}
	}
	last := bytes.LastIndexByte(inserted, '\n')
	return sitter.Point{Row: p.Row + uint32(rows), Column: uint32(len(inserted) - last - 1)}
}
