// internal/buffer/text_buffer.go
package buffer

import (
	"fmt"

	"github.com/bethropolis/undobuf/internal/types"
)

// TextBuffer stores the whole text as one byte slice.
type TextBuffer struct {
	text []byte
}

// NewTextBuffer creates an empty TextBuffer.
func NewTextBuffer() *TextBuffer {
	return &TextBuffer{}
}

// NewTextBufferFromString creates a TextBuffer holding initial.
func NewTextBufferFromString(initial string) *TextBuffer {
	return &TextBuffer{text: []byte(initial)}
}

// Identify returns the buffer type tag.
func (tb *TextBuffer) Identify() string {
	return IdentifyBuffer
}

// Text returns a copy of the current content.
func (tb *TextBuffer) Text() string {
	return string(tb.text)
}

// Len returns the content length in bytes.
func (tb *TextBuffer) Len() int {
	return len(tb.text)
}

// checkRange validates pos/length against the current content.
func (tb *TextBuffer) checkRange(pos, length int) error {
	if pos < 0 || length < 0 || pos > len(tb.text) || length > len(tb.text)-pos {
		return fmt.Errorf("range [%d,+%d) outside text of length %d: %w", pos, length, len(tb.text), ErrOutOfRange)
	}
	return nil
}

// Slice returns length bytes starting at pos.
func (tb *TextBuffer) Slice(pos, length int) (string, error) {
	if err := tb.checkRange(pos, length); err != nil {
		return "", err
	}
	return string(tb.text[pos : pos+length]), nil
}

// Insert inserts text at pos.
func (tb *TextBuffer) Insert(text string, pos int) (types.EditInfo, error) {
	return tb.Replace(pos, 0, text)
}

// Delete removes length bytes starting at pos.
func (tb *TextBuffer) Delete(pos, length int) (types.EditInfo, error) {
	return tb.Replace(pos, length, "")
}

// Replace overwrites length bytes at pos with text. The range must lie within
// the current content; the buffer is left untouched on error.
func (tb *TextBuffer) Replace(pos, length int, text string) (types.EditInfo, error) {
	if err := tb.checkRange(pos, length); err != nil {
		return types.EditInfo{}, err
	}
	info := types.NewEditInfo(tb.text, pos, length, []byte(text))

	// Build into a fresh slice so earlier Text() copies never alias.
	next := make([]byte, 0, len(tb.text)-length+len(text))
	next = append(next, tb.text[:pos]...)
	next = append(next, text...)
	next = append(next, tb.text[pos+length:]...)
	tb.text = next

	return info, nil
}

// Ensure TextBuffer satisfies the Buffer interface
var _ Buffer = (*TextBuffer)(nil)
