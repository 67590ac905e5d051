// internal/buffer/buffer.go
package buffer

import (
	"errors"

	"github.com/bethropolis/undobuf/internal/types"
)

// ErrOutOfRange is returned when a position or length falls outside the text.
var ErrOutOfRange = errors.New("position out of range")

// IdentifyBuffer is the tag reported by the plain buffer.
const IdentifyBuffer = "Buffer"

// Identifier is implemented by every buffer kind so callers can tell them apart.
type Identifier interface {
	Identify() string
}

// Buffer defines the raw text operations. Positions are byte offsets.
// No history is kept at this level.
type Buffer interface {
	Identifier
	Insert(text string, pos int) (types.EditInfo, error)
	Delete(pos, length int) (types.EditInfo, error)
	Replace(pos, length int, text string) (types.EditInfo, error)
	Slice(pos, length int) (string, error)
	Text() string
	Len() int
}
