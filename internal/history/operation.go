// Package history provides the inverse-operation stack used for undo.
package history

import "fmt"

// Kind tells Undo which inverse to apply.
type Kind int

const (
	InsertInverse  Kind = iota // Remove text that was inserted
	DeleteInverse              // Reinsert text that was deleted
	ReplaceInverse             // Restore text that was overwritten
)

func (k Kind) String() string {
	switch k {
	case InsertInverse:
		return "insert-inverse"
	case DeleteInverse:
		return "delete-inverse"
	case ReplaceInverse:
		return "replace-inverse"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Operation is the recorded inverse of one forward edit. It is a plain value
// and is never modified after it is pushed.
type Operation struct {
	Kind     Kind
	Text     string // Inserted text (InsertInverse) or text to restore
	Position int    // Byte offset the inverse applies at
	Span     int    // Bytes the inverse removes before restoring Text
}

// NewInsertInverse records that text was inserted at pos.
func NewInsertInverse(text string, pos int) Operation {
	return Operation{Kind: InsertInverse, Text: text, Position: pos, Span: len(text)}
}

// NewDeleteInverse records that deleted was removed from pos.
func NewDeleteInverse(deleted string, pos int) Operation {
	return Operation{Kind: DeleteInverse, Text: deleted, Position: pos}
}

// NewReplaceInverse records that replaced was overwritten at pos by newLen bytes.
func NewReplaceInverse(replaced string, pos, newLen int) Operation {
	return Operation{Kind: ReplaceInverse, Text: replaced, Position: pos, Span: newLen}
}

func (op Operation) String() string {
	return fmt.Sprintf("%s@%d %q (span %d)", op.Kind, op.Position, op.Text, op.Span)
}
