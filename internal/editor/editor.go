// Package editor wraps a buffer with an undo history of inverse operations.
package editor

import (
	"errors"
	"fmt"

	"github.com/bethropolis/undobuf/internal/buffer"
	"github.com/bethropolis/undobuf/internal/config"
	"github.com/bethropolis/undobuf/internal/event"
	"github.com/bethropolis/undobuf/internal/history"
	"github.com/bethropolis/undobuf/internal/logger"
	"github.com/bethropolis/undobuf/internal/types"
	"github.com/sanity-io/litter"
)

// IdentifyEditor is the tag reported by the history-tracking editor.
const IdentifyEditor = "TextEditor"

// ErrInvalidReplace is returned by Replace in strict mode when the position
// is past the end of the text or the length is zero.
var ErrInvalidReplace = errors.New("invalid replace range")

// Editor applies edits to a buffer and records the inverse of each one.
type Editor struct {
	buffer        buffer.Buffer
	history       *history.Stack
	eventManager  *event.Manager
	strictReplace bool
	maxHistory    int
}

// Option configures an Editor.
type Option func(*Editor)

// WithMaxHistory caps the number of undo entries. n <= 0 means unlimited.
func WithMaxHistory(n int) Option {
	return func(e *Editor) { e.maxHistory = n }
}

// WithStrictReplace makes invalid Replace calls return ErrInvalidReplace
// instead of being ignored silently.
func WithStrictReplace(strict bool) Option {
	return func(e *Editor) { e.strictReplace = strict }
}

// WithEventManager sets the manager that receives modification events.
func WithEventManager(mgr *event.Manager) Option {
	return func(e *Editor) { e.eventManager = mgr }
}

// WithBuffer replaces the default TextBuffer. Initial text passed to
// NewFromString is appended to whatever buf already holds.
func WithBuffer(buf buffer.Buffer) Option {
	return func(e *Editor) { e.buffer = buf }
}

// OptionsFromConfig translates editor settings into options.
func OptionsFromConfig(cfg config.EditorConfig) []Option {
	return []Option{
		WithMaxHistory(cfg.MaxHistory),
		WithStrictReplace(cfg.StrictReplace),
	}
}

// New creates an empty editor.
func New(opts ...Option) *Editor {
	return NewFromString("", opts...)
}

// NewFromString creates an editor holding initial. The initial text is not
// part of the history.
func NewFromString(initial string, opts ...Option) *Editor {
	e := &Editor{}
	for _, opt := range opts {
		opt(e)
	}
	if e.buffer == nil {
		e.buffer = buffer.NewTextBufferFromString(initial)
	} else if initial != "" {
		if _, err := e.buffer.Insert(initial, e.buffer.Len()); err != nil {
			logger.Errorf("Editor: failed to seed buffer: %v", err)
		}
	}
	e.history = history.NewStack(e.maxHistory)
	return e
}

// Identify returns the editor type tag.
func (e *Editor) Identify() string {
	return IdentifyEditor
}

// Text returns a copy of the current content.
func (e *Editor) Text() string {
	return e.buffer.Text()
}

// Len returns the content length in bytes.
func (e *Editor) Len() int {
	return e.buffer.Len()
}

// GetBuffer exposes the underlying buffer. Edits made on it directly are not recorded.
func (e *Editor) GetBuffer() buffer.Buffer {
	return e.buffer
}

// Insert inserts text at pos and records the inverse.
func (e *Editor) Insert(text string, pos int) error {
	info, err := e.buffer.Insert(text, pos)
	if err != nil {
		return fmt.Errorf("insert at %d: %w", pos, err)
	}
	e.record(history.NewInsertInverse(text, pos), info)
	return nil
}

// Delete removes length bytes at pos and records the removed text.
func (e *Editor) Delete(pos, length int) error {
	deleted, err := e.buffer.Slice(pos, length)
	if err != nil {
		return fmt.Errorf("delete [%d,+%d): %w", pos, length, err)
	}
	info, err := e.buffer.Delete(pos, length)
	if err != nil {
		return fmt.Errorf("delete [%d,+%d): %w", pos, length, err)
	}
	e.record(history.NewDeleteInverse(deleted, pos), info)
	return nil
}

// Replace overwrites up to length bytes at pos with newText. The range end
// is clamped to the text length. A position past the end or a zero length
// is ignored (or rejected with ErrInvalidReplace in strict mode); nothing is
// recorded in that case.
func (e *Editor) Replace(newText string, pos, length int) error {
	textLen := e.buffer.Len()
	if pos < 0 || pos > textLen || length <= 0 {
		if e.strictReplace {
			return fmt.Errorf("replace [%d,+%d) on length %d: %w", pos, length, textLen, ErrInvalidReplace)
		}
		logger.DebugTagf("editor", "Editor: Ignoring replace [%d,+%d) on length %d", pos, length, textLen)
		return nil
	}

	end := textLen
	if length < textLen-pos {
		end = pos + length
	}
	replaced, err := e.buffer.Slice(pos, end-pos)
	if err != nil {
		return fmt.Errorf("replace [%d,%d): %w", pos, end, err)
	}
	info, err := e.buffer.Replace(pos, end-pos, newText)
	if err != nil {
		return fmt.Errorf("replace [%d,%d): %w", pos, end, err)
	}
	e.record(history.NewReplaceInverse(replaced, pos, len(newText)), info)
	return nil
}

// Undo reverts the most recent recorded edit. It returns false when there is
// nothing to undo. The undo itself is not recorded.
func (e *Editor) Undo() bool {
	op, ok := e.history.Pop()
	if !ok {
		logger.DebugTagf("history", "History: Nothing to undo.")
		return false
	}
	logger.DebugTagf("history", "History: Undoing %v", op)

	info, err := e.applyInverse(op)
	if err != nil {
		logger.Errorf("History: Error undoing %v: %v", op.Kind, err)
		e.history.Push(op) // Keep the entry so the stack still matches the text
		return false
	}

	e.dispatch(info, event.SourceUndo)
	return true
}

// applyInverse writes op's inverse straight to the buffer.
func (e *Editor) applyInverse(op history.Operation) (types.EditInfo, error) {
	switch op.Kind {
	case history.InsertInverse:
		return e.buffer.Delete(op.Position, len(op.Text))
	case history.DeleteInverse:
		return e.buffer.Insert(op.Text, op.Position)
	case history.ReplaceInverse:
		return e.buffer.Replace(op.Position, op.Span, op.Text)
	default:
		return types.EditInfo{}, fmt.Errorf("unknown operation kind %v", op.Kind)
	}
}

// CanUndo returns true if there are changes that can be undone.
func (e *Editor) CanUndo() bool {
	return e.history.Len() > 0
}

// HistoryLen returns the number of recorded edits.
func (e *Editor) HistoryLen() int {
	return e.history.Len()
}

// History returns the recorded inverses, oldest first.
func (e *Editor) History() []history.Operation {
	return e.history.Entries()
}

// ClearHistory drops all recorded edits. The text is unchanged.
func (e *Editor) ClearHistory() {
	e.history.Clear()
	e.dispatchDepth()
}

// DumpHistory renders the history stack for debugging.
func (e *Editor) DumpHistory() string {
	return litter.Sdump(e.history.Entries())
}

func (e *Editor) record(op history.Operation, info types.EditInfo) {
	e.history.Push(op)
	e.dispatch(info, event.SourceEdit)
}

func (e *Editor) dispatch(info types.EditInfo, src event.Source) {
	if e.eventManager == nil {
		return
	}
	e.eventManager.Dispatch(event.TypeBufferModified, event.BufferModifiedData{Edit: info, Source: src})
	e.dispatchDepth()
}

func (e *Editor) dispatchDepth() {
	if e.eventManager == nil {
		return
	}
	e.eventManager.Dispatch(event.TypeHistoryChanged, event.HistoryChangedData{Depth: e.history.Len()})
}

// Ensure Editor reports an identity like any buffer
var _ buffer.Identifier = (*Editor)(nil)
