// internal/event/event.go
package event

import "github.com/bethropolis/undobuf/internal/types"

// Type identifies the kind of event.
type Type int

// Define specific event types.
const (
	TypeUnknown Type = iota

	TypeBufferModified // Fired when buffer content changes (edit or undo)
	TypeHistoryChanged // Fired when the undo stack depth changes
)

func (t Type) String() string {
	switch t {
	case TypeBufferModified:
		return "BufferModified"
	case TypeHistoryChanged:
		return "HistoryChanged"
	default:
		return "Unknown"
	}
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type // The kind of event
	Data any  // Payload carrying event-specific data
}

// Source tells listeners what produced a buffer change.
type Source int

const (
	SourceEdit Source = iota // Forward Insert/Delete/Replace
	SourceUndo               // Inverse applied by Undo
)

// BufferModifiedData contains info about buffer changes, including EditInfo.
type BufferModifiedData struct {
	Edit   types.EditInfo // Information about the change for incremental parsing
	Source Source
}

// HistoryChangedData carries the new undo depth.
type HistoryChangedData struct {
	Depth int
}
