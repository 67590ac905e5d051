package clipboard

import (
	"fmt"

	sysclip "github.com/atotto/clipboard"
	"github.com/bethropolis/undobuf/internal/logger"
)

// Manager holds copied text, optionally mirroring it to the system clipboard.
type Manager struct {
	system   bool
	internal string
	hasText  bool

	// Hooks for the system clipboard, swapped out in tests.
	writeAll    func(string) error
	readAll     func() (string, error)
	unsupported bool
}

// NewManager creates a clipboard manager. When system is true and the
// platform supports it, the OS clipboard is used as well.
func NewManager(system bool) *Manager {
	return &Manager{
		system:      system,
		writeAll:    sysclip.WriteAll,
		readAll:     sysclip.ReadAll,
		unsupported: sysclip.Unsupported,
	}
}

// UsesSystem reports whether the OS clipboard is in use.
func (m *Manager) UsesSystem() bool {
	return m.system && !m.unsupported
}

// Copy stores text. The internal copy is always kept; a system clipboard
// failure is returned but does not lose the text.
func (m *Manager) Copy(text string) error {
	m.internal = text
	m.hasText = true
	logger.Debugf("ClipboardManager: Copied %d bytes", len(text))

	if !m.UsesSystem() {
		return nil
	}
	if err := m.writeAll(text); err != nil {
		logger.Warnf("ClipboardManager: System clipboard write failed: %v", err)
		return fmt.Errorf("system clipboard write: %w", err)
	}
	return nil
}

// Paste returns the most recent text, preferring the system clipboard.
func (m *Manager) Paste() (string, error) {
	if m.UsesSystem() {
		text, err := m.readAll()
		if err == nil {
			return text, nil
		}
		logger.Warnf("ClipboardManager: System clipboard read failed, using internal: %v", err)
	}
	if !m.hasText {
		return "", fmt.Errorf("clipboard is empty")
	}
	return m.internal, nil
}
