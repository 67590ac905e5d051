package logger

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

const tagKey = "tag" // The slog attribute key used for filtering tags

// filteringHandler wraps a base slog.Handler to add custom filtering.
type filteringHandler struct {
	baseHandler slog.Handler
	cfg         *Config // Reference to processed config
}

// newFilteringHandler creates a handler with filtering capabilities.
func newFilteringHandler(base slog.Handler, cfg *Config) *filteringHandler {
	return &filteringHandler{
		baseHandler: base,
		cfg:         cfg,
	}
}

// Enabled checks if the level is enabled by the base handler.
func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.baseHandler.Enabled(ctx, level)
}

// allowed applies the disabled-then-enabled rule for one key.
func allowed(enabled, disabled mapset.Set[string], key string) bool {
	if disabled != nil && disabled.Contains(key) {
		return false
	}
	if enabled != nil && !enabled.Contains(key) {
		return false
	}
	return true
}

// Handle applies filtering logic before passing the record to the base handler.
func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg == nil {
		return h.baseHandler.Handle(ctx, r)
	}

	// --- Extract Source Information ---
	var pkg, file string
	if r.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{r.PC})
		frame, _ := frames.Next()
		if frame.File != "" {
			file = strings.ToLower(filepath.Base(frame.File))
			pkg = strings.ToLower(filepath.Base(filepath.Dir(frame.File)))
		}
	}

	if pkg != "" && !allowed(h.cfg.enabledPackages, h.cfg.disabledPackages, pkg) {
		return nil
	}
	if file != "" && !allowed(h.cfg.enabledFiles, h.cfg.disabledFiles, file) {
		return nil
	}

	// --- Apply Tag Filtering ---
	var tagValue string
	var tagFound bool
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			tagValue = strings.ToLower(a.Value.String())
			tagFound = true
			return false // Stop iteration
		}
		return true
	})

	if tagFound {
		if !allowed(h.cfg.enabledTags, h.cfg.disabledTags, tagValue) {
			return nil
		}
	} else if h.cfg.enabledTags != nil {
		// Filtering for specific tags but this message has none
		return nil
	}

	return h.baseHandler.Handle(ctx, r)
}

// WithAttrs returns a new handler with attributes added.
func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithAttrs(attrs), h.cfg)
}

// WithGroup returns a new handler with a group added.
func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithGroup(name), h.cfg)
}
