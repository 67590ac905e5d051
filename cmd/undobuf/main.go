// cmd/undobuf/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	stlog "log" // Use standard log for FATAL errors before logger is ready
	"os"

	"github.com/bethropolis/undobuf/internal/clipboard"
	"github.com/bethropolis/undobuf/internal/config"
	"github.com/bethropolis/undobuf/internal/editor"
	"github.com/bethropolis/undobuf/internal/event"
	"github.com/bethropolis/undobuf/internal/logger"
	"github.com/bethropolis/undobuf/internal/scenario"
	"github.com/bethropolis/undobuf/internal/stats"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	// --- Argument & Flag Parsing ---
	flags := config.NewFlags(config.AppName, flag.ContinueOnError)
	if _, err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.Version {
		fmt.Fprintf(out, "%s %s\n", config.AppName, version)
		return 0
	}

	cfg, err := config.Load(flags.ConfigFilePath, flags)
	if err != nil {
		stlog.Printf("Warning: %v (using defaults)", err)
	}

	// --- Logger Initialization ---
	logCloser, err := logger.Setup(cfg.Logger)
	if err != nil {
		stlog.Printf("Failed to set up logger: %v", err)
		return 1
	}
	defer logCloser.Close()
	logger.Infof("Starting %s %s", config.AppName, version)

	events := event.NewManager()
	events.Subscribe(event.TypeBufferModified, func(e event.Event) bool {
		data := e.Data.(event.BufferModifiedData)
		logger.DebugTagf("edit", "Buffer modified (source %d): bytes %d..%d -> %d, rows %d -> %d",
			data.Source, data.Edit.StartIndex, data.Edit.OldEndIndex, data.Edit.NewEndIndex,
			data.Edit.OldEndPosition.Row, data.Edit.NewEndPosition.Row)
		return false
	})

	opts := append(editor.OptionsFromConfig(cfg.Editor), editor.WithEventManager(events))
	ed := editor.New(opts...)

	report := scenario.Run(ed, scenario.Acceptance())
	fmt.Fprint(out, report.String())
	fmt.Fprintln(out, stats.Compute(ed.Text()))

	if flags.Dump {
		fmt.Fprintln(out, ed.DumpHistory())
	}
	if flags.Copy {
		clip := clipboard.NewManager(cfg.Editor.SystemClipboard)
		if err := clip.Copy(ed.Text()); err != nil {
			logger.Warnf("Copy failed: %v", err)
		}
		copied, err := clip.Paste()
		if err != nil {
			logger.Warnf("Clipboard read back failed: %v", err)
		} else {
			fmt.Fprintf(out, "Copied %d bytes to clipboard\n", len(copied))
		}
	}

	if !report.Passed() {
		fmt.Fprintf(out, "%d test(s) failed\n", len(report.Failures()))
		logger.Errorf("Scenario failed")
		return 1
	}
	fmt.Fprintln(out, "All tests passed!")
	logger.Infof("%s finished.", config.AppName)
	return 0
}
