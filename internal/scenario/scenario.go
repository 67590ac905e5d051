// Package scenario runs a fixed sequence of editor calls and checks the text
// after each one.
package scenario

import (
	"fmt"
	"strings"

	"github.com/bethropolis/undobuf/internal/editor"
	"github.com/bethropolis/undobuf/internal/logger"
)

// Step is one call against the editor and the text expected afterwards.
type Step struct {
	Name   string
	Action func(ed *editor.Editor) error
	Want   string
}

// Result records the outcome of one step.
type Result struct {
	Name string
	Got  string
	Want string
	Err  error
}

// Passed reports whether the step ran without error and produced Want.
func (r Result) Passed() bool {
	return r.Err == nil && r.Got == r.Want
}

func (r Result) String() string {
	if r.Passed() {
		return fmt.Sprintf("PASS %s", r.Name)
	}
	if r.Err != nil {
		return fmt.Sprintf("FAIL %s: %v", r.Name, r.Err)
	}
	return fmt.Sprintf("FAIL %s: got %q, want %q", r.Name, r.Got, r.Want)
}

// Report collects the results of a run.
type Report struct {
	Results []Result
}

// Passed reports whether every step passed.
func (r Report) Passed() bool {
	for _, res := range r.Results {
		if !res.Passed() {
			return false
		}
	}
	return true
}

// Failures returns the failed results.
func (r Report) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Passed() {
			out = append(out, res)
		}
	}
	return out
}

func (r Report) String() string {
	var sb strings.Builder
	for _, res := range r.Results {
		sb.WriteString(res.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

const (
	replacePosition = 7
	replaceLength   = 5
	insertPosition  = 4
)

// Acceptance is the reference sequence: insert, replace, delete, insert,
// undo, then an identity check.
func Acceptance() []Step {
	return []Step{
		{
			Name:   "insert initial text",
			Action: func(ed *editor.Editor) error { return ed.Insert("Hello, world", 0) },
			Want:   "Hello, world",
		},
		{
			Name:   "replace text",
			Action: func(ed *editor.Editor) error { return ed.Replace("Sir!", replacePosition, replaceLength) },
			Want:   "Hello, Sir!",
		},
		{
			Name:   "delete text",
			Action: func(ed *editor.Editor) error { return ed.Delete(0, replacePosition) },
			Want:   "Sir!",
		},
		{
			Name:   "insert text",
			Action: func(ed *editor.Editor) error { return ed.Insert("?", insertPosition) },
			Want:   "Sir!?",
		},
		{
			Name: "undo operation",
			Action: func(ed *editor.Editor) error {
				if !ed.Undo() {
					return fmt.Errorf("undo reported nothing to undo")
				}
				return nil
			},
			Want: "Sir!",
		},
		{
			Name: "identification",
			Action: func(ed *editor.Editor) error {
				if got := ed.Identify(); got != editor.IdentifyEditor {
					return fmt.Errorf("identify returned %q, want %q", got, editor.IdentifyEditor)
				}
				return nil
			},
			Want: "Sir!",
		},
	}
}

// Run executes steps in order against ed. Every step runs even after a failure.
func Run(ed *editor.Editor, steps []Step) Report {
	report := Report{Results: make([]Result, 0, len(steps))}
	for _, step := range steps {
		err := step.Action(ed)
		res := Result{Name: step.Name, Got: ed.Text(), Want: step.Want, Err: err}
		if res.Passed() {
			logger.DebugTagf("scenario", "Scenario: %s passed", step.Name)
		} else {
			logger.Warnf("Scenario: %s", res)
		}
		report.Results = append(report.Results, res)
	}
	logger.InfoTagf("scenario", "Scenario: %d/%d steps passed", len(report.Results)-len(report.Failures()), len(report.Results))
	return report
}
