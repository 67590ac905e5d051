package scenario

import (
	"errors"
	"testing"

	"github.com/bethropolis/undobuf/internal/editor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Acceptance(t *testing.T) {
	report := Run(editor.New(), Acceptance())

	require.Len(t, report.Results, 6)
	assert.True(t, report.Passed(), report.String())
	assert.Empty(t, report.Failures())
	assert.Equal(t, "PASS insert initial text", report.Results[0].String())
}

func TestRun_ReportsEveryFailure(t *testing.T) {
	steps := []Step{
		{Name: "wrong text", Action: func(ed *editor.Editor) error { return ed.Insert("a", 0) }, Want: "b"},
		{Name: "error", Action: func(ed *editor.Editor) error { return errors.New("boom") }, Want: "a"},
		{Name: "ok", Action: func(ed *editor.Editor) error { return nil }, Want: "a"},
	}
	report := Run(editor.New(), steps)

	assert.False(t, report.Passed())
	failures := report.Failures()
	require.Len(t, failures, 2)
	assert.Equal(t, `FAIL wrong text: got "a", want "b"`, failures[0].String())
	assert.Equal(t, "FAIL error: boom", failures[1].String())
	assert.True(t, report.Results[2].Passed())
}

func TestRun_AcceptanceOnSeededEditorFails(t *testing.T) {
	report := Run(editor.NewFromString("x"), Acceptance())
	assert.False(t, report.Passed())
}
