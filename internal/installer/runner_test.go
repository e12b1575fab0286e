package installer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeEntrypoint drops an executable install script into a temp dir.
func writeEntrypoint(t *testing.T, script string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, EntrypointName)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return dir
}

// collectEvents drains the channel until it closes.
func collectEvents(t *testing.T, events <-chan Event) []Event {
	t.Helper()
	var out []Event
	timeout := time.After(10 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return out
			}
			out = append(out, ev)
		case <-timeout:
			t.Fatal("timed out draining installer events")
		}
	}
}

func TestRunSuccessStreamsOutputThenCompletes(t *testing.T) {
	dir := writeEntrypoint(t, `echo one
echo two
exit 0`)

	events := collectEvents(t, Run(dir, "claude", false))

	require.GreaterOrEqual(t, len(events), 3)
	assert.Equal(t, OutputLine{Text: "one"}, events[0])
	assert.Equal(t, OutputLine{Text: "two"}, events[1])
	assert.Equal(t, Completed{ExitCode: 0}, events[len(events)-1])
}

func TestRunPassesUninstallArgumentFirst(t *testing.T) {
	dir := writeEntrypoint(t, `echo "$@"`)

	events := collectEvents(t, Run(dir, "fish", true))

	require.GreaterOrEqual(t, len(events), 2)
	assert.Equal(t, OutputLine{Text: "uninstall fish"}, events[0])
	assert.Equal(t, Completed{ExitCode: 0}, events[len(events)-1])
}

func TestRunInstallArgumentIsOptionIDOnly(t *testing.T) {
	dir := writeEntrypoint(t, `echo "$@"`)

	events := collectEvents(t, Run(dir, "fish", false))

	require.GreaterOrEqual(t, len(events), 2)
	assert.Equal(t, OutputLine{Text: "fish"}, events[0])
}

func TestRunNonzeroExitReportedVerbatim(t *testing.T) {
	dir := writeEntrypoint(t, `echo failing >&2
exit 7`)

	events := collectEvents(t, Run(dir, "plymouth", false))

	require.GreaterOrEqual(t, len(events), 2)
	assert.Contains(t, events, OutputLine{Text: "failing"})
	assert.Equal(t, Completed{ExitCode: 7}, events[len(events)-1])
}

func TestRunSpawnFailureSendsError(t *testing.T) {
	// Empty dir, no entrypoint at all.
	events := collectEvents(t, Run(t.TempDir(), "claude", false))

	require.Len(t, events, 1)
	errEv, ok := events[0].(Error)
	require.True(t, ok, "expected Error, got %T", events[0])
	assert.Contains(t, errEv.Message, "spawn")
}

func TestRunSendsExactlyOneTerminalEvent(t *testing.T) {
	dir := writeEntrypoint(t, `echo hi
exit 3`)

	events := collectEvents(t, Run(dir, "ssh", false))

	terminals := 0
	for _, ev := range events {
		switch ev.(type) {
		case Completed, Error:
			terminals++
		}
	}
	assert.Equal(t, 1, terminals)
	// Terminal event is last; the channel closed right after it.
	switch events[len(events)-1].(type) {
	case Completed, Error:
	default:
		t.Fatalf("last event %T is not terminal", events[len(events)-1])
	}
}

func TestRunDropsUndecodableLines(t *testing.T) {
	dir := writeEntrypoint(t, `echo good1
printf '\377\376bad\n'
echo good2`)

	events := collectEvents(t, Run(dir, "claude", false))

	var lines []string
	for _, ev := range events {
		if out, ok := ev.(OutputLine); ok {
			lines = append(lines, out.Text)
		}
	}
	// The invalid line is dropped; the stream keeps going and the action
	// still completes normally.
	assert.Equal(t, []string{"good1", "good2"}, lines)
	assert.Equal(t, Completed{ExitCode: 0}, events[len(events)-1])
}

func TestRunPreservesPerStreamOrdering(t *testing.T) {
	dir := writeEntrypoint(t, `for i in 1 2 3 4 5; do echo "line $i"; done`)

	events := collectEvents(t, Run(dir, "brave", false))

	var lines []string
	for _, ev := range events {
		if out, ok := ev.(OutputLine); ok {
			lines = append(lines, out.Text)
		}
	}
	assert.Equal(t, []string{"line 1", "line 2", "line 3", "line 4", "line 5"}, lines)
}

func TestValidateScriptDir(t *testing.T) {
	dir := writeEntrypoint(t, `exit 0`)
	assert.NoError(t, ValidateScriptDir(dir))

	assert.Error(t, ValidateScriptDir(t.TempDir()))

	// A directory named "install" does not count as an entrypoint.
	dir = t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, EntrypointName), 0o755))
	assert.Error(t, ValidateScriptDir(dir))
}
