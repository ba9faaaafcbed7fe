package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/minicube"
)

// execute runs the root command with a private config and database.
func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		applyPerm, applyOrient, applyRecord, applyLabel = nil, nil, false, ""
		demoRecord, invertDescribe, verbose = false, false, false
		configPath, dbPath = "", ""
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	full := append([]string{
		"--config", filepath.Join(dir, "config.yaml"),
		"--db", filepath.Join(dir, "history.db"),
	}, args...)
	rootCmd.SetArgs(full)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRunDemoPrintsEveryStage(t *testing.T) {
	var out bytes.Buffer
	runs, err := runDemo(&out, newStyles(false))
	require.NoError(t, err)
	require.Len(t, runs, len(demoStages))

	text := out.String()
	for _, stage := range demoStages {
		assert.Contains(t, text, stage.label+": "+stage.sequence)
	}
	assert.Contains(t, text, "Corners: [3 1 5 0 4 2 6 7]")
	assert.Contains(t, text, "Corners: [0 4 5 1 6 2 7 3]")
	assert.Contains(t, text, "Orientations: [1 2 2 2 1 2 0 2]")
	assert.Contains(t, text, "Solved: no")

	assert.Equal(t, minicube.Identity(), runs[0].Start)
	assert.Equal(t, runs[0].End, runs[1].Start)
	assert.Equal(t, []int{0, 4, 5, 1, 6, 2, 7, 3}, runs[3].End.Permutation())
}

func TestStartState(t *testing.T) {
	s, err := startState(nil, nil)
	require.NoError(t, err)
	assert.True(t, s.IsSolved())

	s, err = startState(nil, []int{1, 2, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, s.Permutation())
	assert.Equal(t, 0, s.Twist())

	_, err = startState([]int{0, 0, 1, 2, 3, 4, 5, 6}, nil)
	assert.ErrorIs(t, err, minicube.ErrInvalidState)
}

func TestNewRun(t *testing.T) {
	end, applyErr := minicube.ApplySequence(minicube.Identity(), "R R'")
	run := newRun("x", minicube.Identity(), "R R'", end, applyErr)
	assert.True(t, run.Solved)
	assert.Nil(t, run.FailedIndex)

	end, applyErr = minicube.ApplySequence(minicube.Identity(), "R Q")
	run = newRun("", minicube.Identity(), "R Q", end, applyErr)
	assert.False(t, run.Solved)
	require.NotNil(t, run.FailedIndex)
	assert.Equal(t, 1, *run.FailedIndex)
	require.NotNil(t, run.ErrorText)
}

func TestApplyCommand(t *testing.T) {
	out, err := execute(t, t.TempDir(), "apply", "R", "U", "R'", "U'")
	require.NoError(t, err)
	assert.Contains(t, out, "Corners:")
	assert.Contains(t, out, "Solved: no")
}

func TestApplyCommandUnknownToken(t *testing.T) {
	out, err := execute(t, t.TempDir(), "apply", "R X")
	assert.True(t, errors.Is(err, minicube.ErrUnknownMove))
	assert.Contains(t, out, "Corners: [4 0 2 3 5 1 6 7]")
}

func TestApplyRecordAndHistory(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "apply", "--record", "--label", "sune", "R U R' U R U2 R'")
	require.NoError(t, err)
	id := regexp.MustCompile(`Recorded run (\S+)`).FindStringSubmatch(out)
	require.Len(t, id, 2, out)

	out, err = execute(t, dir, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "Runs (1 of 1)")
	assert.Contains(t, out, "sune")
	assert.Contains(t, out, id[1][:8])

	out, err = execute(t, dir, "history", "show", id[1])
	require.NoError(t, err)
	assert.Contains(t, out, "Applied: R U R' U R U2 R' (7 moves)")

	_, err = execute(t, dir, "history", "delete", id[1])
	require.NoError(t, err)

	out, err = execute(t, dir, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No runs recorded")
}

func TestDemoCommandRecords(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, dir, "demo", "--record")
	require.NoError(t, err)
	assert.Contains(t, out, "Recorded 4 runs")

	out, err = execute(t, dir, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "Runs (4 of 4)")
	assert.Contains(t, out, "demo yellow corners")
}

func TestInvertCommand(t *testing.T) {
	out, err := execute(t, t.TempDir(), "invert", "--describe", "R U R U")
	require.NoError(t, err)
	assert.Contains(t, out, "U' R' U' R'")
	assert.Contains(t, out, "top face anti-clockwise")
	assert.Contains(t, out, "Solved: yes")

	_, err = execute(t, t.TempDir(), "invert", "R Z")
	assert.ErrorIs(t, err, minicube.ErrUnknownMove)
}

func TestKeyMove(t *testing.T) {
	m, ok := keyMove("r")
	assert.True(t, ok)
	assert.Equal(t, minicube.R, m)

	m, ok = keyMove("B")
	assert.True(t, ok)
	assert.Equal(t, minicube.BPrime, m)

	for _, key := range []string{"q", "x", "ctrl+c", "2", ""} {
		_, ok := keyMove(key)
		assert.False(t, ok, key)
	}
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPlayModel(t *testing.T) {
	m := newPlayModel(newStyles(false))

	m.Update(runeKey("r"))
	assert.Equal(t, "right face clockwise", m.message)
	assert.False(t, m.tracker.IsSolved())

	m.Update(runeKey("R"))
	assert.True(t, m.tracker.IsSolved())
	assert.Equal(t, 1, m.solves)
	assert.Contains(t, m.message, "Solved after 2 moves")

	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.False(t, m.tracker.IsSolved())
	assert.Contains(t, m.View(), "History:")

	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "Undone", m.message)

	m.Update(runeKey("x"))
	assert.True(t, m.tracker.IsSolved())
	assert.Equal(t, 0, m.tracker.MoveCount())

	_, cmd := m.Update(runeKey("q"))
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.True(t, strings.HasPrefix(m.View(), "Bye."))
}
