package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/minicube"
	"github.com/SeamusWaldron/minicube/internal/notation"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Turn the corners interactively",
	Long: `Open an interactive view of the corner state.

Keys:
  r l u d f b    turn the face clockwise
  R L U D F B    turn the face anti-clockwise
  space          apply the demo scramble
  backspace      undo the last move
  x              reset to solved
  q              quit`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	model := newPlayModel(newStyles(appConfig.Color))
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("play error: %w", err)
	}
	logger.Debug("play session ended", "moves", model.tracker.MoveCount(), "solves", model.solves)
	return nil
}

type playModel struct {
	tracker  *minicube.Tracker
	st       styles
	message  string
	solves   int
	quitting bool
}

func newPlayModel(st styles) *playModel {
	m := &playModel{
		tracker: minicube.NewTracker(),
		st:      st,
	}
	m.tracker.OnSolved(func(moves int) {
		m.solves++
		m.message = fmt.Sprintf("Solved after %d moves!", moves)
	})
	return m
}

// keyMove maps a key to a quarter turn: lowercase clockwise, uppercase
// anti-clockwise.
func keyMove(key string) (minicube.Move, bool) {
	if len(key) != 1 {
		return minicube.Move{}, false
	}
	face := minicube.Face(strings.ToUpper(key))
	for _, f := range minicube.Faces {
		if f != face {
			continue
		}
		if key == strings.ToLower(key) {
			return minicube.Move{Face: face, Turn: minicube.CW}, true
		}
		return minicube.Move{Face: face, Turn: minicube.CCW}, true
	}
	return minicube.Move{}, false
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case " ":
		if err := m.tracker.ApplyNotation(demoStages[0].sequence); err != nil {
			m.message = err.Error()
		} else {
			m.message = "Scrambled"
		}

	case "backspace":
		if m.tracker.Undo() {
			m.message = "Undone"
		} else {
			m.message = "Nothing to undo"
		}

	case "x":
		m.tracker.Reset()
		m.message = "Reset"

	default:
		mv, ok := keyMove(key.String())
		if !ok {
			return m, nil
		}
		m.message = ""
		if err := m.tracker.ApplyMove(mv); err != nil {
			m.message = err.Error()
		} else if m.message == "" {
			m.message = notation.Describe(mv)
		}
	}

	return m, nil
}

func (m *playModel) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var b strings.Builder
	b.WriteString(m.st.title.Render("minicube"))
	b.WriteString("\n\n")
	b.WriteString(m.st.renderState(m.tracker.State()))
	b.WriteString("\n")
	b.WriteString(m.st.renderSolved(m.tracker.State()))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Moves: %d\n", m.tracker.MoveCount()))

	// Last 20 moves
	moves := m.tracker.Moves()
	if len(moves) > 0 {
		b.WriteString("History: ")
		if len(moves) > 20 {
			moves = moves[len(moves)-20:]
			b.WriteString("... ")
		}
		b.WriteString(m.st.moved.Render(minicube.FormatMoves(moves)))
		b.WriteString("\n")
	}

	if m.message != "" {
		b.WriteString("\n")
		b.WriteString(m.st.status.Render(m.message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.st.help.Render("rludfb=turn  RLUDFB=reverse  space=scramble  backspace=undo  x=reset  q=quit"))
	b.WriteString("\n")
	return b.String()
}
