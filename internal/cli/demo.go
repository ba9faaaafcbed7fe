package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/minicube"
	"github.com/SeamusWaldron/minicube/internal/storage"
)

// demoStage is one labelled sequence of the scramble/solve demo.
type demoStage struct {
	label    string
	sequence string
}

var demoStages = []demoStage{
	{"scramble", "R U R' U R U2 R' F R' F' U'"},
	{"white corners", "R' D' R"},
	{"yellow face", "R U R' U R U2 R'"},
	{"yellow corners", "R' F R' B2 R F' R' B2 R2"},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the scramble and layered-method demo",
	Long: `Scramble a solved cube, then apply three solution steps of the layered
method, printing the corner state after each stage and whether the corners
end up solved.`,
	Args: cobra.NoArgs,
	RunE: runDemoCmd,
}

var demoRecord bool

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().BoolVar(&demoRecord, "record", false, "Record each stage in the history database")
}

func runDemoCmd(cmd *cobra.Command, args []string) error {
	st := newStyles(appConfig.Color)
	runs, err := runDemo(cmd.OutOrStdout(), st)
	if err != nil {
		return err
	}

	if demoRecord || appConfig.RecordHistory {
		ids, err := recordRuns(cmd.Context(), runs...)
		if err != nil {
			return fmt.Errorf("failed to record demo: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nRecorded %d runs\n", len(ids))
	}
	return nil
}

// runDemo applies every stage in order and writes the state after each one.
// It returns one run per stage.
func runDemo(w io.Writer, st styles) ([]storage.Run, error) {
	s := minicube.Identity()
	runs := make([]storage.Run, 0, len(demoStages))

	for i, stage := range demoStages {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, st.title.Render(fmt.Sprintf("%s: %s", stage.label, stage.sequence)))

		next, err := minicube.ApplySequence(s, stage.sequence)
		runs = append(runs, newRun("demo "+stage.label, s, stage.sequence, next, err))
		if err != nil {
			return runs, fmt.Errorf("stage %q: %w", stage.label, err)
		}
		logger.Debug("demo stage applied", "stage", stage.label, "twist", next.Twist())

		s = next
		fmt.Fprintln(w, st.renderRaw(s))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, st.renderState(s))
	fmt.Fprintln(w, st.renderSolved(s))
	return runs, nil
}
