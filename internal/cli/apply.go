package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/minicube"
)

var applyCmd = &cobra.Command{
	Use:   "apply <moves...>",
	Short: "Apply a move sequence and show the result",
	Long: `Apply a sequence in standard notation to the solved state, or to a start
state given with --perm and --orient.

Examples:
  minicube apply "R U R' U'"
  minicube apply "R U2 F'" --perm 1,0,2,3,4,5,6,7 --orient 0,0,0,0,0,0,0,0
  minicube apply R U --record --label practice`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

var (
	applyPerm   []int
	applyOrient []int
	applyRecord bool
	applyLabel  string
)

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().IntSliceVar(&applyPerm, "perm", nil, "Start permutation, 8 comma-separated corner indices")
	applyCmd.Flags().IntSliceVar(&applyOrient, "orient", nil, "Start orientation, 8 comma-separated values in 0..2")
	applyCmd.Flags().BoolVar(&applyRecord, "record", false, "Record the run in the history database")
	applyCmd.Flags().StringVarP(&applyLabel, "label", "l", "", "Label stored with the run")
}

// startState builds the start state from flags. Omitting both flags means
// identity; giving only one is an error.
func startState(perm, orient []int) (minicube.State, error) {
	if perm == nil && orient == nil {
		return minicube.Identity(), nil
	}
	if perm == nil {
		perm = []int{0, 1, 2, 3, 4, 5, 6, 7}
	}
	if orient == nil {
		orient = make([]int, minicube.NumCorners)
	}
	return minicube.FromRaw(perm, orient)
}

func runApply(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	st := newStyles(appConfig.Color)

	start, err := startState(applyPerm, applyOrient)
	if err != nil {
		return err
	}

	sequence := strings.Join(args, " ")
	end, applyErr := minicube.ApplySequence(start, sequence)
	logger.Debug("sequence applied", "sequence", sequence, "error", applyErr)

	if applyErr != nil {
		fmt.Fprintln(out, st.errorS.Render(applyErr.Error()))
		fmt.Fprintln(out, st.status.Render("State after the moves before the failing token:"))
	}
	fmt.Fprintln(out, st.renderState(end))
	fmt.Fprintln(out, st.renderRaw(end))
	fmt.Fprintln(out, st.renderSolved(end))

	if applyRecord || appConfig.RecordHistory {
		ids, err := recordRuns(cmd.Context(), newRun(applyLabel, start, sequence, end, applyErr))
		if err != nil {
			return fmt.Errorf("failed to record run: %w", err)
		}
		fmt.Fprintf(out, "Recorded run %s\n", ids[0])
	}

	return applyErr
}
