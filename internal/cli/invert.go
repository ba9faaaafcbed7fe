package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/minicube"
	"github.com/SeamusWaldron/minicube/internal/notation"
)

var invertCmd = &cobra.Command{
	Use:   "invert <moves...>",
	Short: "Print the sequence that undoes a sequence",
	Long: `Print the inverse of a sequence, with adjacent same-face turns merged,
and check that applying the sequence and then its inverse leaves the corners
solved.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInvert,
}

var invertDescribe bool

func init() {
	rootCmd.AddCommand(invertCmd)
	invertCmd.Flags().BoolVarP(&invertDescribe, "describe", "d", false, "Describe each inverse move in words")
}

func runInvert(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	st := newStyles(appConfig.Color)

	moves, err := minicube.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return err
	}

	inverse := notation.Simplify(notation.Invert(moves))
	fmt.Fprintln(out, st.moved.Render(minicube.FormatMoves(inverse)))

	if invertDescribe {
		for i, m := range inverse {
			fmt.Fprintf(out, "%3d. %-3s %s\n", i+1, m.Notation(), notation.Describe(m))
		}
	}

	s, err := minicube.Identity().Apply(moves...)
	if err != nil {
		return err
	}
	s, err = s.Apply(inverse...)
	if err != nil {
		return err
	}
	if !s.IsSolved() {
		return fmt.Errorf("inverse of %q did not return to solved", minicube.FormatMoves(moves))
	}
	fmt.Fprintln(out, st.renderSolved(s))
	return nil
}
