package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded runs",
	Long:  `List the most recent runs stored in the history database.`,
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show one recorded run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <run-id>",
	Short: "Delete a recorded run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

var historyLimit int

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of runs to list")
}

func runHistory(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	st := newStyles(appConfig.Color)

	db, repo, err := openHistory(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()

	total, err := repo.Count(cmd.Context())
	if err != nil {
		return err
	}
	runs, err := repo.List(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded. Record one with: minicube apply <moves> --record")
		return nil
	}

	fmt.Fprintln(out, st.title.Render(fmt.Sprintf("Runs (%d of %d)", len(runs), total)))
	for _, run := range runs {
		outcome := "unsolved"
		switch {
		case run.FailedIndex != nil:
			outcome = fmt.Sprintf("failed at token %d", *run.FailedIndex)
		case run.Solved:
			outcome = "solved"
		}
		label := run.Label
		if label == "" {
			label = "-"
		}
		fmt.Fprintf(out, "%s  %s  %-20s  %-18s  %s\n",
			run.RunID[:8], run.CreatedAt.Local().Format(time.DateTime), label, outcome, run.Sequence)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	st := newStyles(appConfig.Color)

	db, repo, err := openHistory(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()

	run, err := repo.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	moves, err := repo.Moves(cmd.Context(), run.RunID)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, st.title.Render("Run "+run.RunID))
	fmt.Fprintf(out, "Recorded: %s\n", run.CreatedAt.Local().Format(time.RFC3339))
	if run.Label != "" {
		fmt.Fprintf(out, "Label: %s\n", run.Label)
	}
	fmt.Fprintf(out, "Sequence: %s\n", run.Sequence)
	fmt.Fprintf(out, "Applied: %s (%d moves)\n", strings.Join(moves, " "), len(moves))
	if run.ErrorText != nil {
		fmt.Fprintln(out, st.errorS.Render("Error: "+*run.ErrorText))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, st.status.Render("Start"))
	fmt.Fprintln(out, st.renderRaw(run.Start))
	fmt.Fprintln(out, st.status.Render("End"))
	fmt.Fprintln(out, st.renderState(run.End))
	fmt.Fprintln(out, st.renderSolved(run.End))
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	db, repo, err := openHistory(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repo.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted run %s\n", args[0])
	return nil
}
