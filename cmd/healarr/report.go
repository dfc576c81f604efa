package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/vmunix/healarr/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the most recent run's outcomes",
	RunE:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().Bool("all", false, "List every (item, slot) outcome, not just repairs")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	showAll, _ := cmd.Flags().GetBool("all")

	store, err := report.Open(cfg.Report.Path)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	run, err := store.LastRun(context.Background())
	if errors.Is(err, report.ErrNoRuns) {
		fmt.Println("No runs recorded yet. Start one with 'healarr run'.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Run %s started %s\n", run.ID, run.StartedAt.Local().Format("2006-01-02 15:04:05"))
	if run.FinishedAt.IsZero() {
		fmt.Println("Status: in progress (or interrupted)")
	} else {
		fmt.Printf("Finished after %s\n", run.FinishedAt.Sub(run.StartedAt).Round(time.Second))
	}
	fmt.Println()

	printSummary(run)

	rows := make([]report.Result, 0, len(run.Results))
	for _, res := range run.Results {
		if !showAll && res.Outcome == "healthy" {
			continue
		}
		rows = append(rows, res)
	}
	if len(rows) == 0 {
		fmt.Println("\nNothing needed repair.")
		return nil
	}

	fmt.Println()
	printResults(rows)
	return nil
}

func printSummary(run *report.Run) {
	counts := run.Summary()
	outcomes := make([]string, 0, len(counts))
	for outcome := range counts {
		outcomes = append(outcomes, outcome)
	}
	sort.Strings(outcomes)
	for _, outcome := range outcomes {
		fmt.Printf("%-14s %d\n", outcome, counts[outcome])
	}
}

func printResults(rows []report.Result) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		for _, r := range rows {
			fmt.Printf("%s\t%s\t%s\t%s\t%s\n", r.Library, r.Title, r.Slot, r.Outcome, r.Detail)
		}
		return
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Library", "Title", "Slot", "Outcome", "Detail"})
	for _, r := range rows {
		tw.AppendRow(table.Row{r.Library, r.Title, r.Slot, r.Outcome, r.Detail})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 48},
		{Number: 5, WidthMax: 40, Align: text.AlignLeft},
	})
	fmt.Println(tw.Render())
}
