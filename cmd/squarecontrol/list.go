package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagListUnsolved bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all levels",
	Long:  `Shows every level of the catalog with its completion mark.`,
	Run:   runList,
}

func init() {
	listCmd.Flags().BoolVar(&flagListUnsolved, "unsolved", false, "Only list levels not yet solved")
}

func runList(cmd *cobra.Command, _ []string) {
	e, err := loadEnv()
	exitOnErr(err)

	ctx := cmd.Context()
	deps, closeStore := e.deps(ctx)
	defer closeStore()

	completed := map[string]bool{}
	if deps.Progress != nil {
		if state, err := deps.Progress.State(ctx); err == nil {
			completed = state
		} else {
			e.logger.Warn("could not load progress", "error", err)
		}
	}

	summaries := e.catalog.Summaries(completed)
	maxIDLen := 2 // "ID" header
	for _, s := range summaries {
		maxIDLen = max(maxIDLen, len(s.ID))
	}

	fmt.Printf("  %-*s  %-4s  %s\n", maxIDLen, "ID", "Done", "Name")
	fmt.Printf("  %-*s  %-4s  %s\n", maxIDLen, "--", "----", "----")

	solved := 0
	for _, s := range summaries {
		mark := ""
		if s.Completed {
			solved++
			if flagListUnsolved {
				continue
			}
			mark = "✓"
		}
		fmt.Printf("  %-*s  %-4s  %s\n", maxIDLen, s.ID, mark, s.Name)
	}

	fmt.Println()
	fmt.Printf("%d of %d levels solved.\n", solved, len(summaries))
	fmt.Println("Run 'squarecontrol play <id>' to play a level.")
}
