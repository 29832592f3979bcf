package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/squarecontrol/internal/storage"
)

var flagStatsLimit int

var statsCmd = &cobra.Command{
	Use:   "stats [id]",
	Short: "Show best solves",
	Long: `Show the fewest-move solves recorded in the SQLite store.

Without an id, prints the best move count of every solved level.

Examples:
  squarecontrol stats
  squarecontrol stats sc:7 --limit 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func init() {
	statsCmd.Flags().IntVarP(&flagStatsLimit, "limit", "n", 10, "Number of solves to show")
}

func runStats(cmd *cobra.Command, args []string) {
	e, err := loadEnv()
	exitOnErr(err)

	kv, err := e.openStore(cmd.Context())
	exitOnErr(err)
	defer kv.Close()

	store, ok := kv.(*storage.SQLiteStore)
	if !ok {
		exitOnErr(errors.New("solve history needs the sqlite storage driver"))
	}

	ctx := cmd.Context()
	if len(args) == 1 {
		def, err := e.catalog.Get(args[0])
		exitOnErr(err)

		entries, err := store.BestSolves(ctx, def.ID, flagStatsLimit)
		exitOnErr(err)

		fmt.Printf("%s\n\n", def.Name)
		if len(entries) == 0 {
			fmt.Println("No solves yet.")
			return
		}
		fmt.Printf("%-4s %-6s %s\n", "#", "Moves", "Date")
		for i, entry := range entries {
			fmt.Printf("%-4d %-6d %s\n", i+1, entry.Moves, entry.CreatedAt.Format("2006-01-02 15:04"))
		}
		return
	}

	best, err := store.BestMoves(ctx)
	exitOnErr(err)
	if len(best) == 0 {
		fmt.Println("No solves yet.")
		return
	}

	fmt.Printf("%-10s %-6s %s\n", "ID", "Moves", "Name")
	for _, def := range e.catalog.All() {
		moves, ok := best[def.ID]
		if !ok {
			continue
		}
		fmt.Printf("%-10s %-6d %s\n", def.ID, moves, def.Name)
	}
}
