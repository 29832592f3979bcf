package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/squarecontrol/internal/progress"
	"github.com/vovakirdan/squarecontrol/internal/storage"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Export, reset or rate saved progress",
}

var progressExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print saved progress as JSON",
	Args:  cobra.NoArgs,
	Run:   runProgressExport,
}

var flagResetYes bool

var progressResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all saved progress and solves",
	Args:  cobra.NoArgs,
	Run:   runProgressReset,
}

var progressRateCmd = &cobra.Command{
	Use:     "rate <id> <rating>",
	Short:   "Store a rating for a level",
	Example: `  squarecontrol progress rate sc:4 4.5`,
	Args:    cobra.ExactArgs(2),
	Run:     runProgressRate,
}

func init() {
	progressResetCmd.Flags().BoolVarP(&flagResetYes, "yes", "y", false, "Do not ask for confirmation")

	progressCmd.AddCommand(progressExportCmd)
	progressCmd.AddCommand(progressResetCmd)
	progressCmd.AddCommand(progressRateCmd)
}

// openTracker loads the environment and opens the progress store.
func openTracker(cmd *cobra.Command) (*env, storage.KV, *progress.Tracker) {
	e, err := loadEnv()
	exitOnErr(err)
	kv, err := e.openStore(cmd.Context())
	exitOnErr(err)
	return e, kv, progress.New(kv)
}

func runProgressExport(cmd *cobra.Command, _ []string) {
	_, kv, tracker := openTracker(cmd)
	defer kv.Close()

	exp, err := tracker.Export(cmd.Context())
	exitOnErr(err)

	out, err := json.MarshalIndent(exp, "", "  ")
	exitOnErr(err)
	fmt.Println(string(out))
}

func runProgressReset(cmd *cobra.Command, _ []string) {
	if !flagResetYes {
		fmt.Print("Delete all progress? [y/N] ")
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return
		}
	}

	_, kv, tracker := openTracker(cmd)
	defer kv.Close()

	ctx := cmd.Context()
	exitOnErr(tracker.DeleteAll(ctx))
	if sq, ok := kv.(*storage.SQLiteStore); ok {
		exitOnErr(sq.ClearSolves(ctx))
	}
	fmt.Println("Progress deleted.")
}

func runProgressRate(cmd *cobra.Command, args []string) {
	rating, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid rating %q\n", args[1])
		os.Exit(1)
	}

	e, kv, tracker := openTracker(cmd)
	defer kv.Close()

	_, err = e.catalog.Get(args[0])
	exitOnErr(err)

	exitOnErr(tracker.SetRating(cmd.Context(), args[0], rating))
	fmt.Printf("Rated %s: %g\n", args[0], rating)
}
