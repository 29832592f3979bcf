package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/squarecontrol/internal/core"
	"github.com/vovakirdan/squarecontrol/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [id]",
	Short: "Play in the terminal",
	Long: `Start the puzzle. Without an id the level list opens first.

Controls:
  Arrows/hjkl  - Move the cursor (down from the board enters the depot)
  Enter/Space  - Pick up a piece, drop it on the cursor
  Esc          - Drop the selection
  Mouse        - Click to pick and drop, right click to deselect
  R            - Reset the level
  N/P          - Next / previous level
  B            - Back to the level list
  Q/Ctrl+C     - Quit

Examples:
  squarecontrol play
  squarecontrol play sc:25`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	e, err := loadEnv()
	exitOnErr(err)

	levelID := ""
	if len(args) == 1 {
		levelID = args[0]
		if _, err := e.catalog.Get(levelID); err != nil {
			exitOnErr(err)
		}
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	deps, closeStore := e.deps(cmd.Context())
	runErr := tui.Run(deps, cfg, levelID)
	closeStore()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running puzzle: %v\n", runErr)
		os.Exit(1)
	}
}
