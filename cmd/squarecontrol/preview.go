package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/squarecontrol/internal/catalog"
	"github.com/vovakirdan/squarecontrol/internal/level"
)

var flagPreviewSolution bool

var previewCmd = &cobra.Command{
	Use:   "preview [id]",
	Short: "Print levels as text boards",
	Long: `Print one level, or every level, as a text board preceded by
"<name>: <width>x<height>; t=<targets>; <depot letters>".

Board notation: "_" empty square, a number is a target, K Q R B N P are
black pieces (lowercase white) and "#" is a wall.

Examples:
  squarecontrol preview sc:1
  squarecontrol preview sc:42 --solution
  squarecontrol preview`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPreview,
}

func init() {
	previewCmd.Flags().BoolVar(&flagPreviewSolution, "solution", false, "Also print the reference solution of generated levels")
}

func runPreview(_ *cobra.Command, args []string) {
	e, err := loadEnv()
	exitOnErr(err)

	defs := e.catalog.All()
	if len(args) == 1 {
		def, err := e.catalog.Get(args[0])
		exitOnErr(err)
		defs = []catalog.Definition{def}
	}

	for i, def := range defs {
		if i > 0 {
			fmt.Println()
		}
		lvl, err := def.Build()
		exitOnErr(err)

		fmt.Printf("%s: %s\n", def.Name, level.Summary(lvl))
		fmt.Println(level.Format(lvl))

		if !flagPreviewSolution {
			continue
		}
		if sol, ok := def.Solution(); ok {
			fmt.Println("solution:")
			fmt.Println(level.Format(sol))
		}
	}
}
