package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/squarecontrol/internal/catalog"
	"github.com/vovakirdan/squarecontrol/internal/chess"
	"github.com/vovakirdan/squarecontrol/internal/config"
	"github.com/vovakirdan/squarecontrol/internal/level"
)

var (
	flagGenSeed       int64
	flagGenSquares    int
	flagGenTargets    int
	flagGenZeroPct    float64
	flagGenPieces     int
	flagGenMaxTypes   int
	flagGenTypes      []string
	flagGenDifficulty string
	flagGenFormat     string
	flagGenSolution   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a level",
	Long: `Generate one level from a seed and options. The same seed and
options always produce the same level.

Difficulty presets come from the "generator" section of the config.
Explicit option flags override the preset.

Formats:
  text  - summary line and text board
  yaml  - a catalog file with the level as a template
  json  - seed, summary, puzzle and solution

Examples:
  squarecontrol generate --seed 7
  squarecontrol generate --difficulty hard --format yaml
  squarecontrol generate --squares 25 --pieces 4 --types rook,bishop --solution`,
	Args: cobra.NoArgs,
	Run:  runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.Int64Var(&flagGenSeed, "seed", 0, "Generator seed (default: time based)")
	f.IntVar(&flagGenSquares, "squares", 0, "Approximate board area")
	f.IntVar(&flagGenTargets, "targets", 0, "Maximum number of targets")
	f.Float64Var(&flagGenZeroPct, "zero-pct", 0, "Fraction of free cells that become zero targets (0-1)")
	f.IntVar(&flagGenPieces, "pieces", 0, "Number of pieces")
	f.IntVar(&flagGenMaxTypes, "max-types", 0, "Maximum number of distinct piece types")
	f.StringSliceVar(&flagGenTypes, "types", nil, "Allowed piece types (king,queen,rook,bishop,knight,pawn)")
	f.StringVar(&flagGenDifficulty, "difficulty", "", "Preset: easy, normal, hard")
	f.StringVar(&flagGenFormat, "format", "text", "Output format: text, yaml, json")
	f.BoolVar(&flagGenSolution, "solution", false, "Include the solution (text format)")
}

// generateOptions merges the difficulty preset with explicitly set flags.
func generateOptions(cmd *cobra.Command, presets config.GeneratorConfig) (level.Options, error) {
	flags := cmd.Flags()

	seed := flagGenSeed
	if !flags.Changed("seed") {
		seed = time.Now().UnixNano()
	}

	opts := level.Options{Seed: seed}
	if flagGenDifficulty != "" {
		d, err := config.ParseDifficulty(flagGenDifficulty)
		if err != nil {
			return level.Options{}, err
		}
		opts = presets.Preset(d).Options(seed)
	}

	if flags.Changed("squares") {
		opts.Board.SquareCount = level.Int(flagGenSquares)
	}
	if flags.Changed("targets") {
		opts.Board.TargetCount = level.Int(flagGenTargets)
	}
	if flags.Changed("zero-pct") {
		opts.Board.ZeroTargetPercentage = level.Float(flagGenZeroPct)
	}
	if flags.Changed("pieces") {
		opts.Pieces.Count = level.Int(flagGenPieces)
	}
	if flags.Changed("max-types") {
		opts.Pieces.MaxTypes = level.Int(flagGenMaxTypes)
	}
	for _, name := range flagGenTypes {
		t, err := chess.ParsePieceType(name)
		if err != nil {
			return level.Options{}, err
		}
		opts.Pieces.Types = append(opts.Pieces.Types, t)
	}
	return opts, nil
}

func runGenerate(cmd *cobra.Command, _ []string) {
	e, err := loadEnv()
	exitOnErr(err)

	opts, err := generateOptions(cmd, e.cfg.Generator)
	exitOnErr(err)

	solution := level.Generate(opts)
	puzzle := solution.Puzzle()
	summary := level.Summary(puzzle)

	switch flagGenFormat {
	case "text":
		fmt.Printf("seed %d: %s\n", opts.Seed, summary)
		fmt.Println(level.Format(puzzle))
		if flagGenSolution {
			fmt.Println("solution:")
			fmt.Println(level.Format(solution))
		}

	case "yaml":
		tpl := level.TemplateOf(puzzle)
		out, err := yaml.Marshal(catalog.File{Levels: []catalog.Entry{{
			Tag:      fmt.Sprintf("seed %d; %s", opts.Seed, summary),
			Template: &tpl,
		}}})
		exitOnErr(err)
		os.Stdout.Write(out)

	case "json":
		out, err := json.MarshalIndent(struct {
			Seed     int64       `json:"seed"`
			Summary  string      `json:"summary"`
			Level    level.Level `json:"level"`
			Solution level.Level `json:"solution"`
		}{opts.Seed, summary, puzzle, solution}, "", "  ")
		exitOnErr(err)
		fmt.Println(string(out))

	default:
		exitOnErr(fmt.Errorf("unknown format %q (want text, yaml or json)", flagGenFormat))
	}
}
