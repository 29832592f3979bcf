package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/squarecontrol/internal/level"
)

// File is the YAML layout of a catalog file.
type File struct {
	Levels []Entry `yaml:"levels"`
}

// Entry is either a template or a run of generated levels.
type Entry struct {
	Tag      string          `yaml:"tag,omitempty"`
	Template *level.Template `yaml:"template,omitempty"`
	Repeat   int             `yaml:"repeat,omitempty"`
	Generate *Variant        `yaml:"generate,omitempty"`
	Variants []Variant       `yaml:"variants,omitempty"`
}

// Variant is one set of generator options. Seed, when set, overrides the sequence.
type Variant struct {
	Tag    string             `yaml:"tag,omitempty"`
	Seed   *int64             `yaml:"seed,omitempty"`
	Board  level.BoardOptions `yaml:"board,omitempty"`
	Pieces level.PieceOptions `yaml:"pieces,omitempty"`
}

// Parse decodes a catalog file and expands it into unlabeled definitions.
func Parse(data []byte, seeds *SeedSequence) ([]Definition, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return Expand(f.Levels, seeds)
}

// Expand turns entries into definitions, drawing one seed per generated level.
// Variants are cycled: the i-th repetition uses Variants[i % len(Variants)].
func Expand(entries []Entry, seeds *SeedSequence) ([]Definition, error) {
	var defs []Definition
	for i, e := range entries {
		kinds := 0
		if e.Template != nil {
			kinds++
		}
		if e.Generate != nil {
			kinds++
		}
		if len(e.Variants) > 0 {
			kinds++
		}
		if kinds != 1 {
			return nil, fmt.Errorf("entry %d: need exactly one of template, generate or variants", i)
		}

		if e.Template != nil {
			if e.Repeat > 1 {
				return nil, fmt.Errorf("entry %d: templates cannot repeat", i)
			}
			if _, err := e.Template.Build(); err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}
			tpl := *e.Template
			defs = append(defs, Definition{Tag: e.Tag, Template: &tpl})
			continue
		}

		variants := e.Variants
		if e.Generate != nil {
			variants = []Variant{*e.Generate}
		}
		repeat := max(e.Repeat, 1)
		for n := range repeat {
			v := variants[n%len(variants)]
			opts := level.Options{Seed: seeds.Next(), Board: v.Board, Pieces: v.Pieces}
			if v.Seed != nil {
				opts.Seed = *v.Seed
			}
			tag := v.Tag
			if tag == "" {
				tag = e.Tag
			}
			defs = append(defs, Definition{Tag: tag, Options: &opts})
		}
	}
	return defs, nil
}
