// Package catalog builds the ordered list of playable levels from YAML
// definitions: hand-made templates and runs of seeded generated boards.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"strconv"

	"github.com/vovakirdan/squarecontrol/internal/level"
)

//go:embed levels/default.yaml
var defaultYAML []byte

// ErrLevelNotFound is returned when an id is not in the catalog.
var ErrLevelNotFound = errors.New("level not found")

// LevelType is the puzzle kind of a definition.
const LevelType = "square-control"

// Definition is one catalog level. Exactly one of Template and Options is set.
type Definition struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Tag      string          `json:"tag,omitempty"`
	Template *level.Template `json:"template,omitempty"`
	Options  *level.Options  `json:"options,omitempty"`
}

// Generated reports whether the level comes from the generator.
func (d Definition) Generated() bool {
	return d.Options != nil
}

// Build produces the playable level: templates as written, generated
// levels with their solution pieces removed.
func (d Definition) Build() (level.Level, error) {
	switch {
	case d.Template != nil:
		l, err := d.Template.Build()
		if err != nil {
			return level.Level{}, fmt.Errorf("catalog: %s: %w", d.ID, err)
		}
		return l, nil
	case d.Options != nil:
		return level.Generate(*d.Options).Puzzle(), nil
	default:
		return level.Level{}, fmt.Errorf("catalog: %s: empty definition", d.ID)
	}
}

// Solution returns the reference solution of a generated level.
// Templates have none and report false.
func (d Definition) Solution() (level.Level, bool) {
	if d.Options == nil {
		return level.Level{}, false
	}
	return level.Generate(*d.Options), true
}

// Summary is a short listing entry.
type Summary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Completed bool   `json:"isCompleted"`
}

// Catalog is an immutable ordered set of definitions.
type Catalog struct {
	defs  []Definition
	index map[string]int
}

// New labels defs in order ("sc:1", "Level 1", ...) and indexes them.
func New(defs []Definition) *Catalog {
	c := &Catalog{
		defs:  make([]Definition, len(defs)),
		index: make(map[string]int, len(defs)),
	}
	for i, d := range defs {
		n := i + 1
		d.ID = "sc:" + strconv.Itoa(n)
		d.Name = "Level " + strconv.Itoa(n)
		if d.Tag != "" {
			d.Name += " - " + d.Tag
		}
		c.defs[i] = d
		c.index[d.ID] = i
	}
	return c
}

// Default returns the built-in curriculum.
func Default() (*Catalog, error) {
	return Load()
}

// Load builds the built-in curriculum followed by the levels in paths.
// Paths may be files or directories. One seed sequence runs through all of them.
func Load(paths ...string) (*Catalog, error) {
	seeds := NewSeedSequence(0)

	defs, err := Parse(defaultYAML, seeds)
	if err != nil {
		return nil, fmt.Errorf("catalog: built-in levels: %w", err)
	}

	loader := NewLoader(paths...)
	extra, err := loader.LoadAll(seeds)
	if err != nil {
		return nil, err
	}
	return New(append(defs, extra...)), nil
}

// Len returns the number of levels.
func (c *Catalog) Len() int {
	return len(c.defs)
}

// All returns every definition in order.
func (c *Catalog) All() []Definition {
	return append([]Definition(nil), c.defs...)
}

// First returns the id of the first level.
func (c *Catalog) First() (string, bool) {
	if len(c.defs) == 0 {
		return "", false
	}
	return c.defs[0].ID, true
}

// Get returns the definition with the given id.
func (c *Catalog) Get(id string) (Definition, error) {
	i, ok := c.index[id]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %s", ErrLevelNotFound, id)
	}
	return c.defs[i], nil
}

// Next returns the id following id, or false at the end or for unknown ids.
func (c *Catalog) Next(id string) (string, bool) {
	i, ok := c.index[id]
	if !ok || i+1 >= len(c.defs) {
		return "", false
	}
	return c.defs[i+1].ID, true
}

// Prev returns the id preceding id, or false at the start or for unknown ids.
func (c *Catalog) Prev(id string) (string, bool) {
	i, ok := c.index[id]
	if !ok || i == 0 {
		return "", false
	}
	return c.defs[i-1].ID, true
}

// Summaries lists every level with its completion flag.
func (c *Catalog) Summaries(completed map[string]bool) []Summary {
	out := make([]Summary, len(c.defs))
	for i, d := range c.defs {
		out[i] = Summary{ID: d.ID, Name: d.Name, Type: LevelType, Completed: completed[d.ID]}
	}
	return out
}
