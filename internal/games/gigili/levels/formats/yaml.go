// Package formats provides maze file format parsers.
package formats

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/gigili/internal/games/gigili/core"
)

// ErrInvalidLevel wraps every validation failure of a maze file.
var ErrInvalidLevel = errors.New("invalid maze")

// YAMLLevel represents the YAML structure for a maze file.
type YAMLLevel struct {
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description,omitempty"`
	Layout      []string          `yaml:"layout"`
	Metadata    map[string]string `yaml:"metadata,omitempty"`
}

// Level represents a parsed and validated maze file.
type Level struct {
	ID          string
	Name        string
	Description string
	Layout      []string
	Metadata    map[string]string
}

// ParseYAML parses and validates a YAML maze file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	level := Level{
		ID:          strings.TrimSpace(yl.ID),
		Name:        strings.TrimSpace(yl.Name),
		Description: yl.Description,
		Layout:      yl.Layout,
		Metadata:    yl.Metadata,
	}
	if level.Name == "" {
		level.Name = level.ID
	}

	if err := level.Validate(); err != nil {
		return Level{}, err
	}
	return level, nil
}

// Validate checks the id and layout: non-empty, rectangular, known glyphs,
// at most one player spawn and at least one enemy spawn.
func (l *Level) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidLevel)
	}
	if len(l.Layout) == 0 || len(l.Layout[0]) == 0 {
		return fmt.Errorf("%w %s: empty layout", ErrInvalidLevel, l.ID)
	}

	width := len(l.Layout[0])
	players, enemies := 0, 0
	for y, row := range l.Layout {
		if len(row) != width {
			return fmt.Errorf("%w %s: row %d has width %d, expected %d", ErrInvalidLevel, l.ID, y, len(row), width)
		}
		for x, ch := range row {
			if _, ok := core.CellForGlyph(ch); !ok {
				return fmt.Errorf("%w %s: unknown glyph %q at (%d,%d)", ErrInvalidLevel, l.ID, ch, x, y)
			}
			switch ch {
			case core.GlyphPlayerSpawn:
				players++
			case core.GlyphEnemySpawn:
				enemies++
			}
		}
	}
	if players > 1 {
		return fmt.Errorf("%w %s: %d player spawns, expected at most one", ErrInvalidLevel, l.ID, players)
	}
	if enemies == 0 {
		return fmt.Errorf("%w %s: no enemy spawn", ErrInvalidLevel, l.ID)
	}
	return nil
}

// ToMaze builds the maze grid from the layout.
func (l *Level) ToMaze() (*core.Maze, error) {
	return core.ParseGrid(l.Layout)
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
