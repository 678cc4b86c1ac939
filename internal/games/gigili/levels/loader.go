// Package levels provides maze loading for Gigili.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/vovakirdan/gigili/internal/games/gigili/core"
	"github.com/vovakirdan/gigili/internal/games/gigili/levels/formats"
)

//go:embed mazes/*.yaml
var builtinFS embed.FS

// ErrUnknownMaze is returned when no maze has the requested ID.
var ErrUnknownMaze = errors.New("unknown maze")

// Level represents a complete maze definition.
type Level struct {
	ID          string
	Name        string
	Description string
	Maze        *core.Maze
	Metadata    map[string]string
	FilePath    string
}

// Order returns the menu position from the "order" metadata key.
// Mazes without one sort after those with one.
func (l *Level) Order() int {
	if n, err := strconv.Atoi(l.Metadata["order"]); err == nil {
		return n
	}
	return math.MaxInt
}

// Loader loads maze files from a file system.
type Loader struct {
	FS   fs.FS
	Root string
}

// NewLoader creates a loader rooted at root inside fsys.
func NewLoader(fsys fs.FS, root string) *Loader {
	return &Loader{FS: fsys, Root: root}
}

// NewDirLoader creates a loader for a directory on disk.
func NewDirLoader(dir string) *Loader {
	return &Loader{FS: os.DirFS(dir), Root: "."}
}

// Builtin returns a loader for the mazes compiled into the binary.
func Builtin() *Loader {
	return NewLoader(builtinFS, "mazes")
}

// LoadAll recursively scans and loads all maze files.
// Returns mazes sorted by order, then ID. Invalid files are skipped.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.FS, l.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		oi, oj := levels[i].Order(), levels[j].Order()
		if oi != oj {
			return oi < oj
		}
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads a single maze file.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading %s: %w", p, err)
	}

	ext := strings.ToLower(path.Ext(p))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("levels: parsing %s: %w", p, err)
	}

	return newLevel(parsed, p)
}

// LoadByID loads a specific maze by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("levels: %w: %s", ErrUnknownMaze, id)
}

// ListIDs returns all maze IDs in menu order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// ParseYAML parses a YAML maze document into a Level.
func ParseYAML(data []byte) (Level, error) {
	parsed, err := formats.ParseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("levels: %w", err)
	}
	return newLevel(parsed, "")
}

// newLevel builds the maze grid for a parsed file.
func newLevel(parsed formats.Level, file string) (Level, error) {
	maze, err := parsed.ToMaze()
	if err != nil {
		return Level{}, fmt.Errorf("levels: building %s: %w", parsed.ID, err)
	}
	return Level{
		ID:          parsed.ID,
		Name:        parsed.Name,
		Description: parsed.Description,
		Maze:        maze,
		Metadata:    parsed.Metadata,
		FilePath:    file,
	}, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
