// Package layout provides the catalogue of board layouts. Built-in layouts
// are embedded YAML files registered at init; more can be loaded from a
// directory at runtime.
package layout

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/solitaire/internal/board"
)

// ErrNotFound is returned when no layout has the requested id.
var ErrNotFound = errors.New("layout: not found")

// Layout is an ordered list of tile positions. The order decides how tiles
// stack, so it must be kept exactly as written.
type Layout struct {
	ID          string
	Name        string
	Description string
	Positions   []board.Position
	FilePath    string // empty for built-in layouts
}

// TileCount returns the number of tiles in the layout.
func (l Layout) TileCount() int {
	return len(l.Positions)
}

// Info is the summary shown in layout listings.
type Info struct {
	ID          string
	Name        string
	Description string
	Tiles       int
}

var (
	layouts = make(map[string]Layout)
	mu      sync.RWMutex
)

// Register adds a layout to the catalogue.
// Panics if a layout with the same id is already registered.
func Register(l Layout) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := layouts[l.ID]; exists {
		panic(fmt.Sprintf("layout: %q already registered", l.ID))
	}
	layouts[l.ID] = l
}

// Add registers a layout, replacing any earlier one with the same id.
// Used for layouts loaded from disk, which may override built-ins.
func Add(l Layout) {
	mu.Lock()
	defer mu.Unlock()
	layouts[l.ID] = l
}

// List returns all registered layouts, sorted by id.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(layouts))
	for _, l := range layouts {
		result = append(result, Info{
			ID:          l.ID,
			Name:        l.Name,
			Description: l.Description,
			Tiles:       l.TileCount(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Get returns the layout with the given id.
func Get(id string) (Layout, error) {
	mu.RLock()
	defer mu.RUnlock()

	l, ok := layouts[id]
	if !ok {
		return Layout{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	l.Positions = append([]board.Position(nil), l.Positions...)
	return l, nil
}

// Exists checks if a layout with the given id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := layouts[id]
	return ok
}
