package layout

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/solitaire/internal/board"
)

// yamlLayout is the on-disk form of a layout.
//
//	id: turtle
//	name: Turtle
//	positions:
//	  - [2, 0]
//	  - [4, 0]
type yamlLayout struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description,omitempty"`
	Positions   [][]int `yaml:"positions"`
}

var errInvalid = errors.New("layout: invalid definition")

// ParseYAML parses a layout definition.
func ParseYAML(data []byte) (Layout, error) {
	var yl yamlLayout
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Layout{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if yl.ID == "" {
		return Layout{}, fmt.Errorf("%w: missing id", errInvalid)
	}
	if len(yl.Positions) == 0 {
		return Layout{}, fmt.Errorf("%w: %q has no positions", errInvalid, yl.ID)
	}

	positions := make([]board.Position, len(yl.Positions))
	for i, p := range yl.Positions {
		if len(p) != 2 {
			return Layout{}, fmt.Errorf("%w: %q position %d has %d coordinates", errInvalid, yl.ID, i, len(p))
		}
		if p[0] < 0 || p[1] < 0 {
			return Layout{}, fmt.Errorf("%w: %q position %d is negative", errInvalid, yl.ID, i)
		}
		positions[i] = board.Position{X: p[0], Y: p[1]}
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}
	return Layout{
		ID:          yl.ID,
		Name:        name,
		Description: yl.Description,
		Positions:   positions,
	}, nil
}

// MarshalYAML encodes a layout in the on-disk form.
func MarshalYAML(l Layout) ([]byte, error) {
	yl := yamlLayout{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		Positions:   make([][]int, len(l.Positions)),
	}
	for i, p := range l.Positions {
		yl.Positions[i] = []int{p.X, p.Y}
	}
	return yaml.Marshal(yl)
}
