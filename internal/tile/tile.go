// Package tile defines tile faces and the matching relation between them.
package tile

import "fmt"

// Type is the face of a tile.
// Tiles of a wildcard group (MatchAny) match any tile of the same group;
// all other tiles match only the same group and index.
// The zero Type is "untyped": it never matches anything.
type Type struct {
	Group    string `yaml:"group"`
	Index    int    `yaml:"index"`
	MatchAny bool   `yaml:"match_any,omitempty"`
}

// Valid reports whether t is a real face rather than the untyped zero value.
func (t Type) Valid() bool {
	return t.Group != ""
}

// Matches reports whether two faces can be removed as a pair.
// The relation is symmetric: either side being a wildcard is enough.
func (t Type) Matches(other Type) bool {
	if !t.Valid() || !other.Valid() {
		return false
	}
	if t.Group != other.Group {
		return false
	}
	return t.MatchAny || other.MatchAny || t.Index == other.Index
}

// Key returns the matching key: tiles with equal keys match each other.
// Wildcard groups collapse to the group name.
func (t Type) Key() string {
	if !t.Valid() {
		return ""
	}
	if t.MatchAny {
		return t.Group
	}
	return fmt.Sprintf("%s-%d", t.Group, t.Index)
}

func (t Type) String() string {
	if !t.Valid() {
		return "untyped"
	}
	return fmt.Sprintf("%s-%d", t.Group, t.Index)
}
