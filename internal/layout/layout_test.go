package layout

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/solitaire/internal/board"
)

func levelCounts(l Layout) []int {
	b := board.Build(l.Positions)
	var counts []int
	for _, tl := range b.Tiles() {
		for len(counts) <= tl.Z {
			counts = append(counts, 0)
		}
		counts[tl.Z]++
	}
	return counts
}

func TestBuiltinLayouts(t *testing.T) {
	tests := []struct {
		id     string
		tiles  int
		levels []int
	}{
		{"turtle", 144, []int{87, 36, 16, 4, 1}},
		{"mobile-turtle", 72, []int{44, 23, 4, 1}},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			l, err := Get(tc.id)
			if err != nil {
				t.Fatalf("Get(%q) failed: %v", tc.id, err)
			}
			if l.TileCount() != tc.tiles {
				t.Errorf("TileCount() = %d, expected %d", l.TileCount(), tc.tiles)
			}
			if got := levelCounts(l); !reflect.DeepEqual(got, tc.levels) {
				t.Errorf("tiles per level = %v, expected %v", got, tc.levels)
			}
		})
	}
}

func TestTurtleOrderIsPreserved(t *testing.T) {
	l, err := Get(Default)
	if err != nil {
		t.Fatalf("Get(Default) failed: %v", err)
	}

	first := l.Positions[0]
	last := l.Positions[len(l.Positions)-1]
	if first != (board.Position{X: 2, Y: 0}) {
		t.Errorf("first position = %+v, expected {2 0}", first)
	}
	if last != (board.Position{X: 13, Y: 7}) {
		t.Errorf("last position = %+v, expected {13 7}", last)
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("no-such-layout")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() err = %v, expected ErrNotFound", err)
	}
	if Exists("no-such-layout") {
		t.Error("Exists() = true for unknown layout")
	}
}

func TestGetReturnsCopy(t *testing.T) {
	l, _ := Get(Default)
	l.Positions[0] = board.Position{X: 99, Y: 99}

	again, _ := Get(Default)
	if again.Positions[0] == l.Positions[0] {
		t.Error("modifying a returned layout should not change the catalogue")
	}
}

func TestListSorted(t *testing.T) {
	infos := List()
	if len(infos) < 2 {
		t.Fatalf("List() returned %d layouts, expected at least 2", len(infos))
	}
	for i := 1; i < len(infos); i++ {
		if infos[i-1].ID >= infos[i].ID {
			t.Errorf("List() not sorted: %q before %q", infos[i-1].ID, infos[i].ID)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate id should panic")
		}
	}()
	Register(Layout{ID: Default})
}

func TestParseYAML(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{"valid", "id: row\nname: Row\npositions:\n  - [0, 0]\n  - [2, 0]\n", false},
		{"missing id", "positions:\n  - [0, 0]\n", true},
		{"no positions", "id: empty\n", true},
		{"short position", "id: bad\npositions:\n  - [1]\n", true},
		{"negative", "id: bad\npositions:\n  - [-2, 0]\n", true},
		{"not yaml", "id: [", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tc.data))
			if (err != nil) != tc.wantErr {
				t.Errorf("ParseYAML() err = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestParseYAMLDefaultsName(t *testing.T) {
	l, err := ParseYAML([]byte("id: row\npositions:\n  - [0, 0]\n"))
	if err != nil {
		t.Fatalf("ParseYAML() failed: %v", err)
	}
	if l.Name != "row" {
		t.Errorf("Name = %q, expected the id", l.Name)
	}
}

func TestMarshalYAMLKeepsOrder(t *testing.T) {
	orig, _ := Get("mobile-turtle")
	data, err := MarshalYAML(orig)
	if err != nil {
		t.Fatalf("MarshalYAML() failed: %v", err)
	}
	parsed, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML() failed: %v", err)
	}
	if !reflect.DeepEqual(parsed.Positions, orig.Positions) {
		t.Error("positions changed after encoding")
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b.yaml":         "id: b-row\npositions:\n  - [0, 0]\n  - [2, 0]\n",
		"nested/a.yml":   "id: a-tower\npositions:\n  - [0, 0]\n  - [0, 0]\n",
		"broken.yaml":    "id: [",
		"notes.txt":      "not a layout",
		"nested/c.json":  "{}",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	loaded, skipped, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir() failed: %v", err)
	}
	if len(loaded) != 2 || loaded[0].ID != "a-tower" || loaded[1].ID != "b-row" {
		t.Errorf("loaded = %+v, expected a-tower and b-row", loaded)
	}
	if len(skipped) != 1 {
		t.Errorf("skipped = %v, expected one broken file", skipped)
	}
	if loaded[0].FilePath == "" {
		t.Error("FilePath should be set for loaded layouts")
	}
}

func TestRegisterDir(t *testing.T) {
	dir := t.TempDir()
	content := "id: custom-pair\npositions:\n  - [0, 0]\n  - [2, 0]\n"
	if err := os.WriteFile(filepath.Join(dir, "pair.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := RegisterDir(dir); err != nil {
		t.Fatalf("RegisterDir() failed: %v", err)
	}
	l, err := Get("custom-pair")
	if err != nil {
		t.Fatalf("Get() after RegisterDir failed: %v", err)
	}
	if l.TileCount() != 2 {
		t.Errorf("TileCount() = %d, expected 2", l.TileCount())
	}
}

func TestLoadDirMissing(t *testing.T) {
	if _, _, err := LoadDir(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("LoadDir() on a missing directory should fail")
	}
}
