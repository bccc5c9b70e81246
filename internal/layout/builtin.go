package layout

import (
	"embed"
	"fmt"
	"path"
)

//go:embed layouts/*.yaml
var builtinFS embed.FS

// Default is the layout dealt when none is requested.
const Default = "turtle"

func init() {
	entries, err := builtinFS.ReadDir("layouts")
	if err != nil {
		panic(fmt.Sprintf("layout: reading built-ins: %v", err))
	}
	for _, e := range entries {
		data, err := builtinFS.ReadFile(path.Join("layouts", e.Name()))
		if err != nil {
			panic(fmt.Sprintf("layout: reading %s: %v", e.Name(), err))
		}
		l, err := ParseYAML(data)
		if err != nil {
			panic(fmt.Sprintf("layout: parsing %s: %v", e.Name(), err))
		}
		Register(l)
	}
}
