package feature

import (
	_ "embed"
	"fmt"
)

//go:embed terrain.yaml
var defaultTable []byte

// Default returns a registry built from the terrain table shipped with the
// binary. It panics if the embedded table is malformed.
func Default() *Registry {
	reg, err := Parse(defaultTable)
	if err != nil {
		panic(fmt.Sprintf("embedded terrain table: %v", err))
	}
	return reg
}

// LoadOrDefault loads the table at path, or the embedded table when path is empty
func LoadOrDefault(path string) (*Registry, error) {
	if path == "" {
		return Parse(defaultTable)
	}
	return Load(path)
}
