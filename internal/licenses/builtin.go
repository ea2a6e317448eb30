package licenses

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed data/licenses.yaml data/templates/*
var builtinFS embed.FS

// BuiltinFS returns the bundled catalog resources rooted at the descriptor file.
func BuiltinFS() fs.FS {
	sub, err := fs.Sub(builtinFS, "data")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(fmt.Sprintf("licenses: builtin data: %v", err))
	}
	return sub
}

// LoadBuiltinCatalog returns the catalog bundled with licensit.
func LoadBuiltinCatalog() (*Catalog, error) {
	catalog, err := LoadCatalog(BuiltinFS())
	if err != nil {
		return nil, fmt.Errorf("load builtin licenses: %w", err)
	}
	return catalog, nil
}
