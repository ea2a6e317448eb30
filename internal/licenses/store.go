package licenses

import (
	"fmt"
	"io/fs"
	"unicode/utf8"
)

// TemplateStore holds literal template text keyed by relative path.
type TemplateStore struct {
	templates map[string]string
}

func newTemplateStore() *TemplateStore {
	return &TemplateStore{templates: make(map[string]string)}
}

// load reads ref from fsys into the store. Reading the same ref twice is a no-op.
func (s *TemplateStore) load(fsys fs.FS, ref string) error {
	if _, ok := s.templates[ref]; ok {
		return nil
	}
	data, err := fs.ReadFile(fsys, ref)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, ref, err)
	}
	if !utf8.Valid(data) {
		return fmt.Errorf("template %s is not valid UTF-8", ref)
	}
	s.templates[ref] = string(data)
	return nil
}

// Get returns the template text for ref.
func (s *TemplateStore) Get(ref string) (string, error) {
	text, ok := s.templates[ref]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, ref)
	}
	return text, nil
}

// Len returns the number of stored templates.
func (s *TemplateStore) Len() int {
	return len(s.templates)
}
