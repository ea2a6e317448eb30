package licenses

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// DescriptorFile is the name of the descriptor resource at the catalog root.
const DescriptorFile = "licenses.yaml"

// ListingWidth is the column width of license ids in FormatListing.
const ListingWidth = 12

type descriptorFile struct {
	Licenses []*License `yaml:"licenses"`
}

// Catalog is the ordered, immutable set of available licenses.
type Catalog struct {
	licenses []*License
	index    map[string]*License
	store    *TemplateStore
}

// LoadCatalog parses the descriptor resource in fsys and loads every template it references.
func LoadCatalog(fsys fs.FS) (*Catalog, error) {
	if fsys == nil {
		return nil, fmt.Errorf("%w: filesystem is required", ErrCatalogInvalid)
	}

	data, err := fs.ReadFile(fsys, DescriptorFile)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrCatalogInvalid, DescriptorFile, err)
	}

	descriptors, err := parseDescriptors(data)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrCatalogInvalid, DescriptorFile, err)
	}

	catalog := &Catalog{
		licenses: make([]*License, 0, len(descriptors)),
		index:    make(map[string]*License, len(descriptors)),
		store:    newTemplateStore(),
	}

	for i, license := range descriptors {
		if license == nil {
			return nil, &DescriptorError{Index: i, Message: "empty descriptor"}
		}
		if err := license.validate(i); err != nil {
			return nil, err
		}
		if _, exists := catalog.index[license.ID]; exists {
			return nil, &DescriptorError{Index: i, ID: license.ID, Message: "duplicate id"}
		}
		if err := catalog.store.load(fsys, license.Template); err != nil {
			return nil, fmt.Errorf("%w: license %q: %v", ErrCatalogInvalid, license.ID, err)
		}
		if err := checkTokens(license, catalog.store); err != nil {
			return nil, err
		}

		catalog.licenses = append(catalog.licenses, license)
		catalog.index[license.ID] = license
	}

	if len(catalog.licenses) == 0 {
		return nil, fmt.Errorf("%w: no licenses declared", ErrCatalogInvalid)
	}

	return catalog, nil
}

func parseDescriptors(data []byte) ([]*License, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var file descriptorFile
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("descriptor resource is empty")
		}
		return nil, err
	}

	for _, license := range file.Licenses {
		if license == nil {
			continue
		}
		license.ID = strings.TrimSpace(license.ID)
		license.Name = strings.TrimSpace(license.Name)
		license.Template = strings.TrimSpace(license.Template)
	}
	return file.Licenses, nil
}

// checkTokens requires every placeholder token to occur in the license template.
func checkTokens(license *License, store *TemplateStore) error {
	if !license.HasPlaceholders() {
		return nil
	}
	text, err := store.Get(license.Template)
	if err != nil {
		return err
	}
	for _, token := range []string{license.Placeholders.Author, license.Placeholders.Year} {
		if !strings.Contains(text, token) {
			return &DescriptorError{ID: license.ID, Message: fmt.Sprintf("token %q does not occur in %s", token, license.Template)}
		}
	}
	return nil
}

// Find returns the license with exactly the given id.
func (c *Catalog) Find(id string) (*License, error) {
	if license, ok := c.index[id]; ok {
		return license, nil
	}
	return nil, &NotFoundError{ID: id, Valid: c.IDs()}
}

// Licenses returns all licenses in declaration order.
func (c *Catalog) Licenses() []*License {
	out := make([]*License, len(c.licenses))
	copy(out, c.licenses)
	return out
}

// IDs returns all license ids in declaration order.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.licenses))
	for _, license := range c.licenses {
		ids = append(ids, license.ID)
	}
	return ids
}

// Len returns the number of licenses in the catalog.
func (c *Catalog) Len() int {
	return len(c.licenses)
}

// FormatListing renders one "id name" line per license with ids padded to ListingWidth.
// Lines are separated by newlines; there is no trailing newline.
func (c *Catalog) FormatListing() string {
	lines := make([]string, 0, len(c.licenses))
	for _, license := range c.licenses {
		lines = append(lines, FormatListingLine(license))
	}
	return strings.Join(lines, "\n")
}

// FormatListingLine renders a single listing line.
func FormatListingLine(license *License) string {
	return fmt.Sprintf("%-*s%s", ListingWidth, license.ID, license.Name)
}
