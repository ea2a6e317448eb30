package licenses

import (
	"fmt"
	"strconv"
	"strings"
)

// Render substitutes author and year into template. Every occurrence of the author
// token is replaced first, then every occurrence of the year token. A nil
// placeholders value returns template unchanged.
func Render(template string, placeholders *Placeholders, author string, year int) string {
	if placeholders == nil {
		return template
	}
	rendered := strings.ReplaceAll(template, placeholders.Author, author)
	return strings.ReplaceAll(rendered, placeholders.Year, strconv.Itoa(year))
}

// Template returns the unrendered template text of a license.
func (c *Catalog) Template(license *License) (string, error) {
	if license == nil {
		return "", fmt.Errorf("license is required")
	}
	return c.store.Get(license.Template)
}

// RenderRaw returns the template text of a license without substitution.
func (c *Catalog) RenderRaw(license *License) (string, error) {
	return c.Template(license)
}

// Render returns the license text with author and year filled in.
// Licenses without placeholders ignore author and year.
func (c *Catalog) Render(license *License, author string, year int) (string, error) {
	if license == nil {
		return "", fmt.Errorf("license is required")
	}
	template, err := c.Template(license)
	if err != nil {
		return "", fmt.Errorf("render license %q: %w", license.ID, err)
	}
	return Render(template, license.Placeholders, author, year), nil
}

// RenderByID looks up id and renders it.
func (c *Catalog) RenderByID(id, author string, year int) (string, error) {
	license, err := c.Find(id)
	if err != nil {
		return "", err
	}
	return c.Render(license, author, year)
}
