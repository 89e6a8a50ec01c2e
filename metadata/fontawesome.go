package metadata

import (
	"fmt"

	"github.com/npillmayer/iconheaders"
	"gopkg.in/yaml.v3"
)

// FontAwesome parses the YAML metadata of Font Awesome fonts
// (metadata/icons.yml). The document maps glyph names to records like
//
//	arrow-left:
//	  styles:
//	    - solid
//	  unicode: f060
//
// Other fields of a record are ignored. A glyph name must not occur twice.
type FontAwesome struct{}

type faIcon struct {
	Styles  []string `yaml:"styles"`
	Unicode string   `yaml:"unicode"`
}

// Parse implements Parser. A glyph is emitted once for every accepted style
// it carries, minus duplicates, so every qualifying glyph appears once.
func (FontAwesome) Parse(raw []byte, styles []string) (*Result, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", iconheaders.ErrMalformedMetadata, err)
	}
	c := newCollector()
	if doc.Kind == 0 || len(doc.Content) == 0 { // empty document
		return c.result(), nil
	}
	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return c.result(), nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: expected a mapping of glyph names at line %d",
			iconheaders.ErrMalformedMetadata, root.Line)
	}
	accepted := make(map[string]bool, len(styles))
	for _, s := range styles {
		accepted[s] = true
	}
	keys := make(map[string]int, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i].Value
		if line, dup := keys[key]; dup {
			return nil, fmt.Errorf("%w: glyph %q at line %d already defined at line %d",
				iconheaders.ErrMalformedMetadata, key, root.Content[i].Line, line)
		}
		keys[key] = root.Content[i].Line
		var icon faIcon
		if err := root.Content[i+1].Decode(&icon); err != nil {
			return nil, fmt.Errorf("%w: glyph %q: %v", iconheaders.ErrMalformedMetadata, key, err)
		}
		for _, style := range icon.Styles {
			if !accepted[style] {
				continue
			}
			if icon.Unicode == "" {
				return nil, fmt.Errorf("%w: glyph %q has no unicode entry", iconheaders.ErrMalformedMetadata, key)
			}
			if err := c.add(key, icon.Unicode); err != nil {
				return nil, err
			}
		}
	}
	return c.result(), nil
}
