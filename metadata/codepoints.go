package metadata

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/npillmayer/iconheaders"
)

// Codepoints parses line-oriented metadata with one glyph per line, as
// distributed with Material Design icon fonts:
//
//	arrow_back e5c4
//	arrow_forward e5c8
//
// Blank lines and lines starting with '#' are skipped. The format has no
// style tags, every glyph qualifies. Repeating a line is allowed, mapping a
// name to a second code point is not.
type Codepoints struct{}

// Parse implements Parser. Argument styles is ignored.
func (Codepoints) Parse(raw []byte, styles []string) (*Result, error) {
	c := newCollector()
	sc := bufio.NewScanner(bytes.NewReader(raw))
	lineno := 0
	names := make(map[string]string)
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: expected <name> <code point>, have %q",
				iconheaders.ErrMalformedMetadata, lineno, line)
		}
		cp := iconheaders.NormalizeCodePoint(fields[1])
		if prev, ok := names[fields[0]]; ok && prev != cp {
			return nil, fmt.Errorf("%w: line %d: glyph %q already mapped to U+%s",
				iconheaders.ErrMalformedMetadata, lineno, fields[0], prev)
		}
		names[fields[0]] = cp
		if err := c.add(fields[0], fields[1]); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", iconheaders.ErrMalformedMetadata, err)
	}
	return c.result(), nil
}
