package export

import (
	"fmt"
	"io"
)

// PlainFormatter writes tab-separated color/scope pairs for scripting.
// Scopes without a foreground color are omitted.
type PlainFormatter struct{}

// Format writes one "color<TAB>scope" line per colored scope, colors in
// display order. Styled scopes that carry a foreground are included after
// the palette colors.
func (f *PlainFormatter) Format(w io.Writer, doc *Document) error {
	for _, c := range doc.Colors {
		for _, scope := range c.Scopes {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", c.Color, scope); err != nil {
				return err
			}
		}
	}
	for _, s := range doc.Styles {
		if s.Color == "" {
			continue
		}
		for _, scope := range s.Scopes {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", s.Color, scope); err != nil {
				return err
			}
		}
	}
	return nil
}
