package export

import (
	"encoding/json"
	"io"
)

// JSONFormatter writes the document as indented JSON.
type JSONFormatter struct{}

// Format writes the document as a JSON object.
func (f *JSONFormatter) Format(w io.Writer, doc *Document) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}
