package export

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter writes the document as YAML.
type YAMLFormatter struct{}

// Format writes the document as a YAML mapping.
func (f *YAMLFormatter) Format(w io.Writer, doc *Document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
