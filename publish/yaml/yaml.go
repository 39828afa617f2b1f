// Package yaml provides a YAML encoding for schema catalogs.
//
// YAML is the format for catalogs checked into configuration repositories:
//
//	entries:
//	  - type: struct:Point
//	    name: Point
//	    schema: int32 x;int32 y;
//	    size: 8
package yaml

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/zoobzio/structify/publish"
)

// yamlEncoding implements publish.Encoding for YAML.
type yamlEncoding struct{}

// New returns a YAML catalog encoding.
func New() publish.Encoding {
	return &yamlEncoding{}
}

// ContentType returns the MIME type for YAML.
func (e *yamlEncoding) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML with two-space indentation.
func (e *yamlEncoding) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a YAML catalog into v.
func (e *yamlEncoding) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
