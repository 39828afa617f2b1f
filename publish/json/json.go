// Package json provides a JSON encoding for schema catalogs.
//
// Catalogs are written indented, one entry object per codec, so published
// layouts can be diffed and reviewed alongside the code that defines them:
//
//	{
//	  "entries": [
//	    {"type": "struct:Point", "name": "Point", "schema": "int32 x;int32 y;", ...}
//	  ]
//	}
package json

import (
	"encoding/json"

	"github.com/zoobzio/structify/publish"
)

// indent is the per-level indentation of encoded catalogs.
const indent = "  "

// jsonEncoding implements publish.Encoding for JSON.
type jsonEncoding struct{}

// New returns a JSON catalog encoding.
func New() publish.Encoding {
	return &jsonEncoding{}
}

// ContentType returns the MIME type for JSON.
func (e *jsonEncoding) ContentType() string {
	return "application/json"
}

// Marshal encodes v as indented JSON.
func (e *jsonEncoding) Marshal(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", indent)
}

// Unmarshal decodes a JSON catalog into v.
func (e *jsonEncoding) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
