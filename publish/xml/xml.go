// Package xml provides an XML encoding for schema catalogs.
//
// A catalog is a <catalog> document with one <entry> element per codec. The
// type, name, size, and fingerprint are attributes and the schema text is
// the element body:
//
//	<catalog>
//	  <entry type="struct:Point" name="Point" size="8" fingerprint="...">
//	    <schema>int32 x;int32 y;</schema>
//	  </entry>
//	</catalog>
package xml

import (
	"encoding/xml"

	"github.com/zoobzio/structify/publish"
)

// xmlEncoding implements publish.Encoding for XML.
type xmlEncoding struct{}

// New returns an XML catalog encoding.
func New() publish.Encoding {
	return &xmlEncoding{}
}

// ContentType returns the MIME type for XML.
func (e *xmlEncoding) ContentType() string {
	return "application/xml"
}

// Marshal encodes v as an indented XML document with a declaration header.
func (e *xmlEncoding) Marshal(v any) ([]byte, error) {
	body, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

// Unmarshal decodes an XML catalog into v.
func (e *xmlEncoding) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}
