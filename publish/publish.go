// Package publish builds schema catalogs for codecs so a transport can
// announce every layout a value depends on before sending packed bytes.
//
// A catalog lists the root codec first, followed by its nested codecs in
// first-seen order. Each entry carries the transport type string
// ("struct:" + type name), the schema text, the fixed size, and a
// fingerprint:
//
//	catalog := publish.Collect(outerStruct)
//	data, err := publish.Marshal(yaml.New(), outerStruct)
//
// Encodings live in subpackages: json, xml, yaml, msgpack, bson.
package publish

import (
	"encoding/xml"

	"github.com/zoobzio/structify"
)

// TypePrefix is prepended to a codec's type name to form its transport type.
const TypePrefix = "struct:"

// Encoding provides content-type aware marshaling of catalogs.
type Encoding interface {
	// ContentType returns the MIME type for this encoding (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// Entry describes one published schema.
type Entry struct {
	Type        string `json:"type" yaml:"type" msgpack:"type" bson:"type" xml:"type,attr"`
	Name        string `json:"name" yaml:"name" msgpack:"name" bson:"name" xml:"name,attr"`
	Schema      string `json:"schema" yaml:"schema" msgpack:"schema" bson:"schema" xml:"schema"`
	Size        int    `json:"size" yaml:"size" msgpack:"size" bson:"size" xml:"size,attr"`
	Fingerprint string `json:"fingerprint" yaml:"fingerprint" msgpack:"fingerprint" bson:"fingerprint" xml:"fingerprint,attr"`
}

// Catalog is the ordered set of schemas needed to decode a root codec.
type Catalog struct {
	XMLName xml.Name `json:"-" yaml:"-" msgpack:"-" bson:"-" xml:"catalog"`
	Entries []Entry  `json:"entries" yaml:"entries" msgpack:"entries" bson:"entries" xml:"entry"`
}

// Root returns the first entry, which describes the root codec.
func (c Catalog) Root() (Entry, bool) {
	if len(c.Entries) == 0 {
		return Entry{}, false
	}
	return c.Entries[0], true
}

// Find returns the entry whose codec type name is name.
func (c Catalog) Find(name string) (Entry, bool) {
	for _, e := range c.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Collect returns the catalog for root. No-op codecs publish nothing, and
// each type name appears once.
func Collect(root structify.Codec) Catalog {
	var catalog Catalog
	seen := make(map[string]bool)
	add := func(c structify.Codec) {
		if c.Size() == 0 && c.Schema() == "" {
			return
		}
		if seen[c.TypeName()] {
			return
		}
		seen[c.TypeName()] = true
		catalog.Entries = append(catalog.Entries, NewEntry(c))
	}

	add(root)
	for _, n := range root.Nested() {
		add(n)
	}
	return catalog
}

// NewEntry describes a single codec.
func NewEntry(c structify.Codec) Entry {
	return Entry{
		Type:        TypePrefix + c.TypeName(),
		Name:        c.TypeName(),
		Schema:      c.Schema(),
		Size:        c.Size(),
		Fingerprint: structify.Fingerprint(c),
	}
}

// Marshal encodes the catalog for root with enc.
func Marshal(enc Encoding, root structify.Codec) ([]byte, error) {
	catalog := Collect(root)
	data, err := enc.Marshal(&catalog)
	if err != nil {
		return nil, newEncodingError(ErrMarshal, enc.ContentType(), err)
	}
	return data, nil
}

// Unmarshal decodes a catalog encoded with enc.
func Unmarshal(enc Encoding, data []byte) (Catalog, error) {
	var catalog Catalog
	if err := enc.Unmarshal(data, &catalog); err != nil {
		return Catalog{}, newEncodingError(ErrUnmarshal, enc.ContentType(), err)
	}
	return catalog, nil
}

// Verify reports whether entry still matches c.
func Verify(entry Entry, c structify.Codec) bool {
	return entry.Name == c.TypeName() &&
		entry.Size == c.Size() &&
		entry.Schema == c.Schema() &&
		entry.Fingerprint == structify.Fingerprint(c)
}
