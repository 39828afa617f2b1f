// Package bson provides a BSON encoding for schema catalogs.
//
// BSON suits catalogs stored as documents, one document per root codec, with
// the entries array holding the root first and its nested codecs after.
package bson

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/zoobzio/structify/publish"
)

// bsonEncoding implements publish.Encoding for BSON.
type bsonEncoding struct{}

// New returns a BSON catalog encoding.
func New() publish.Encoding {
	return &bsonEncoding{}
}

// ContentType returns the MIME type for BSON.
func (e *bsonEncoding) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as a BSON document.
func (e *bsonEncoding) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes a BSON catalog document into v.
func (e *bsonEncoding) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}
