// Package msgpack provides a MessagePack encoding for schema catalogs.
//
// MessagePack keeps the catalog compact for transports that announce schemas
// in-band before the first packed value. Entries are encoded as maps keyed by
// their msgpack tags so decoders do not depend on field order.
package msgpack

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/zoobzio/structify/publish"
)

// msgpackEncoding implements publish.Encoding for MessagePack.
type msgpackEncoding struct{}

// New returns a MessagePack catalog encoding.
func New() publish.Encoding {
	return &msgpackEncoding{}
}

// ContentType returns the MIME type for MessagePack.
func (e *msgpackEncoding) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack, using compact integer widths for sizes.
func (e *msgpackEncoding) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.UseCompactInts(true)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a MessagePack catalog into v.
func (e *msgpackEncoding) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
