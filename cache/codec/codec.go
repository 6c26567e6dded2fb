// Package codec encodes cache values into a self-describing byte form so
// any backend can store them as opaque blobs.
package codec

// Codec converts arbitrary structured values to and from bytes. Encodings
// must be self-describing enough to reconstruct the value's shape on
// decode. Failures propagate to the caller; the cache layer performs no
// recovery or partial decoding.
type Codec interface {
	Encode(value any) ([]byte, error)
	Decode(data []byte, dest any) error
}
