package codec

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// CBOR is the default Codec: a tagged binary encoding covering booleans,
// numbers, strings, byte slices, time values, slices, maps, and exported
// struct fields.
type CBOR struct{}

// Encode marshals value into CBOR bytes.
func (CBOR) Encode(value any) ([]byte, error) {
	data, err := cbor.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encode cache value: %w", err)
	}
	return data, nil
}

// Decode unmarshals CBOR bytes into dest, which must be a pointer.
func (CBOR) Decode(data []byte, dest any) error {
	if err := cbor.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("decode cache value: %w", err)
	}
	return nil
}

var _ Codec = CBOR{}
