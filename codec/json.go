package codec

import "encoding/json"

// JSON renders values with encoding/json, which sorts map keys and emits
// struct fields in declaration order - deterministic for the same build.
// Prefer CBOR when keys must stay stable across struct tag or field-order
// refactors.
type JSON struct{}

var _ Codec = JSON{}

func (JSON) Encode(v any) ([]byte, error) { return json.Marshal(v) }
