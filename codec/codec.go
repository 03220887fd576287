// Package codec renders composite input values (maps, structs, slices) to
// deterministic bytes for key canonicalization. Equal values must encode
// identically on every call and every process: map insertion order, field
// order tricks, and runtime randomization must not leak into the output.
package codec

// Codec encodes a composite value to deterministic bytes.
type Codec interface {
	Encode(v any) ([]byte, error)
}
