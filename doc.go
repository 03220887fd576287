// Package cachekey derives deterministic, collision-resistant cache keys
// from an ordered list of heterogeneous input values.
//
// Components:
//   - Deriver: canonicalizes inputs into one separator-joined string,
//     optionally prefixed by a Label, optionally hashed into an uppercase
//     hex digest via a named algorithm (MD5..SHA-512, XXH64, BLAKE3, ...).
//   - codec.Codec: deterministic byte rendering for composite inputs
//     (maps, structs, slices). CBOR core-deterministic by default.
//   - textenc.Encoding: text-to-byte encoding for byte keys and digest
//     input. UTF-8 by default.
//
// Keys:
//
//	Key([]any{"Hello", 123})                      -> "Hello~123"
//	LabeledKey(label, false, []any{123, "Hello"}) -> "Widget~123~Hello"
//	KeyHash(SHA1, []any{"Hello"})                 -> "F7FF9E8B7BB2E09B..."
//
// A nil input list means "no key": it propagates as ok=false through every
// unlabeled operation without touching the algorithm cache. An empty list
// is a valid (empty) key. Labeled operations always produce a key because
// the label itself is the first element.
package cachekey
