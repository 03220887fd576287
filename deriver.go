package cachekey

import (
	"hash"
	"sync"

	c "github.com/unkn0wn-root/cachekey/codec"
	te "github.com/unkn0wn-root/cachekey/textenc"
)

// Deriver turns ordered input lists into deterministic cache keys. It holds
// no caller data between calls; its only mutable state is the lazily filled
// per-algorithm hasher cache. Safe for concurrent use.
//
// Canonical text keys are not injective: a string or []byte input that
// contains the separator canonicalizes the same as the split inputs
// ("a~b" vs "a", "b"). Pick a separator that cannot occur in your inputs,
// or use the hash variants over inputs you control, when that distinction
// matters.
type Deriver struct {
	sep   string
	enc   te.Encoding
	codec c.Codec
	algs  map[Algorithm]func() hash.Hash
	log   Logger

	// mu guards hashers and serializes Reset/Write/Sum on the cached
	// instances, which are stateful.
	mu      sync.Mutex
	hashers map[Algorithm]hash.Hash
}

// Key canonicalizes inputs into one separator-joined string.
// ok is false iff inputs is nil ("no key"). An empty list yields "" with
// ok=true; the separator appears only between adjacent elements, never
// around a single one.
func (d *Deriver) Key(inputs []any) (string, bool) {
	return d.canonicalize(inputs, "", false)
}

// LabeledKey canonicalizes inputs with the label as the first element.
// qualified selects label.Qualified over label.Name. The result is never
// absent: a nil input list yields the label text alone.
func (d *Deriver) LabeledKey(label Label, qualified bool, inputs []any) string {
	s, _ := d.canonicalize(inputs, label.pick(qualified), true)
	return s
}

// KeyHash digests the canonical key under alg and renders it as uppercase
// hex. ok is false iff inputs is nil; in that case the algorithm cache is
// never touched. Unknown algorithms fail with UnsupportedAlgorithmError.
func (d *Deriver) KeyHash(alg Algorithm, inputs []any) (string, bool, error) {
	s, ok := d.canonicalize(inputs, "", false)
	if !ok {
		return "", false, nil
	}
	hx, err := d.digest(s, alg)
	if err != nil {
		return "", false, err
	}
	return hx, true, nil
}

// LabeledKeyHash is KeyHash over LabeledKey. Never absent.
func (d *Deriver) LabeledKeyHash(label Label, alg Algorithm, qualified bool, inputs []any) (string, error) {
	s, _ := d.canonicalize(inputs, label.pick(qualified), true)
	return d.digest(s, alg)
}

// ByteKey is Key with the result passed through the configured Encoding.
func (d *Deriver) ByteKey(inputs []any) ([]byte, bool, error) {
	s, ok := d.canonicalize(inputs, "", false)
	if !ok {
		return nil, false, nil
	}
	b, err := d.enc.Bytes(s)
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// LabeledByteKey is LabeledKey with the result passed through the
// configured Encoding.
func (d *Deriver) LabeledByteKey(label Label, qualified bool, inputs []any) ([]byte, error) {
	s, _ := d.canonicalize(inputs, label.pick(qualified), true)
	return d.enc.Bytes(s)
}

// ByteKeyHash is KeyHash with the hex digest passed through the configured
// Encoding.
func (d *Deriver) ByteKeyHash(alg Algorithm, inputs []any) ([]byte, bool, error) {
	hx, ok, err := d.KeyHash(alg, inputs)
	if !ok || err != nil {
		return nil, false, err
	}
	b, err := d.enc.Bytes(hx)
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// LabeledByteKeyHash is LabeledKeyHash with the hex digest passed through
// the configured Encoding.
func (d *Deriver) LabeledByteKeyHash(label Label, alg Algorithm, qualified bool, inputs []any) ([]byte, error) {
	hx, err := d.LabeledKeyHash(label, alg, qualified, inputs)
	if err != nil {
		return nil, err
	}
	return d.enc.Bytes(hx)
}
