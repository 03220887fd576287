package cachekey

import (
	"hash"

	c "github.com/unkn0wn-root/cachekey/codec"
	te "github.com/unkn0wn-root/cachekey/textenc"
)

// DefaultSeparator is inserted between canonicalized inputs when Options
// does not override it.
const DefaultSeparator = "~"

// Options tune a Deriver. All fields are optional; zero values select the
// documented defaults.
type Options struct {
	Separator string      // between canonicalized inputs; "" => "~"
	Encoding  te.Encoding // byte keys and digest input; nil => textenc.UTF8
	Codec     c.Codec     // composite value rendering; nil => codec.CBOR{}
	Logger    Logger      // if nil, NopLogger is used

	// Algorithms adds or overrides digest constructors for this instance
	// only; identifiers resolve here before the package registry. The map
	// is copied, so later caller mutations do not leak in.
	Algorithms map[Algorithm]func() hash.Hash
}

// New constructs a Deriver. Separator and Encoding are fixed for the
// instance's lifetime; the algorithm cache starts empty and fills lazily.
func New(opts Options) *Deriver {
	var algs map[Algorithm]func() hash.Hash
	if len(opts.Algorithms) > 0 {
		algs = make(map[Algorithm]func() hash.Hash, len(opts.Algorithms))
		for k, ctor := range opts.Algorithms {
			algs[k] = ctor
		}
	}
	return &Deriver{
		sep:     coalesce(opts.Separator, DefaultSeparator),
		enc:     coalesce[te.Encoding](opts.Encoding, te.UTF8),
		codec:   coalesce[c.Codec](opts.Codec, c.CBOR{}),
		algs:    algs,
		log:     coalesce[Logger](opts.Logger, NopLogger{}),
		hashers: make(map[Algorithm]hash.Hash),
	}
}
