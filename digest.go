package cachekey

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"hash/fnv"
	"sync"

	"github.com/cespare/xxhash/v2"
	"lukechampine.com/blake3"
)

// Algorithm names a registered digest algorithm.
type Algorithm string

// Built-in algorithm identifiers.
const (
	MD5        Algorithm = "MD5"
	SHA1       Algorithm = "SHA1"
	SHA256     Algorithm = "SHA256"
	SHA384     Algorithm = "SHA384"
	SHA512     Algorithm = "SHA512"
	SHA512_256 Algorithm = "SHA512/256"
	FNV1a64    Algorithm = "FNV1A64"
	XXH64      Algorithm = "XXH64"
	BLAKE3     Algorithm = "BLAKE3"
)

// DefaultAlgorithm is the conventional choice when callers have no
// compatibility constraint.
const DefaultAlgorithm = SHA1

var (
	regMu     sync.RWMutex
	factories = map[Algorithm]func() hash.Hash{
		MD5:        md5.New,
		SHA1:       sha1.New,
		SHA256:     sha256.New,
		SHA384:     sha512.New384,
		SHA512:     sha512.New,
		SHA512_256: sha512.New512_256,
		FNV1a64:    func() hash.Hash { return fnv.New64a() },
		XXH64:      func() hash.Hash { return xxhash.New() },
		BLAKE3:     func() hash.Hash { return blake3.New(32, nil) },
	}
)

// Register adds (or replaces) a digest algorithm constructor under alg.
// Any deterministic hash.Hash qualifies. Existing Deriver instances pick
// the constructor up on their next first use of alg; hashers they already
// cached under that identifier are unaffected.
func Register(alg Algorithm, ctor func() hash.Hash) {
	regMu.Lock()
	factories[alg] = ctor
	regMu.Unlock()
}

func factory(alg Algorithm) (func() hash.Hash, bool) {
	regMu.RLock()
	f, ok := factories[alg]
	regMu.RUnlock()
	return f, ok
}

// lookup resolves alg against the instance's Options.Algorithms first,
// then the package registry.
func (d *Deriver) lookup(alg Algorithm) (func() hash.Hash, bool) {
	if f, ok := d.algs[alg]; ok {
		return f, true
	}
	return factory(alg)
}

// digest hashes text under alg and renders the sum as uppercase hex, two
// characters per byte in byte order. The hasher for alg is created on first
// use and reused for the lifetime of the Deriver.
func (d *Deriver) digest(text string, alg Algorithm) (string, error) {
	data, err := d.enc.Bytes(text)
	if err != nil {
		return "", err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	h, ok := d.hashers[alg]
	if !ok {
		ctor, known := d.lookup(alg)
		if !known {
			return "", &UnsupportedAlgorithmError{Algorithm: alg}
		}
		h = ctor()
		d.hashers[alg] = h
		d.log.Debug("hasher cached", Fields{"algorithm": string(alg)})
	}

	h.Reset()
	h.Write(data)
	return fmt.Sprintf("%X", h.Sum(nil)), nil
}
