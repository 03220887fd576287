// Package textenc converts canonical key text to bytes for hashing and
// byte-key output. UTF8 is the default and never fails; the x/text-backed
// encodings can fail on unencodable runes and surface that to the caller
// rather than silently substituting.
package textenc

// Encoding converts canonical key text to bytes.
type Encoding interface {
	// Name identifies the encoding, lowercase IANA style (e.g. "utf-8").
	Name() string
	// Bytes encodes s.
	Bytes(s string) ([]byte, error)
}

// UTF8 is the default Encoding. Go strings are UTF-8 already, so this is a
// straight byte copy and never errors.
var UTF8 Encoding = utf8Encoding{}

type utf8Encoding struct{}

func (utf8Encoding) Name() string { return "utf-8" }

func (utf8Encoding) Bytes(s string) ([]byte, error) { return []byte(s), nil }
