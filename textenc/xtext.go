package textenc

import (
	xenc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Common non-UTF-8 encodings for interop with caches written by runtimes
// that key on UTF-16 or single-byte code pages.
var (
	UTF16LE     = Wrap("utf-16le", unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM))
	UTF16BE     = Wrap("utf-16be", unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM))
	Latin1      = Wrap("iso-8859-1", charmap.ISO8859_1)
	Windows1252 = Wrap("windows-1252", charmap.Windows1252)
)

// Wrap adapts any x/text encoding. A fresh encoder is taken per call;
// x/text encoders carry transform state and are not safe to share.
func Wrap(name string, e xenc.Encoding) Encoding {
	return xtextEncoding{name: name, enc: e}
}

type xtextEncoding struct {
	name string
	enc  xenc.Encoding
}

func (x xtextEncoding) Name() string { return x.name }

func (x xtextEncoding) Bytes(s string) ([]byte, error) {
	return x.enc.NewEncoder().Bytes([]byte(s))
}
