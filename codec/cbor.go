package codec

import (
	"github.com/fxamacker/cbor/v2"
)

// detMode is RFC 8949 Core Deterministic encoding: canonical map key order,
// shortest-form integers and floats. Times encode as RFC3339Nano so
// timestamps stay stable and human-readable inside keys.
var detMode cbor.EncMode

func init() {
	eo := cbor.CoreDetEncOptions()
	eo.Time = cbor.TimeRFC3339Nano
	em, err := eo.EncMode()
	if err != nil {
		panic(err)
	}
	detMode = em
}

// CBOR is the default Codec. The zero value is ready to use.
type CBOR struct{}

var _ Codec = CBOR{}

func (CBOR) Encode(v any) ([]byte, error) {
	return detMode.Marshal(v)
}
