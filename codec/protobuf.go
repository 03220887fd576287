package codec

import (
	"fmt"

	"google.golang.org/protobuf/proto"
)

// Protobuf renders proto.Message values with deterministic marshaling
// (defined map ordering). Values that are not proto messages are rejected:
// there is no meaningful fallback that would stay wire-stable.
//
// Note: protobuf deterministic output is stable for one library version,
// not guaranteed canonical across versions. Pin your protobuf module if
// keys outlive deployments.
type Protobuf struct{}

var _ Codec = Protobuf{}

var detMarshal = proto.MarshalOptions{Deterministic: true}

func (Protobuf) Encode(v any) ([]byte, error) {
	m, ok := v.(proto.Message)
	if !ok {
		return nil, fmt.Errorf("codec: %T is not a proto.Message", v)
	}
	return detMarshal.Marshal(m)
}
