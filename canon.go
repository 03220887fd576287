package cachekey

import (
	"fmt"
	"strconv"
	"strings"
)

// canonicalize joins the rendered inputs with the separator. When hasLabel
// is set, label is treated as the first element of the effective list.
// A nil input list with no label is "no key" (ok=false); a nil list with a
// label canonicalizes to the label text alone.
func (d *Deriver) canonicalize(inputs []any, label string, hasLabel bool) (string, bool) {
	if inputs == nil && !hasLabel {
		return "", false
	}

	var b strings.Builder
	if hasLabel {
		b.WriteString(label)
	}
	for i, v := range inputs {
		if hasLabel || i > 0 {
			b.WriteString(d.sep)
		}
		b.WriteString(d.render(v))
	}
	return b.String(), true
}

// render produces a value's canonical text form.
//
// Scalar forms are pinned and locale-independent: booleans as true/false,
// integers in base 10 without grouping, floats in shortest fixed-point
// notation with no exponent ("23.6", never "2.36E1"; float32 rendered at
// 32-bit precision so values round-trip at their own width). nil renders
// as empty text. Everything else goes through the configured Codec and is
// hex-encoded; if the Codec cannot encode the value, the fmt %v form keeps
// the key deterministic for values with stable prints.
func (d *Deriver) render(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.FormatInt(int64(x), 10)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case []byte:
		// already a key fragment; taken verbatim
		return string(x)
	case fmt.Stringer:
		return x.String()
	}

	raw, err := d.codec.Encode(v)
	if err != nil {
		d.log.Debug("codec failed; falling back to fmt", Fields{"type": fmt.Sprintf("%T", v), "err": err})
		return fmt.Sprintf("%v", v)
	}
	return fmt.Sprintf("%X", raw)
}
