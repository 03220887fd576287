package codec

import (
	"bytes"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Msgpack renders values with vmihailenco/msgpack/v5. The zero value is
// ready to use.
//
// The library's SetSortMapKeys only orders map[string]string and
// map[string]interface{}; every other map type encodes in Go's randomized
// iteration order. Encode therefore walks the value itself and emits all
// maps - at any depth, with any key type - in sorted key order. Structs
// encode as name->value maps in field declaration order, honoring the
// `msgpack:"name"` / `msgpack:"-"` tag forms.
type Msgpack struct{}

var _ Codec = Msgpack{}

var timeType = reflect.TypeOf(time.Time{})

func (Msgpack) Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := encodeCanonical(enc, reflect.ValueOf(v)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeCanonical(enc *msgpack.Encoder, rv reflect.Value) error {
	if !rv.IsValid() {
		return enc.EncodeNil()
	}
	switch rv.Kind() {
	case reflect.Interface, reflect.Pointer:
		if rv.IsNil() {
			return enc.EncodeNil()
		}
		return encodeCanonical(enc, rv.Elem())
	case reflect.Map:
		return encodeCanonicalMap(enc, rv)
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return enc.EncodeBytes(rv.Bytes())
		}
		fallthrough
	case reflect.Array:
		if err := enc.EncodeArrayLen(rv.Len()); err != nil {
			return err
		}
		for i := 0; i < rv.Len(); i++ {
			if err := encodeCanonical(enc, rv.Index(i)); err != nil {
				return err
			}
		}
		return nil
	case reflect.Struct:
		if rv.Type() == timeType {
			return enc.Encode(rv.Interface())
		}
		if _, ok := rv.Interface().(msgpack.CustomEncoder); ok {
			return enc.Encode(rv.Interface())
		}
		return encodeCanonicalStruct(enc, rv)
	}
	return enc.Encode(rv.Interface())
}

func encodeCanonicalMap(enc *msgpack.Encoder, rv reflect.Value) error {
	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool { return keyLess(keys[i], keys[j]) })
	if err := enc.EncodeMapLen(len(keys)); err != nil {
		return err
	}
	for _, k := range keys {
		if err := encodeCanonical(enc, k); err != nil {
			return err
		}
		if err := encodeCanonical(enc, rv.MapIndex(k)); err != nil {
			return err
		}
	}
	return nil
}

func encodeCanonicalStruct(enc *msgpack.Encoder, rv reflect.Value) error {
	t := rv.Type()
	type field struct {
		name string
		v    reflect.Value
	}
	fields := make([]field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" { // unexported
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("msgpack"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		fields = append(fields, field{name: name, v: rv.Field(i)})
	}

	if err := enc.EncodeMapLen(len(fields)); err != nil {
		return err
	}
	for _, f := range fields {
		if err := enc.EncodeString(f.name); err != nil {
			return err
		}
		if err := encodeCanonical(enc, f.v); err != nil {
			return err
		}
	}
	return nil
}

// keyLess orders map keys for canonical emission. Keys of one map share a
// concrete type, so cross-kind ordering only needs to be stable, not
// meaningful.
func keyLess(a, b reflect.Value) bool {
	for a.Kind() == reflect.Interface {
		a = a.Elem()
	}
	for b.Kind() == reflect.Interface {
		b = b.Elem()
	}
	if a.Kind() != b.Kind() {
		return a.Kind() < b.Kind()
	}
	switch a.Kind() {
	case reflect.String:
		return a.String() < b.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() < b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() < b.Uint()
	case reflect.Float32, reflect.Float64:
		return a.Float() < b.Float()
	case reflect.Bool:
		return !a.Bool() && b.Bool()
	}
	return fmt.Sprint(a.Interface()) < fmt.Sprint(b.Interface())
}
