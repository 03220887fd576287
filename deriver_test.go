package cachekey

import (
	"bytes"
	"testing"

	"github.com/unkn0wn-root/cachekey/textenc"
)

var widget = Label{Name: "Widget", Qualified: "app.models.Widget"}

// ==============================
// Labeled operation tests
// ==============================

func TestLabeledKey(t *testing.T) {
	d := newTestDeriver(t, Options{})

	tests := []struct {
		name      string
		qualified bool
		inputs    []any
		want      string
	}{
		{"short_with_inputs", false, []any{123, "Hello"}, "Widget~123~Hello"},
		{"qualified_with_inputs", true, []any{123, "Hello"}, "app.models.Widget~123~Hello"},
		{"short_nil_inputs", false, nil, "Widget"},
		{"qualified_nil_inputs", true, nil, "app.models.Widget"},
		{"short_empty_inputs", false, []any{}, "Widget"},
		{"nil_element_after_label", false, []any{nil}, "Widget~"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.LabeledKey(widget, tt.qualified, tt.inputs)
			if got != tt.want {
				t.Fatalf("LabeledKey = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLabeledKeyHash(t *testing.T) {
	d := newTestDeriver(t, Options{})

	tests := []struct {
		name      string
		qualified bool
		inputs    []any
		want      string
	}{
		{"short_label_alone", false, nil, "DF15305CC141D8294713EBA43AAEE44D1EDFE3BD"},          // SHA1("Widget")
		{"qualified_label_alone", true, nil, "E6D12DA146B51517D4FB3986B6301D7050D57A93"},       // SHA1("app.models.Widget")
		{"label_and_inputs", false, []any{123, "Hello"}, "2791443D13A864BBB23985BFC00D1F1FEAC5D3D6"}, // SHA1("Widget~123~Hello")
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.LabeledKeyHash(widget, SHA1, tt.qualified, tt.inputs)
			if err != nil {
				t.Fatalf("LabeledKeyHash: %v", err)
			}
			if got != tt.want {
				t.Fatalf("LabeledKeyHash = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLabeledKeyHashUnsupported(t *testing.T) {
	d := newTestDeriver(t, Options{})
	if _, err := d.LabeledKeyHash(widget, "BOGUS", false, nil); err == nil {
		t.Fatalf("expected UnsupportedAlgorithm error")
	}
}

// ==============================
// Byte key tests
// ==============================

// TestByteKey: under the default encoding, byte keys are the UTF-8 bytes
// of the text key; absent stays absent.
func TestByteKey(t *testing.T) {
	d := newTestDeriver(t, Options{})

	text, _ := d.Key([]any{"Hello", 123})
	b, ok, err := d.ByteKey([]any{"Hello", 123})
	if err != nil || !ok {
		t.Fatalf("ByteKey: ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(b, []byte(text)) {
		t.Fatalf("ByteKey = %v, want UTF-8 of %q", b, text)
	}

	if b, ok, err := d.ByteKey(nil); err != nil || ok || b != nil {
		t.Fatalf("ByteKey(nil) = (%v, %v, %v), want absent", b, ok, err)
	}
}

func TestByteKeyHash(t *testing.T) {
	d := newTestDeriver(t, Options{})

	hx, _, err := d.KeyHash(SHA1, []any{"Hello"})
	if err != nil {
		t.Fatalf("KeyHash: %v", err)
	}
	b, ok, err := d.ByteKeyHash(SHA1, []any{"Hello"})
	if err != nil || !ok {
		t.Fatalf("ByteKeyHash: ok=%v err=%v", ok, err)
	}
	if string(b) != hx {
		t.Fatalf("ByteKeyHash = %q, want %q", b, hx)
	}

	if _, ok, _ := d.ByteKeyHash(SHA1, nil); ok {
		t.Fatalf("ByteKeyHash(nil) should be absent")
	}
	if _, _, err := d.ByteKeyHash("BOGUS", []any{"x"}); err == nil {
		t.Fatalf("ByteKeyHash should surface UnsupportedAlgorithm")
	}
}

func TestLabeledByteKeys(t *testing.T) {
	d := newTestDeriver(t, Options{})

	b, err := d.LabeledByteKey(widget, false, []any{123})
	if err != nil {
		t.Fatalf("LabeledByteKey: %v", err)
	}
	if string(b) != "Widget~123" {
		t.Fatalf("LabeledByteKey = %q, want %q", b, "Widget~123")
	}

	hb, err := d.LabeledByteKeyHash(widget, SHA1, false, nil)
	if err != nil {
		t.Fatalf("LabeledByteKeyHash: %v", err)
	}
	if string(hb) != "DF15305CC141D8294713EBA43AAEE44D1EDFE3BD" {
		t.Fatalf("LabeledByteKeyHash = %q", hb)
	}
}

// TestEncodingAffectsBytes: a UTF-16LE deriver produces different byte
// keys and different digests than a UTF-8 one for the same inputs.
func TestEncodingAffectsBytes(t *testing.T) {
	utf8 := newTestDeriver(t, Options{})
	utf16 := newTestDeriver(t, Options{Encoding: textenc.UTF16LE})

	b, ok, err := utf16.ByteKey([]any{"Hi"})
	if err != nil || !ok {
		t.Fatalf("ByteKey: ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(b, []byte{0x48, 0x00, 0x69, 0x00}) {
		t.Fatalf("UTF-16LE ByteKey = % X", b)
	}

	h8, _, err := utf8.KeyHash(SHA1, []any{"Hi"})
	if err != nil {
		t.Fatalf("KeyHash utf8: %v", err)
	}
	h16, _, err := utf16.KeyHash(SHA1, []any{"Hi"})
	if err != nil {
		t.Fatalf("KeyHash utf16: %v", err)
	}
	if h8 == h16 {
		t.Fatalf("digest should depend on the configured encoding")
	}
}
