package cachekey

import "reflect"

// Label is a caller-supplied identifier pair canonicalized as the first
// element of a key. Name is the short form ("Widget"); Qualified the fully
// qualified form ("app/models.Widget"). The Deriver never inspects types
// itself; it only consumes this precomputed pair.
type Label struct {
	Name      string
	Qualified string
}

func (l Label) pick(qualified bool) string {
	if qualified {
		return l.Qualified
	}
	return l.Name
}

// LabelOf builds a Label from T's type name. Pointer types are unwrapped,
// so LabelOf[*Widget]() equals LabelOf[Widget](). Unnamed types (slices,
// maps, anonymous structs) fall back to their type string for both forms.
func LabelOf[T any]() Label {
	t := reflect.TypeOf((*T)(nil)).Elem()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		s := t.String()
		return Label{Name: s, Qualified: s}
	}
	q := t.Name()
	if pkg := t.PkgPath(); pkg != "" {
		q = pkg + "." + t.Name()
	}
	return Label{Name: t.Name(), Qualified: q}
}
