package kgcty

import (
	"strconv"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// usable reports whether a value can be inspected at all.
func usable(v cty.Value) bool {
	return v != cty.NilVal && v.IsKnown() && !v.IsNull()
}

// Attr returns the named attribute of an object value. It returns false when
// the value is not an object, lacks the attribute, or the attribute is null.
func Attr(v cty.Value, name string) (cty.Value, bool) {
	if !usable(v) || !v.Type().IsObjectType() || !v.Type().HasAttribute(name) {
		return cty.NilVal, false
	}
	attr := v.GetAttr(name)
	if !usable(attr) {
		return cty.NilVal, false
	}
	return attr, true
}

// List normalizes a value into a slice of elements. Tuples, lists and sets
// yield their elements; any other usable value yields itself as a singleton.
// This mirrors the source grammar, where a repeated element arrives as a
// collection but a single occurrence arrives as the bare value.
func List(v cty.Value) []cty.Value {
	if !usable(v) {
		return nil
	}
	ty := v.Type()
	if ty.IsTupleType() || ty.IsListType() || ty.IsSetType() {
		var out []cty.Value
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			if usable(ev) {
				out = append(out, ev)
			}
		}
		return out
	}
	return []cty.Value{v}
}

// String coerces a primitive value to its string form.
func String(v cty.Value) (string, bool) {
	if !usable(v) {
		return "", false
	}
	switch v.Type() {
	case cty.String:
		return v.AsString(), true
	case cty.Number:
		return v.AsBigFloat().Text('f', -1), true
	case cty.Bool:
		return strconv.FormatBool(v.True()), true
	}
	return "", false
}

// AttrString returns the named attribute coerced to a string.
func AttrString(v cty.Value, name string) (string, bool) {
	attr, ok := Attr(v, name)
	if !ok {
		return "", false
	}
	return String(attr)
}

// FirstString probes the given keys in order and returns the first attribute
// that coerces to a non-empty string, along with the key that matched.
func FirstString(v cty.Value, keys ...string) (key, value string, ok bool) {
	for _, k := range keys {
		if s, found := AttrString(v, k); found && strings.TrimSpace(s) != "" {
			return k, strings.TrimSpace(s), true
		}
	}
	return "", "", false
}

// Number coerces a primitive value to a float64.
func Number(v cty.Value) (float64, bool) {
	if !usable(v) {
		return 0, false
	}
	switch v.Type() {
	case cty.Number:
		f, _ := v.AsBigFloat().Float64()
		return f, true
	case cty.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.AsString()), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
