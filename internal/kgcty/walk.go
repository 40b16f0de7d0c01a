package kgcty

import (
	"sort"

	"github.com/zclconf/go-cty/cty"
)

// WalkStrings visits every string leaf of an arbitrarily nested value in a
// deterministic order (object attributes are visited in cty's canonical
// lexicographic attribute order, collection elements in index order).
func WalkStrings(v cty.Value, fn func(s string)) {
	if !usable(v) {
		return
	}
	// cty.Walk is total over known values; errors cannot occur here because
	// the callback never returns one.
	_ = cty.Walk(v, func(p cty.Path, ev cty.Value) (bool, error) {
		if usable(ev) && ev.Type() == cty.String {
			fn(ev.AsString())
		}
		return true, nil
	})
}

// WalkAttrs visits every object attribute of an arbitrarily nested value,
// calling fn with the attribute name and its value. Collection elements are
// descended into but do not themselves trigger a call.
func WalkAttrs(v cty.Value, fn func(name string, v cty.Value)) {
	if !usable(v) {
		return
	}
	ty := v.Type()
	switch {
	case ty.IsObjectType():
		names := make([]string, 0, len(ty.AttributeTypes()))
		for name := range ty.AttributeTypes() {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			av := v.GetAttr(name)
			if !usable(av) {
				continue
			}
			fn(name, av)
			WalkAttrs(av, fn)
		}
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			WalkAttrs(ev, fn)
		}
	}
}
