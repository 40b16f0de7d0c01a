package kettle

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/zclconf/go-cty/cty"
)

// elementValue converts an XML element into a duck-typed cty value.
//
// Leaf elements become strings (their trimmed text). Elements with children
// become objects keyed by child tag; a tag that repeats becomes a tuple of
// its occurrences, a tag that appears once stays a bare value. XML attributes
// are merged into the object as string values, with the element text kept
// under "#text" when both are present. This mirrors the shapes downstream
// probing expects: a single <hop> and a repeated <hop> only differ by the
// surrounding tuple.
func elementValue(el *etree.Element) cty.Value {
	children := el.ChildElements()
	text := strings.TrimSpace(el.Text())

	if len(children) == 0 && len(el.Attr) == 0 {
		return cty.StringVal(text)
	}

	attrs := make(map[string]cty.Value)
	for _, a := range el.Attr {
		attrs[a.Key] = cty.StringVal(a.Value)
	}

	// Group child elements by tag, preserving each tag's occurrence order.
	byTag := make(map[string][]cty.Value)
	for _, child := range children {
		byTag[child.Tag] = append(byTag[child.Tag], elementValue(child))
	}
	for tag, vals := range byTag {
		if len(vals) == 1 {
			attrs[tag] = vals[0]
		} else {
			attrs[tag] = cty.TupleVal(vals)
		}
	}

	if text != "" && len(children) == 0 {
		attrs["#text"] = cty.StringVal(text)
	}

	if len(attrs) == 0 {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(attrs)
}
