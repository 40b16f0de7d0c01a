package kgcty

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/zclconf/go-cty/cty"
)

func nestedFixture() cty.Value {
	return cty.ObjectVal(map[string]cty.Value{
		"name": cty.StringVal("outer"),
		"inner": cty.ObjectVal(map[string]cty.Value{
			"sql": cty.StringVal("SELECT ${schema}.orders"),
		}),
		"list": cty.TupleVal([]cty.Value{
			cty.StringVal("first"),
			cty.ObjectVal(map[string]cty.Value{"deep": cty.StringVal("second")}),
		}),
	})
}

func TestWalkStrings(t *testing.T) {
	var got []string
	WalkStrings(nestedFixture(), func(s string) { got = append(got, s) })

	want := []string{"outer", "SELECT ${schema}.orders", "first", "second"}
	assert.ElementsMatch(t, want, got)
}

func TestWalkStrings_Deterministic(t *testing.T) {
	var first, second []string
	WalkStrings(nestedFixture(), func(s string) { first = append(first, s) })
	WalkStrings(nestedFixture(), func(s string) { second = append(second, s) })
	assert.Empty(t, cmp.Diff(first, second))
}

func TestWalkAttrs(t *testing.T) {
	var names []string
	WalkAttrs(nestedFixture(), func(name string, v cty.Value) { names = append(names, name) })

	assert.ElementsMatch(t, []string{"name", "inner", "sql", "list", "deep"}, names)
}

func TestWalkAttrs_NilSafe(t *testing.T) {
	called := false
	WalkAttrs(cty.NilVal, func(string, cty.Value) { called = true })
	assert.False(t, called)
}
