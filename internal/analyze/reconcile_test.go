package analyze

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/kettlegraph/internal/model"
)

func rec(from, to string) cty.Value {
	return cty.ObjectVal(map[string]cty.Value{
		"from": cty.StringVal(from),
		"to":   cty.StringVal(to),
	})
}

func TestReconcile(t *testing.T) {
	ctx := context.Background()
	two := []model.Edge{{From: "a", To: "b"}, {From: "b", To: "c"}}
	three := []model.Edge{{From: "a", To: "b"}, {From: "b", To: "c"}, {From: "c", To: "d"}}

	t.Run("longer re-derivation replaces the extraction", func(t *testing.T) {
		assert.Equal(t, three, Reconcile(ctx, two, three))
	})

	t.Run("tie keeps the extraction", func(t *testing.T) {
		other := []model.Edge{{From: "x", To: "y"}, {From: "y", To: "z"}}
		assert.Equal(t, two, Reconcile(ctx, two, other))
	})

	t.Run("shorter re-derivation never shrinks the result", func(t *testing.T) {
		got := Reconcile(ctx, two, three[:1])
		assert.Equal(t, two, got)
		assert.GreaterOrEqual(t, len(got), len(two))
	})
}

func TestRederiveHops(t *testing.T) {
	t.Run("hop collections at any depth", func(t *testing.T) {
		root := cty.ObjectVal(map[string]cty.Value{
			"custom": cty.ObjectVal(map[string]cty.Value{
				"wrapper": cty.ObjectVal(map[string]cty.Value{
					"hop": cty.TupleVal([]cty.Value{rec("a", "b"), rec("b", "c")}),
				}),
			}),
		})
		assert.Len(t, rederiveHops(root), 2)
	})

	t.Run("direct records inside order and hops", func(t *testing.T) {
		root := cty.ObjectVal(map[string]cty.Value{
			"order": cty.TupleVal([]cty.Value{rec("a", "b")}),
			"hops":  cty.TupleVal([]cty.Value{rec("b", "c")}),
		})
		assert.Len(t, rederiveHops(root), 2)
	})

	t.Run("nested hop records are not double counted", func(t *testing.T) {
		// order/hop nesting: the records surface through the "hop" visit and
		// the "order" visit must not collect them again.
		root := cty.ObjectVal(map[string]cty.Value{
			"order": cty.ObjectVal(map[string]cty.Value{
				"hop": cty.TupleVal([]cty.Value{rec("a", "b")}),
			}),
		})
		edges := rederiveHops(root)
		require.Len(t, edges, 1)
		assert.Equal(t, "a", edges[0].From)
	})

	t.Run("records missing an endpoint are skipped", func(t *testing.T) {
		root := cty.ObjectVal(map[string]cty.Value{
			"hop": cty.TupleVal([]cty.Value{
				cty.ObjectVal(map[string]cty.Value{"from": cty.StringVal("a")}),
			}),
		})
		assert.Empty(t, rederiveHops(root))
	})
}
