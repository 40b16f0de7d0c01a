package analyze

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/vk/kettlegraph/internal/heuristics"
	"github.com/vk/kettlegraph/internal/model"
)

func node(id, subType string, props map[string]cty.Value) model.Node {
	bag := cty.EmptyObjectVal
	if len(props) > 0 {
		bag = cty.ObjectVal(props)
	}
	return model.Node{
		ID:         id,
		Name:       id,
		Kind:       model.KindStep,
		Type:       subType,
		Properties: ctyjson.SimpleJSONValue{Value: bag},
	}
}

func TestFileDependencies(t *testing.T) {
	tables := heuristics.Defaults()

	t.Run("each non-empty file key produces a dependency", func(t *testing.T) {
		nodes := []model.Node{node("reader", "CsvInput", map[string]cty.Value{
			"filename": cty.StringVal("/data/in.csv"),
			"file":     cty.StringVal("  "),
		})}
		deps := fileDependencies(nodes, tables)
		require.Len(t, deps, 1)
		assert.Equal(t, "/data/in.csv", deps[0].Target)
		assert.Equal(t, model.CategoryFileInput, deps[0].Category)
		assert.Equal(t, "reader", deps[0].Origin)
	})

	t.Run("output sub-type classifies as file output", func(t *testing.T) {
		nodes := []model.Node{node("writer", "TextFileOutput", map[string]cty.Value{
			"filename": cty.StringVal("/data/out.txt"),
		})}
		deps := fileDependencies(nodes, tables)
		require.Len(t, deps, 1)
		assert.Equal(t, model.CategoryFileOutput, deps[0].Category)
	})

	t.Run("excel sub-type classifies as excel file", func(t *testing.T) {
		nodes := []model.Node{node("xls", "ExcelInput", map[string]cty.Value{
			"filename": cty.StringVal("book.xls"),
		})}
		deps := fileDependencies(nodes, tables)
		require.Len(t, deps, 1)
		assert.Equal(t, model.CategoryExcelFile, deps[0].Category)
	})

	t.Run("script keys are filtered by extension", func(t *testing.T) {
		nodes := []model.Node{node("runner", "ShellScript", map[string]cty.Value{
			"script": cty.StringVal("cleanup.sh"),
		})}
		deps := fileDependencies(nodes, tables)
		require.Len(t, deps, 1)
		assert.Equal(t, model.CategoryScriptFile, deps[0].Category)

		nodes = []model.Node{node("runner", "ShellScript", map[string]cty.Value{
			"script": cty.StringVal("echo hello"),
		})}
		assert.Empty(t, fileDependencies(nodes, tables))
	})

	t.Run("non file-handling sub-types are skipped", func(t *testing.T) {
		nodes := []model.Node{node("calc", "Calculator", map[string]cty.Value{
			"filename": cty.StringVal("ignored.csv"),
		})}
		assert.Empty(t, fileDependencies(nodes, tables))
	})
}

func TestDatabaseDependencies(t *testing.T) {
	tables := heuristics.Defaults()

	t.Run("first matching key wins, synonyms are not duplicated", func(t *testing.T) {
		nodes := []model.Node{node("load", "TableOutput", map[string]cty.Value{
			"connection": cty.StringVal("dwh"),
			"database":   cty.StringVal("dwh"),
		})}
		deps := databaseDependencies(nodes, tables)
		require.Len(t, deps, 1)
		assert.Equal(t, "dwh", deps[0].Target)
		assert.Equal(t, model.CategoryDatabase, deps[0].Category)
	})

	t.Run("marker without connection key yields nothing", func(t *testing.T) {
		nodes := []model.Node{node("load", "TableOutput", nil)}
		assert.Empty(t, databaseDependencies(nodes, tables))
	})
}

func TestSubWorkflowDependencies(t *testing.T) {
	tables := heuristics.Defaults()

	t.Run("trans_name outranks filename", func(t *testing.T) {
		nodes := []model.Node{node("call", "TransExecutor", map[string]cty.Value{
			"trans_name": cty.StringVal("etl_orders"),
			"filename":   cty.StringVal("/jobs/other.ktr"),
		})}
		deps := subWorkflowDependencies(nodes, tables)
		require.Len(t, deps, 1)
		assert.Equal(t, "etl_orders", deps[0].Target)
		assert.Equal(t, model.CategoryTransformationCall, deps[0].Category)
	})

	t.Run("filename hit is reduced to its base name", func(t *testing.T) {
		nodes := []model.Node{node("call", "TRANS", map[string]cty.Value{
			"filename": cty.StringVal("${Internal.Job.Filename.Directory}/etl_orders.ktr"),
		})}
		deps := subWorkflowDependencies(nodes, tables)
		require.Len(t, deps, 1)
		assert.Equal(t, "etl_orders", deps[0].Target)
	})

	t.Run("exact types outrank substring markers", func(t *testing.T) {
		// "SubTrans" contains the "trans" marker; the exact type table must
		// classify it first.
		nodes := []model.Node{node("call", "SubTrans", map[string]cty.Value{
			"trans_name": cty.StringVal("inner"),
		})}
		deps := subWorkflowDependencies(nodes, tables)
		require.Len(t, deps, 1)
		assert.Equal(t, model.CategorySubTransformation, deps[0].Category)
	})

	t.Run("job executor classifies as job call", func(t *testing.T) {
		nodes := []model.Node{node("call", "JobExecutor", map[string]cty.Value{
			"jobname": cty.StringVal("nightly"),
		})}
		deps := subWorkflowDependencies(nodes, tables)
		require.Len(t, deps, 1)
		assert.Equal(t, model.CategoryJobCall, deps[0].Category)
	})
}

func TestVariableDependencies(t *testing.T) {
	ctx := context.Background()
	tables := heuristics.Defaults()

	t.Run("setter fields under a fields wrapper", func(t *testing.T) {
		nodes := []model.Node{node("set", "SetVariables", map[string]cty.Value{
			"fields": cty.ObjectVal(map[string]cty.Value{
				"field": cty.TupleVal([]cty.Value{
					cty.ObjectVal(map[string]cty.Value{
						"variable_name":  cty.StringVal("target_schema"),
						"variable_value": cty.StringVal("analytics"),
					}),
				}),
			}),
		})}
		deps := variableDependencies(ctx, nodes, tables)
		require.Len(t, deps, 1)
		assert.Equal(t, "target_schema", deps[0].Target)
		assert.Equal(t, model.CategoryVariableSetter, deps[0].Category)
		assert.Equal(t, "analytics", deps[0].Detail)
	})

	t.Run("textual reference anywhere in the bag", func(t *testing.T) {
		nodes := []model.Node{node("load", "TableOutput", map[string]cty.Value{
			"table": cty.StringVal("Load to ${target_schema}.orders"),
		})}
		deps := variableDependencies(ctx, nodes, tables)
		require.Len(t, deps, 1)
		assert.Equal(t, "target_schema", deps[0].Target)
		assert.Equal(t, model.CategoryVariableUser, deps[0].Category)
	})

	t.Run("distinct names per node, repeated mentions collapse", func(t *testing.T) {
		nodes := []model.Node{node("load", "Dummy", map[string]cty.Value{
			"a": cty.StringVal("${x} and ${x} again"),
			"b": cty.ObjectVal(map[string]cty.Value{"c": cty.StringVal("${y}")}),
		})}
		deps := variableDependencies(ctx, nodes, tables)
		require.Len(t, deps, 2)
		assert.Equal(t, "x", deps[0].Target)
		assert.Equal(t, "y", deps[1].Target)
	})

	t.Run("scan is idempotent", func(t *testing.T) {
		nodes := []model.Node{node("load", "Dummy", map[string]cty.Value{
			"b": cty.StringVal("${beta}"),
			"a": cty.StringVal("${alpha}"),
		})}
		first := variableDependencies(ctx, nodes, tables)
		second := variableDependencies(ctx, nodes, tables)
		assert.Equal(t, first, second)
	})

	t.Run("broken pattern disables scanning without failing", func(t *testing.T) {
		broken := heuristics.Defaults()
		broken.VariablePattern = `\$\{([`
		nodes := []model.Node{node("load", "Dummy", map[string]cty.Value{
			"a": cty.StringVal("${x}"),
		})}
		assert.Empty(t, variableDependencies(ctx, nodes, broken))
	})
}

func TestDependencies_AllCategoriesTogether(t *testing.T) {
	tables := heuristics.Defaults()
	nodes := []model.Node{
		node("reader", "CsvInput", map[string]cty.Value{"filename": cty.StringVal("in.csv")}),
		node("load", "TableOutput", map[string]cty.Value{"connection": cty.StringVal("dwh")}),
		node("call", "TransExecutor", map[string]cty.Value{"trans_name": cty.StringVal("child")}),
	}
	root := cty.ObjectVal(map[string]cty.Value{
		"order": cty.TupleVal([]cty.Value{
			cty.ObjectVal(map[string]cty.Value{
				"from": cty.StringVal("reader"),
				"to":   cty.StringVal("load"),
			}),
		}),
	})

	set := Dependencies(context.Background(), root, nodes, tables)
	assert.Len(t, set.StepConnections, 1)
	assert.Len(t, set.Files, 1)
	assert.Len(t, set.Databases, 1)
	assert.Len(t, set.SubWorkflows, 1)
	assert.Empty(t, set.Variables)
}
