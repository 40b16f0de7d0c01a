package kettle

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/kettlegraph/internal/kgcty"
	"github.com/vk/kettlegraph/internal/model"
)

func TestDetect(t *testing.T) {
	t.Run("ktr extension wins without sniffing", func(t *testing.T) {
		kind, err := Detect("etl_orders.ktr", []byte("<transformation/>"))
		require.NoError(t, err)
		assert.Equal(t, model.KindTransformation, kind)
	})

	t.Run("kjb extension", func(t *testing.T) {
		kind, err := Detect("nightly.kjb", []byte("<job/>"))
		require.NoError(t, err)
		assert.Equal(t, model.KindJob, kind)
	})

	t.Run("extension is case-insensitive", func(t *testing.T) {
		kind, err := Detect("NIGHTLY.KJB", []byte("<job/>"))
		require.NoError(t, err)
		assert.Equal(t, model.KindJob, kind)
	})

	t.Run("ambiguous xml resolved by root tag", func(t *testing.T) {
		kind, err := Detect("exported.xml", []byte("<transformation><info/></transformation>"))
		require.NoError(t, err)
		assert.Equal(t, model.KindTransformation, kind)

		kind, err = Detect("exported.xml", []byte("<job><name>x</name></job>"))
		require.NoError(t, err)
		assert.Equal(t, model.KindJob, kind)
	})

	t.Run("unknown root tag fails as unrecognized", func(t *testing.T) {
		_, err := Detect("exported.xml", []byte("<pipeline/>"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnrecognizedFormat)

		var perr *ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, "exported.xml", perr.FileName)
	})

	t.Run("malformed markup fails as malformed", func(t *testing.T) {
		_, err := Detect("broken.ktr", []byte("<transformation><step></transformation>"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("empty content fails as malformed", func(t *testing.T) {
		_, err := Detect("empty.ktr", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformed)
	})
}

func TestReadTree_Shapes(t *testing.T) {
	ctx := context.Background()

	t.Run("repeated elements become a collection", func(t *testing.T) {
		content := []byte(`<transformation><step><name>a</name></step><step><name>b</name></step></transformation>`)
		_, root, err := ReadTree(ctx, "t.ktr", content)
		require.NoError(t, err)

		step, ok := kgcty.Attr(root, "step")
		require.True(t, ok)
		assert.Len(t, kgcty.List(step), 2)
	})

	t.Run("single element stays a bare value", func(t *testing.T) {
		content := []byte(`<transformation><step><name>only</name></step></transformation>`)
		_, root, err := ReadTree(ctx, "t.ktr", content)
		require.NoError(t, err)

		step, ok := kgcty.Attr(root, "step")
		require.True(t, ok)
		// List normalizes the singleton, so downstream code never branches.
		got := kgcty.List(step)
		require.Len(t, got, 1)
		name, ok := kgcty.AttrString(got[0], "name")
		require.True(t, ok)
		assert.Equal(t, "only", name)
	})

	t.Run("leaf element becomes its trimmed text", func(t *testing.T) {
		content := []byte(`<job><name>  Nightly Load </name></job>`)
		_, root, err := ReadTree(ctx, "j.kjb", content)
		require.NoError(t, err)

		name, ok := kgcty.AttrString(root, "name")
		require.True(t, ok)
		assert.Equal(t, "Nightly Load", name)
	})
}
