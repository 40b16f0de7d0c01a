package folder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/kettlegraph/internal/model"
	"github.com/vk/kettlegraph/internal/testutil"
)

func TestParseAll(t *testing.T) {
	ctx := context.Background()
	files := []File{
		{Name: "z_last.ktr", Content: testutil.TransformationXML("Last",
			[]testutil.Step{{Name: "A", Type: "Dummy"}}, nil)},
		{Name: "broken.ktr", Content: []byte("<transformation><step>")},
		{Name: "a_first.kjb", Content: testutil.JobXML("First",
			[]testutil.Entry{{Name: "START", Type: "SPECIAL"}}, nil)},
	}

	docs, failures := ParseAll(ctx, files, nil, 2)

	t.Run("one bad file never aborts the batch", func(t *testing.T) {
		require.Len(t, docs, 2)
		require.Len(t, failures, 1)
		assert.Equal(t, "broken.ktr", failures[0].FileName)
		assert.NotEmpty(t, failures[0].Reason)
	})

	t.Run("documents come back sorted by file name", func(t *testing.T) {
		assert.Equal(t, "a_first.kjb", docs[0].FileName)
		assert.Equal(t, "z_last.ktr", docs[1].FileName)
	})
}

func TestParseAll_WorkerCountIsDefaulted(t *testing.T) {
	files := []File{
		{Name: "one.ktr", Content: testutil.TransformationXML("One",
			[]testutil.Step{{Name: "A", Type: "Dummy"}}, nil)},
	}
	docs, failures := ParseAll(context.Background(), files, nil, 0)
	require.Len(t, docs, 1)
	assert.Empty(t, failures)
	assert.Equal(t, model.KindTransformation, docs[0].Kind)
}

func TestParseAll_EmptyBatch(t *testing.T) {
	docs, failures := ParseAll(context.Background(), nil, nil, 4)
	assert.Empty(t, docs)
	assert.Empty(t, failures)
}
