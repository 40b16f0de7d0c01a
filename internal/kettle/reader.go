package kettle

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/kettlegraph/internal/ctxlog"
	"github.com/vk/kettlegraph/internal/model"
)

// rootTags maps a document's container tag name to its logical kind.
var rootTags = map[string]model.DocumentKind{
	"transformation": model.KindTransformation,
	"job":            model.KindJob,
}

// extensions maps an unambiguous file extension to its logical kind.
var extensions = map[string]model.DocumentKind{
	".ktr": model.KindTransformation,
	".kjb": model.KindJob,
}

// Detect identifies a document's logical kind from its file extension, or,
// for an ambiguous .xml extension, from the parsed root tag name.
func Detect(fileName string, content []byte) (model.DocumentKind, error) {
	kind, _, err := ReadTree(context.Background(), fileName, content)
	return kind, err
}

// ReadTree parses a document's bytes and returns its kind together with the
// duck-typed tree of the root element's children. It is a pure transform;
// failures are reported as *ParseError wrapping ErrMalformed or
// ErrUnrecognizedFormat and concern only this one document.
func ReadTree(ctx context.Context, fileName string, content []byte) (model.DocumentKind, cty.Value, error) {
	logger := ctxlog.FromContext(ctx).With("file", fileName)

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(content); err != nil {
		logger.Debug("Document markup failed to parse.", "error", err)
		return "", cty.NilVal, &ParseError{FileName: fileName, Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}
	root := doc.Root()
	if root == nil {
		logger.Debug("Document has no root element.")
		return "", cty.NilVal, &ParseError{FileName: fileName, Err: fmt.Errorf("%w: no root element", ErrMalformed)}
	}

	kind, err := detectKind(fileName, root.Tag)
	if err != nil {
		logger.Debug("Document kind could not be determined.", "root_tag", root.Tag)
		return "", cty.NilVal, err
	}
	logger.Debug("Document kind detected.", "kind", kind, "root_tag", root.Tag)

	return kind, elementValue(root), nil
}

// detectKind applies the detection order: explicit extension first, then the
// declared root tag for ambiguous extensions.
func detectKind(fileName, rootTag string) (model.DocumentKind, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if kind, ok := extensions[ext]; ok {
		return kind, nil
	}
	if kind, ok := rootTags[strings.ToLower(rootTag)]; ok {
		return kind, nil
	}
	return "", &ParseError{
		FileName: fileName,
		Err:      fmt.Errorf("%w: extension %q, root tag %q", ErrUnrecognizedFormat, ext, rootTag),
	}
}
