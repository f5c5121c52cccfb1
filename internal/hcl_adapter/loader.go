package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/opendrivego/internal/ctxlog"
	"github.com/specialistvlad/opendrivego/internal/model"
)

// Extension is the file extension handled by Loader.
const Extension = ".hcl"

// Loader is the HCL-specific implementation of the model.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL document loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses a single HCL file and translates its blocks into a Document.
func (l *Loader) Load(ctx context.Context, path string) (*model.Document, error) {
	ctx, logger := ctxlog.With(ctx, "file", path)
	logger.Debug("HCL loader started.")

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	return l.decode(ctx, path, func(root *fileRoot) error {
		if diags := gohcl.DecodeBody(hclFile.Body, nil, root); diags.HasErrors() {
			return fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
		}
		return nil
	})
}

// LoadBytes parses HCL source held in memory. filename is only used in
// diagnostics and in the document's source list.
func (l *Loader) LoadBytes(ctx context.Context, src []byte, filename string) (*model.Document, error) {
	ctx, logger := ctxlog.With(ctx, "file", filename)
	logger.Debug("HCL loader started from memory.", "bytes", len(src))

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	return l.decode(ctx, filename, func(root *fileRoot) error {
		if diags := gohcl.DecodeBody(hclFile.Body, nil, root); diags.HasErrors() {
			return fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
		}
		return nil
	})
}

// decode runs fill on an empty fileRoot and translates the result.
func (l *Loader) decode(ctx context.Context, source string, fill func(*fileRoot) error) (*model.Document, error) {
	logger := ctxlog.FromContext(ctx)

	var root fileRoot
	if err := fill(&root); err != nil {
		return nil, err
	}

	doc, err := l.translateDocument(ctx, &root)
	if err != nil {
		return nil, fmt.Errorf("in HCL file %s: %w", source, err)
	}
	doc.Sources = []string{source}

	logger.Debug("HCL loading complete.", "roads", len(doc.Roads), "junctions", len(doc.Junctions))
	return doc, nil
}
