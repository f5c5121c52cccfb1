package registry

import (
	"context"
	"fmt"

	"github.com/specialistvlad/opendrivego/internal/ctxlog"
	"github.com/specialistvlad/opendrivego/internal/fsutil"
	"github.com/specialistvlad/opendrivego/internal/model"
)

// Load implements model.Loader. A file is parsed by the loader registered for
// its extension. A directory is walked and every file with a registered
// extension is parsed in lexical path order; their records are concatenated
// into one document.
func (r *Registry) Load(ctx context.Context, path string) (*model.Document, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Registry loading documents from path.", "path", path)

	files, err := fsutil.FindFilesByExtension(path, r.Extensions()...)
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", path, err)
	}

	doc := model.NewDocument()
	if len(files) == 0 {
		logger.Warn("No document files found in path.", "path", path, "extensions", r.Extensions())
		return doc, nil
	}

	for _, file := range files {
		loader, err := r.For(file)
		if err != nil {
			return nil, err
		}
		part, err := loader.Load(ctx, file)
		if err != nil {
			return nil, err
		}
		doc.Merge(part)
		logger.Debug("Loaded document file.", "file", file, "roads", len(part.Roads), "junctions", len(part.Junctions))
	}

	logger.Info("Documents loaded successfully.", "files", len(files), "roads", len(doc.Roads), "junctions", len(doc.Junctions))
	return doc, nil
}
