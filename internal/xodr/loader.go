package xodr

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/opendrivego/internal/ctxlog"
	"github.com/specialistvlad/opendrivego/internal/model"
)

// Extensions handled by Loader.
var Extensions = []string{".xodr", ".xml"}

// Loader is the OpenDRIVE implementation of the model.Loader interface.
type Loader struct{}

// NewLoader creates a new OpenDRIVE document loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses a single OpenDRIVE file.
func (l *Loader) Load(ctx context.Context, path string) (*model.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open OpenDRIVE file %s: %w", path, err)
	}
	defer f.Close()

	return l.Decode(ctx, f, path)
}

// Decode parses an OpenDRIVE document from r. name is only used in errors
// and in the document's source list.
func (l *Loader) Decode(ctx context.Context, r io.Reader, name string) (*model.Document, error) {
	ctx, logger := ctxlog.With(ctx, "file", name)
	logger.Debug("OpenDRIVE loader started.")

	var file xodrFile
	if err := xml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode OpenDRIVE file %s: %w", name, err)
	}

	doc, err := translateDocument(ctx, &file)
	if err != nil {
		return nil, fmt.Errorf("in OpenDRIVE file %s: %w", name, err)
	}
	doc.Sources = []string{name}

	logger.Debug("OpenDRIVE loading complete.", "roads", len(doc.Roads), "junctions", len(doc.Junctions))
	return doc, nil
}
