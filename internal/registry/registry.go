package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/specialistvlad/opendrivego/internal/model"
)

// ErrUnsupportedFormat is returned for a file whose extension has no loader.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// Registry holds the registered loaders, keyed by lower-case file extension.
type Registry struct {
	loaders map[string]model.Loader
}

// New creates and initializes a new, empty Registry.
func New() *Registry {
	return &Registry{
		loaders: make(map[string]model.Loader),
	}
}

// Register associates a loader with one or more file extensions (".hcl").
// Registering an extension twice is a programming error and panics.
func (r *Registry) Register(loader model.Loader, extensions ...string) {
	for _, ext := range extensions {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			panic(fmt.Sprintf("extension '%s' must start with a dot", ext))
		}
		if _, exists := r.loaders[ext]; exists {
			panic(fmt.Sprintf("loader for extension '%s' already registered", ext))
		}
		slog.Debug("Registering document loader.", "extension", ext)
		r.loaders[ext] = loader
	}
}

// Extensions returns the registered extensions in lexical order.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.loaders))
	for ext := range r.loaders {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}

// For returns the loader registered for the extension of path.
func (r *Registry) For(path string) (model.Loader, error) {
	ext := strings.ToLower(filepath.Ext(path))
	loader, ok := r.loaders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: '%s' (supported: %s)", ErrUnsupportedFormat, path, strings.Join(r.Extensions(), ", "))
	}
	return loader, nil
}
