// Package registry maps document file extensions to the model.Loader that
// parses them, and loads a file or a whole directory through them.
package registry
