// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Document, the root container for everything loaded
// from a road-network description.
//
// A network may be split over several files. Loaders append the records of
// each file in order, so document order across files is the order in which
// the files were read.
package model

import "context"

// Document is the unified, format-agnostic representation of a road network.
type Document struct {
	Header    Header
	Roads     []Road
	Junctions []Junction

	// Sources lists the files the document was assembled from, in read order.
	Sources []string
}

// Header carries the descriptive attributes of the network.
type Header struct {
	Name    string
	Version string
}

// NewDocument creates and returns an empty Document.
func NewDocument() *Document {
	return &Document{}
}

// Merge appends the records of other to d, keeping document order.
func (d *Document) Merge(other *Document) {
	if other == nil {
		return
	}
	if d.Header.Name == "" {
		d.Header = other.Header
	}
	d.Roads = append(d.Roads, other.Roads...)
	d.Junctions = append(d.Junctions, other.Junctions...)
	d.Sources = append(d.Sources, other.Sources...)
}

// Loader is the interface for a format-specific document parser.
type Loader interface {
	// Load reads the document stored at path and translates it into the
	// format-agnostic model.
	Load(ctx context.Context, path string) (*Document, error)
}
