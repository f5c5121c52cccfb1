// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the geometry records of a road's reference line.
//
// Geometry is a sealed interface: only the types declared here implement it,
// so a type switch over it can be checked for completeness by reading this
// file alone.
package model

// GeometryHeader holds the attributes shared by every geometry record.
type GeometryHeader struct {
	// S is the start offset along the reference line.
	S      float64
	X      float64
	Y      float64
	Hdg    float64
	Length float64
}

// Geometry is one record of a road's plan view.
type Geometry interface {
	Header() GeometryHeader
	// Tag is the record kind as it appears in the source document.
	Tag() string

	sealed()
}

// Geometry tags understood by the builder.
const (
	TagLine   = "line"
	TagArc    = "arc"
	TagSpiral = "spiral"
)

// LineGeometry is a straight reference-line segment.
type LineGeometry struct {
	GeometryHeader
}

// ArcGeometry is a constant-curvature reference-line segment.
type ArcGeometry struct {
	GeometryHeader
	Curvature float64
}

// SpiralGeometry is a clothoid whose curvature changes linearly from
// CurvStart to CurvEnd.
type SpiralGeometry struct {
	GeometryHeader
	CurvStart float64
	CurvEnd   float64
}

// UnknownGeometry is a record the parser recognised but whose kind has no
// builder support (poly3, paramPoly3, ...).
type UnknownGeometry struct {
	GeometryHeader
	Kind string
}

func (g GeometryHeader) Header() GeometryHeader { return g }

func (LineGeometry) Tag() string      { return TagLine }
func (ArcGeometry) Tag() string       { return TagArc }
func (SpiralGeometry) Tag() string    { return TagSpiral }
func (g UnknownGeometry) Tag() string { return g.Kind }

func (LineGeometry) sealed()    {}
func (ArcGeometry) sealed()     {}
func (SpiralGeometry) sealed()  {}
func (UnknownGeometry) sealed() {}
