// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Road record together with its lanes and links.
package model

import "fmt"

// NoJunction is the junction marker of a road that is not part of a junction.
const NoJunction = -1

// Road is the format-agnostic representation of a single road record.
type Road struct {
	ID     int
	Name   string
	Length float64

	// Junction is the id of the junction this road belongs to. Any negative
	// value means the road is not a connecting road.
	Junction int

	Left  []Lane
	Right []Lane

	Successor   *Link
	Predecessor *Link

	Geometries []Geometry
}

// InJunction reports whether the road is a connecting road inside a junction.
func (r *Road) InJunction() bool {
	return r.Junction >= 0
}

// Lane is a single lane of a road's lane section.
type Lane struct {
	// ID is signed: positive ids are left of the reference line, negative
	// ids are right of it.
	ID     int
	Type   string
	Widths []Width
}

// Width is one width polynomial sample of a lane, valid from SOffset on.
type Width struct {
	SOffset float64
	A       float64
	B       float64
	C       float64
	D       float64
}

// ElementType is the kind of element a Link points to.
type ElementType string

const (
	ElementRoad     ElementType = "road"
	ElementJunction ElementType = "junction"
)

// ParseElementType converts the textual element type of a link.
func ParseElementType(s string) (ElementType, error) {
	switch ElementType(s) {
	case ElementRoad, ElementJunction:
		return ElementType(s), nil
	default:
		return "", fmt.Errorf("unknown link element type %q: must be %q or %q", s, ElementRoad, ElementJunction)
	}
}

// Contact points of a link.
const (
	ContactStart = "start"
	ContactEnd   = "end"
)

// Link is a successor or predecessor reference of a road.
type Link struct {
	ElementID   int
	ElementType ElementType
	// ContactPoint is "start", "end" or empty when the document omits it.
	ContactPoint string
}
