// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the Go struct representation of a road-network
// document. It is the format-agnostic output of every document parser
// (HCL, OpenDRIVE XML) and the only input of the opendrive builder.
//
// # Core Concepts
//
//   - Document: The root container. It aggregates every road and junction
//     parsed from one or more files.
//
//   - Road: A single road record with its lanes, its successor/predecessor
//     links and the ordered geometry records of its reference line.
//
//   - Junction: A topological node. Each of its connections says which road
//     enters the junction and which connecting road leaves it.
//
//   - Geometry: A closed set of reference-line primitives (line, arc,
//     spiral). Records the parsers recognise but the builder does not
//     support are carried as UnknownGeometry so the builder can account
//     for the drop.
//
// Nothing in this package checks referential integrity. Road ids may repeat,
// links may point at roads or junctions that do not exist, and lanes may have
// no width samples. Resolving (or rejecting) those cases is the job of the
// builder.
package model
