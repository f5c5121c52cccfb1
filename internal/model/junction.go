// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Junction record.
//
// A road whose link targets a junction does not name the road it continues
// on. The continuation is found by looking up the junction's connections
// whose incoming road is that road.
package model

// Junction is the format-agnostic representation of a junction record.
type Junction struct {
	ID          int
	Name        string
	Connections []Connection
}

// Connection joins an incoming road to a connecting road inside a junction.
type Connection struct {
	ID             int
	IncomingRoad   int
	ConnectingRoad int
	// ContactPoint is the end of the connecting road that touches the
	// incoming road. Parsers default it to "start".
	ContactPoint string
	LaneLinks    []LaneLink
}

// LaneLink maps a lane of the incoming road to a lane of the connecting road.
type LaneLink struct {
	From int
	To   int
}
