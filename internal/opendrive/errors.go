package opendrive

import (
	"errors"
	"fmt"
)

// ErrMissingLaneWidth is returned when a lane has no width sample.
var ErrMissingLaneWidth = errors.New("lane has no width samples")

// LaneError identifies the lane a structural error was found on.
type LaneError struct {
	RoadID int
	LaneID int
	Err    error
}

// Error implements the error interface for LaneError.
func (e *LaneError) Error() string {
	return fmt.Sprintf("road %d, lane %d: %v", e.RoadID, e.LaneID, e.Err)
}

// Unwrap returns the underlying error.
func (e *LaneError) Unwrap() error {
	return e.Err
}
