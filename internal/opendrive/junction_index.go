package opendrive

import (
	"context"

	"github.com/specialistvlad/opendrivego/internal/ctxlog"
	"github.com/specialistvlad/opendrivego/internal/model"
)

// JunctionOption is one way out of a junction for a given incoming road.
type JunctionOption struct {
	ConnectingRoad int
	ContactPoint   string
	FromLane       int
	ToLane         int
}

// JunctionIndex maps junction id -> incoming road id -> options, in the
// document order of the junction's connections.
type JunctionIndex map[int]map[int][]JunctionOption

// NewJunctionIndex builds the junction index of doc.
func NewJunctionIndex(ctx context.Context, doc *model.Document) JunctionIndex {
	logger := ctxlog.FromContext(ctx)
	idx := make(JunctionIndex, len(doc.Junctions))

	connections := 0
	for _, j := range doc.Junctions {
		byIncoming, ok := idx[j.ID]
		if !ok {
			byIncoming = make(map[int][]JunctionOption)
			idx[j.ID] = byIncoming
		}
		for _, c := range j.Connections {
			byIncoming[c.IncomingRoad] = append(byIncoming[c.IncomingRoad], newJunctionOption(c))
			connections++
		}
	}

	logger.Debug("Junction index built.", "junctions", len(idx), "connections", connections)
	return idx
}

// newJunctionOption derives the option of a single connection. Only the first
// lane link is kept; a connection without lane links maps lane 0 to lane 0.
func newJunctionOption(c model.Connection) JunctionOption {
	opt := JunctionOption{
		ConnectingRoad: c.ConnectingRoad,
		ContactPoint:   c.ContactPoint,
	}
	if opt.ContactPoint == "" {
		opt.ContactPoint = model.ContactStart
	}
	if len(c.LaneLinks) > 0 {
		opt.FromLane = c.LaneLinks[0].From
		opt.ToLane = c.LaneLinks[0].To
	}
	return opt
}

// Options returns the options registered for incomingRoad in junctionID. It
// returns nil when there are none and never modifies the index.
func (idx JunctionIndex) Options(junctionID, incomingRoad int) []JunctionOption {
	return idx[junctionID][incomingRoad]
}
