package opendrive

import (
	"context"
	"log/slog"

	"github.com/specialistvlad/opendrivego/internal/ctxlog"
	"github.com/specialistvlad/opendrivego/internal/model"
	"github.com/specialistvlad/opendrivego/internal/road"
)

// Report counts what an assembly pass did, including the records it dropped
// without failing.
type Report struct {
	Roads             int
	Segments          int
	DuplicateRoads    int
	DroppedGeometries int
	UnresolvedLinks   int
}

// Assemble builds one segment definition per indexed road, in ascending id
// order. It stops at the first structural error and returns no segments.
func Assemble(ctx context.Context, roads *RoadIndex, junctions JunctionIndex) ([]road.SegmentDefinition, Report, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Assemble: Starting segment assembly.", "roads", roads.Len())

	report := Report{Roads: roads.Len(), DuplicateRoads: roads.Duplicates()}
	segments := make([]road.SegmentDefinition, 0, roads.Len())

	for _, id := range roads.IDs() {
		r, _ := roads.Get(id)
		seg, err := assembleSegment(logger.With("road_id", id), r, junctions, &report)
		if err != nil {
			return nil, report, err
		}
		segments = append(segments, seg)
	}

	report.Segments = len(segments)
	logger.Debug("Assemble: Segment assembly complete.",
		"segments", report.Segments,
		"dropped_geometries", report.DroppedGeometries,
		"unresolved_links", report.UnresolvedLinks,
	)
	return segments, report, nil
}

// assembleSegment builds the segment definition of a single road.
func assembleSegment(logger *slog.Logger, r *model.Road, junctions JunctionIndex, report *Report) (road.SegmentDefinition, error) {
	seg := road.NewSegmentDefinition(r.ID)
	seg.IsJunction = r.InJunction()

	for _, side := range [][]model.Lane{r.Left, r.Right} {
		for _, lane := range side {
			if len(lane.Widths) == 0 {
				return seg, &LaneError{RoadID: r.ID, LaneID: lane.ID, Err: ErrMissingLaneWidth}
			}
			seg.AddLane(lane.ID, lane.Widths[0].A, lane.Type)
		}
	}

	for _, l := range resolveLink(logger, "successor", r.ID, r.Successor, junctions, report) {
		seg.AddSuccessor(l.RoadID, l.IsStart)
	}
	for _, l := range resolveLink(logger, "predecessor", r.ID, r.Predecessor, junctions, report) {
		seg.AddPredecessor(l.RoadID, l.IsStart)
	}

	for i, g := range r.Geometries {
		prim, ok := dispatchGeometry(g)
		if !ok {
			logger.Warn("Dropping unsupported geometry record.", "index", i, "tag", g.Tag())
			report.DroppedGeometries++
			continue
		}
		seg.AddGeometry(prim)
	}

	logger.Debug("Segment assembled.",
		"is_junction", seg.IsJunction,
		"lanes", len(seg.Lanes),
		"successors", len(seg.Successors),
		"predecessors", len(seg.Predecessors),
		"geometries", len(seg.Geometries),
	)
	return seg, nil
}

// resolveLink turns one link of road roadID into link entries. A road link
// yields exactly one entry; a junction link yields one entry per connection
// registered for roadID in that junction, possibly none.
func resolveLink(logger *slog.Logger, direction string, roadID int, link *model.Link, junctions JunctionIndex, report *Report) []road.LinkEntry {
	if link == nil {
		return nil
	}

	if link.ElementType != model.ElementJunction {
		return []road.LinkEntry{{RoadID: link.ElementID, IsStart: link.ContactPoint == model.ContactStart}}
	}

	options := junctions.Options(link.ElementID, roadID)
	if len(options) == 0 {
		logger.Warn("Junction link has no matching connections.", "direction", direction, "junction_id", link.ElementID)
		report.UnresolvedLinks++
		return nil
	}

	entries := make([]road.LinkEntry, 0, len(options))
	for _, opt := range options {
		entries = append(entries, road.LinkEntry{RoadID: opt.ConnectingRoad, IsStart: opt.ContactPoint == model.ContactStart})
	}
	return entries
}
