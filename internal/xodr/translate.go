package xodr

import (
	"context"
	"fmt"

	"github.com/specialistvlad/opendrivego/internal/ctxlog"
	"github.com/specialistvlad/opendrivego/internal/model"
)

// translateDocument converts the decoded XML tree into the agnostic model.
func translateDocument(ctx context.Context, f *xodrFile) (*model.Document, error) {
	logger := ctxlog.FromContext(ctx)
	doc := model.NewDocument()

	if f.Header != nil {
		doc.Header = model.Header{Name: f.Header.Name}
		if f.Header.RevMajor != "" {
			doc.Header.Version = f.Header.RevMajor + "." + f.Header.RevMinor
		}
	}

	for _, r := range f.Roads {
		rd := model.Road{
			ID:       r.ID,
			Name:     r.Name,
			Length:   r.Length,
			Junction: model.NoJunction,
		}
		if r.Junction != nil {
			rd.Junction = *r.Junction
		}

		if r.Link != nil {
			var err error
			if rd.Successor, err = translateLink(r.Link.Successor); err != nil {
				return nil, fmt.Errorf("road %d: successor: %w", r.ID, err)
			}
			if rd.Predecessor, err = translateLink(r.Link.Predecessor); err != nil {
				return nil, fmt.Errorf("road %d: predecessor: %w", r.ID, err)
			}
		}

		if len(r.Sections) > 0 {
			if len(r.Sections) > 1 {
				logger.Debug("Road has several lane sections, only the first is used.", "road_id", r.ID, "sections", len(r.Sections))
			}
			rd.Left = translateLanes(r.Sections[0].Left)
			rd.Right = translateLanes(r.Sections[0].Right)
		}

		for _, g := range r.PlanView {
			rd.Geometries = append(rd.Geometries, translateGeometry(g))
		}

		doc.Roads = append(doc.Roads, rd)
	}

	for _, j := range f.Junctions {
		jn := model.Junction{ID: j.ID, Name: j.Name}
		for _, c := range j.Connections {
			conn := model.Connection{
				ID:             c.ID,
				IncomingRoad:   c.IncomingRoad,
				ConnectingRoad: c.ConnectingRoad,
				ContactPoint:   c.ContactPoint,
			}
			if conn.ContactPoint == "" {
				conn.ContactPoint = model.ContactStart
			}
			for _, ll := range c.LaneLinks {
				conn.LaneLinks = append(conn.LaneLinks, model.LaneLink{From: ll.From, To: ll.To})
			}
			jn.Connections = append(jn.Connections, conn)
		}
		doc.Junctions = append(doc.Junctions, jn)
	}

	return doc, nil
}

func translateLink(l *xodrLink) (*model.Link, error) {
	if l == nil {
		return nil, nil
	}
	et, err := model.ParseElementType(l.ElementType)
	if err != nil {
		return nil, err
	}
	return &model.Link{ElementID: l.ElementID, ElementType: et, ContactPoint: l.ContactPoint}, nil
}

func translateLanes(in []xodrLane) []model.Lane {
	if len(in) == 0 {
		return nil
	}
	lanes := make([]model.Lane, 0, len(in))
	for _, ln := range in {
		lane := model.Lane{ID: ln.ID, Type: ln.Type}
		for _, w := range ln.Widths {
			lane.Widths = append(lane.Widths, model.Width{SOffset: w.SOffset, A: w.A, B: w.B, C: w.C, D: w.D})
		}
		lanes = append(lanes, lane)
	}
	return lanes
}

// translateGeometry picks the primitive child of a geometry element. An
// element without line, arc or spiral child becomes UnknownGeometry named
// after its first child, or "none" when it has no child at all.
func translateGeometry(g xodrGeom) model.Geometry {
	header := model.GeometryHeader{S: g.S, X: g.X, Y: g.Y, Hdg: g.Hdg, Length: g.Length}

	switch {
	case g.Line != nil:
		return model.LineGeometry{GeometryHeader: header}
	case g.Arc != nil:
		return model.ArcGeometry{GeometryHeader: header, Curvature: g.Arc.Curvature}
	case g.Spiral != nil:
		return model.SpiralGeometry{GeometryHeader: header, CurvStart: g.Spiral.CurvStart, CurvEnd: g.Spiral.CurvEnd}
	case len(g.Other) > 0:
		return model.UnknownGeometry{GeometryHeader: header, Kind: g.Other[0].XMLName.Local}
	default:
		return model.UnknownGeometry{GeometryHeader: header, Kind: "none"}
	}
}
