package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/opendrivego/internal/ctxlog"
	"github.com/specialistvlad/opendrivego/internal/model"
)

// translateDocument converts the decoded HCL blocks into the agnostic model.
func (l *Loader) translateDocument(ctx context.Context, root *fileRoot) (*model.Document, error) {
	doc := model.NewDocument()

	if root.Header != nil {
		doc.Header = model.Header{Name: root.Header.Name, Version: root.Header.Version}
	}

	for _, r := range root.Roads {
		rd, err := l.translateRoad(ctx, r)
		if err != nil {
			return nil, fmt.Errorf("road %d: %w", r.ID, err)
		}
		doc.Roads = append(doc.Roads, rd)
	}

	for _, j := range root.Junctions {
		jn, err := l.translateJunction(ctx, j)
		if err != nil {
			return nil, fmt.Errorf("junction %d: %w", j.ID, err)
		}
		doc.Junctions = append(doc.Junctions, jn)
	}

	return doc, nil
}

// translateRoad converts a single road block.
func (l *Loader) translateRoad(ctx context.Context, r *hclRoad) (model.Road, error) {
	junction, err := evalOptional(ctx, r.Junction, "junction", model.NoJunction)
	if err != nil {
		return model.Road{}, err
	}

	rd := model.Road{
		ID:       r.ID,
		Name:     r.Name,
		Length:   r.Length,
		Junction: junction,
	}

	if rd.Successor, err = translateLink(r.Successor); err != nil {
		return model.Road{}, fmt.Errorf("successor: %w", err)
	}
	if rd.Predecessor, err = translateLink(r.Predecessor); err != nil {
		return model.Road{}, fmt.Errorf("predecessor: %w", err)
	}

	if r.Lanes != nil {
		rd.Left = translateLaneGroup(r.Lanes.Left)
		rd.Right = translateLaneGroup(r.Lanes.Right)
	}

	for i, g := range r.Geometries {
		geom, err := l.translateGeometry(ctx, g)
		if err != nil {
			return model.Road{}, fmt.Errorf("geometry %d (%s): %w", i, g.Kind, err)
		}
		rd.Geometries = append(rd.Geometries, geom)
	}

	return rd, nil
}

func translateLink(l *hclLink) (*model.Link, error) {
	if l == nil {
		return nil, nil
	}
	et, err := model.ParseElementType(l.ElementType)
	if err != nil {
		return nil, err
	}
	return &model.Link{ElementID: l.ElementID, ElementType: et, ContactPoint: l.ContactPoint}, nil
}

func translateLaneGroup(g *hclLaneGroup) []model.Lane {
	if g == nil {
		return nil
	}
	lanes := make([]model.Lane, 0, len(g.Lanes))
	for _, ln := range g.Lanes {
		lane := model.Lane{ID: ln.ID, Type: ln.Type}
		for _, w := range ln.Widths {
			lane.Widths = append(lane.Widths, model.Width{SOffset: w.SOffset, A: w.A, B: w.B, C: w.C, D: w.D})
		}
		lanes = append(lanes, lane)
	}
	return lanes
}

// translateGeometry decodes the kind-specific attributes of a geometry block.
// Kinds without a dedicated schema are kept as UnknownGeometry and their
// extra attributes are not read.
func (l *Loader) translateGeometry(ctx context.Context, g *hclGeometry) (model.Geometry, error) {
	header := model.GeometryHeader{S: g.S, X: g.X, Y: g.Y, Hdg: g.Hdg, Length: g.Length}

	switch g.Kind {
	case model.TagLine:
		var attrs hclLineAttrs
		if diags := gohcl.DecodeBody(g.Remain, nil, &attrs); diags.HasErrors() {
			return nil, diags
		}
		return model.LineGeometry{GeometryHeader: header}, nil
	case model.TagArc:
		var attrs hclArcAttrs
		if diags := gohcl.DecodeBody(g.Remain, nil, &attrs); diags.HasErrors() {
			return nil, diags
		}
		return model.ArcGeometry{GeometryHeader: header, Curvature: attrs.Curvature}, nil
	case model.TagSpiral:
		var attrs hclSpiralAttrs
		if diags := gohcl.DecodeBody(g.Remain, nil, &attrs); diags.HasErrors() {
			return nil, diags
		}
		return model.SpiralGeometry{GeometryHeader: header, CurvStart: attrs.CurvStart, CurvEnd: attrs.CurvEnd}, nil
	default:
		ctxlog.FromContext(ctx).Debug("Keeping geometry block of unsupported kind.", "kind", g.Kind)
		return model.UnknownGeometry{GeometryHeader: header, Kind: g.Kind}, nil
	}
}

// translateJunction converts a single junction block.
func (l *Loader) translateJunction(ctx context.Context, j *hclJunction) (model.Junction, error) {
	jn := model.Junction{ID: j.ID, Name: j.Name}
	for i, c := range j.Connections {
		contact, err := evalOptional(ctx, c.ContactPoint, "contact_point", model.ContactStart)
		if err != nil {
			return model.Junction{}, fmt.Errorf("connection %d: %w", i, err)
		}
		conn := model.Connection{
			ID:             c.ID,
			IncomingRoad:   c.IncomingRoad,
			ConnectingRoad: c.ConnectingRoad,
			ContactPoint:   contact,
		}
		for _, ll := range c.LaneLinks {
			conn.LaneLinks = append(conn.LaneLinks, model.LaneLink{From: ll.From, To: ll.To})
		}
		jn.Connections = append(jn.Connections, conn)
	}
	return jn, nil
}
