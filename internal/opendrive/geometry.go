package opendrive

import (
	"github.com/specialistvlad/opendrivego/internal/model"
	"github.com/specialistvlad/opendrivego/internal/road"
)

// dispatchGeometry maps a geometry record to its primitive. The anchor is the
// record's (x, y) carried verbatim. It reports false for records without a
// primitive.
func dispatchGeometry(g model.Geometry) (road.Geometry, bool) {
	h := g.Header()
	loc := road.Location{X: h.X, Y: h.Y}

	switch rec := g.(type) {
	case model.LineGeometry:
		return road.NewLine(h.S, h.Length, h.Hdg, loc), true
	case model.ArcGeometry:
		return road.NewArc(h.S, h.Length, h.Hdg, loc, rec.Curvature), true
	case model.SpiralGeometry:
		return road.NewSpiral(h.S, h.Length, h.Hdg, loc, rec.CurvStart, rec.CurvEnd), true
	case model.UnknownGeometry:
		return nil, false
	default:
		return nil, false
	}
}
