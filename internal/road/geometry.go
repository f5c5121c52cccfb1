package road

import (
	"encoding/json"
)

// Location is a point in map coordinates.
type Location struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// GeometryBase holds the attributes shared by every geometry primitive.
type GeometryBase struct {
	S        float64  `json:"s"`
	Length   float64  `json:"length"`
	Heading  float64  `json:"heading"`
	Location Location `json:"location"`
}

// Geometry is a reference-line primitive: Line, Arc or Spiral.
type Geometry interface {
	Base() GeometryBase
	Kind() string

	geometry()
}

// Line is a straight primitive.
type Line struct {
	GeometryBase
}

// Arc is a constant-curvature primitive.
type Arc struct {
	GeometryBase
	Curvature float64 `json:"curvature"`
}

// Spiral is a clothoid primitive.
type Spiral struct {
	GeometryBase
	CurvStart float64 `json:"curv_start"`
	CurvEnd   float64 `json:"curv_end"`
}

// NewLine creates a Line primitive.
func NewLine(s, length, heading float64, loc Location) Line {
	return Line{GeometryBase{S: s, Length: length, Heading: heading, Location: loc}}
}

// NewArc creates an Arc primitive.
func NewArc(s, length, heading float64, loc Location, curvature float64) Arc {
	return Arc{
		GeometryBase: GeometryBase{S: s, Length: length, Heading: heading, Location: loc},
		Curvature:    curvature,
	}
}

// NewSpiral creates a Spiral primitive.
func NewSpiral(s, length, heading float64, loc Location, curvStart, curvEnd float64) Spiral {
	return Spiral{
		GeometryBase: GeometryBase{S: s, Length: length, Heading: heading, Location: loc},
		CurvStart:    curvStart,
		CurvEnd:      curvEnd,
	}
}

func (g GeometryBase) Base() GeometryBase { return g }

func (Line) Kind() string   { return "line" }
func (Arc) Kind() string    { return "arc" }
func (Spiral) Kind() string { return "spiral" }

func (Line) geometry()   {}
func (Arc) geometry()    {}
func (Spiral) geometry() {}

// MarshalJSON adds the primitive kind to the encoded fields.
func (g Line) MarshalJSON() ([]byte, error) {
	type plain Line
	return json.Marshal(struct {
		Kind string `json:"kind"`
		plain
	}{g.Kind(), plain(g)})
}

// MarshalJSON adds the primitive kind to the encoded fields.
func (g Arc) MarshalJSON() ([]byte, error) {
	type plain Arc
	return json.Marshal(struct {
		Kind string `json:"kind"`
		plain
	}{g.Kind(), plain(g)})
}

// MarshalJSON adds the primitive kind to the encoded fields.
func (g Spiral) MarshalJSON() ([]byte, error) {
	type plain Spiral
	return json.Marshal(struct {
		Kind string `json:"kind"`
		plain
	}{g.Kind(), plain(g)})
}
