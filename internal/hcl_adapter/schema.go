package hcl_adapter

import (
	"github.com/hashicorp/hcl/v2"
)

// fileRoot is a struct used to decode all possible top-level blocks from a file.
type fileRoot struct {
	Header    *hclHeader     `hcl:"header,block"`
	Roads     []*hclRoad     `hcl:"road,block"`
	Junctions []*hclJunction `hcl:"junction,block"`
}

type hclHeader struct {
	Name    string `hcl:"name,optional"`
	Version string `hcl:"version,optional"`
}

type hclRoad struct {
	ID     int     `hcl:"id"`
	Name   string  `hcl:"name,optional"`
	Length float64 `hcl:"length,optional"`
	// Junction defaults to model.NoJunction when omitted.
	Junction hcl.Expression `hcl:"junction,optional"`

	Successor   *hclLink       `hcl:"successor,block"`
	Predecessor *hclLink       `hcl:"predecessor,block"`
	Lanes       *hclLanes      `hcl:"lanes,block"`
	Geometries  []*hclGeometry `hcl:"geometry,block"`
}

type hclLink struct {
	ElementType  string `hcl:"element_type"`
	ElementID    int    `hcl:"element_id"`
	ContactPoint string `hcl:"contact_point,optional"`
}

type hclLanes struct {
	Left  *hclLaneGroup `hcl:"left,block"`
	Right *hclLaneGroup `hcl:"right,block"`
}

type hclLaneGroup struct {
	Lanes []*hclLane `hcl:"lane,block"`
}

type hclLane struct {
	ID     int         `hcl:"id"`
	Type   string      `hcl:"type,optional"`
	Widths []*hclWidth `hcl:"width,block"`
}

type hclWidth struct {
	SOffset float64 `hcl:"s_offset,optional"`
	A       float64 `hcl:"a"`
	B       float64 `hcl:"b,optional"`
	C       float64 `hcl:"c,optional"`
	D       float64 `hcl:"d,optional"`
}

// hclGeometry holds the attributes common to every geometry block. The
// kind-specific attributes stay in Remain until the label is known.
type hclGeometry struct {
	Kind   string   `hcl:"kind,label"`
	S      float64  `hcl:"s,optional"`
	X      float64  `hcl:"x,optional"`
	Y      float64  `hcl:"y,optional"`
	Hdg    float64  `hcl:"hdg,optional"`
	Length float64  `hcl:"length"`
	Remain hcl.Body `hcl:",remain"`
}

type hclLineAttrs struct{}

type hclArcAttrs struct {
	Curvature float64 `hcl:"curvature"`
}

type hclSpiralAttrs struct {
	CurvStart float64 `hcl:"curv_start"`
	CurvEnd   float64 `hcl:"curv_end"`
}

type hclJunction struct {
	ID          int              `hcl:"id"`
	Name        string           `hcl:"name,optional"`
	Connections []*hclConnection `hcl:"connection,block"`
}

type hclConnection struct {
	ID             int `hcl:"id,optional"`
	IncomingRoad   int `hcl:"incoming_road"`
	ConnectingRoad int `hcl:"connecting_road"`
	// ContactPoint defaults to "start" when omitted.
	ContactPoint hcl.Expression `hcl:"contact_point,optional"`
	LaneLinks    []*hclLaneLink `hcl:"lane_link,block"`
}

type hclLaneLink struct {
	From int `hcl:"from"`
	To   int `hcl:"to"`
}
