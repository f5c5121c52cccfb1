package xodr

import "encoding/xml"

type xodrFile struct {
	XMLName   xml.Name       `xml:"OpenDRIVE"`
	Header    *xodrHeader    `xml:"header"`
	Roads     []xodrRoad     `xml:"road"`
	Junctions []xodrJunction `xml:"junction"`
}

type xodrHeader struct {
	Name     string `xml:"name,attr"`
	RevMajor string `xml:"revMajor,attr"`
	RevMinor string `xml:"revMinor,attr"`
}

type xodrRoad struct {
	ID       int     `xml:"id,attr"`
	Name     string  `xml:"name,attr"`
	Length   float64 `xml:"length,attr"`
	Junction *int    `xml:"junction,attr"`

	Link     *xodrRoadLink `xml:"link"`
	PlanView []xodrGeom    `xml:"planView>geometry"`
	Sections []xodrSection `xml:"lanes>laneSection"`
}

type xodrRoadLink struct {
	Successor   *xodrLink `xml:"successor"`
	Predecessor *xodrLink `xml:"predecessor"`
}

type xodrLink struct {
	ElementType  string `xml:"elementType,attr"`
	ElementID    int    `xml:"elementId,attr"`
	ContactPoint string `xml:"contactPoint,attr"`
}

type xodrGeom struct {
	S      float64 `xml:"s,attr"`
	X      float64 `xml:"x,attr"`
	Y      float64 `xml:"y,attr"`
	Hdg    float64 `xml:"hdg,attr"`
	Length float64 `xml:"length,attr"`

	Line   *struct{}   `xml:"line"`
	Arc    *xodrArc    `xml:"arc"`
	Spiral *xodrSpiral `xml:"spiral"`
	// Other collects any child element not matched above (poly3, paramPoly3, ...).
	Other []xodrAny `xml:",any"`
}

type xodrArc struct {
	Curvature float64 `xml:"curvature,attr"`
}

type xodrSpiral struct {
	CurvStart float64 `xml:"curvStart,attr"`
	CurvEnd   float64 `xml:"curvEnd,attr"`
}

type xodrAny struct {
	XMLName xml.Name
}

type xodrSection struct {
	S     float64    `xml:"s,attr"`
	Left  []xodrLane `xml:"left>lane"`
	Right []xodrLane `xml:"right>lane"`
}

type xodrLane struct {
	ID     int         `xml:"id,attr"`
	Type   string      `xml:"type,attr"`
	Widths []xodrWidth `xml:"width"`
}

type xodrWidth struct {
	SOffset float64 `xml:"sOffset,attr"`
	A       float64 `xml:"a,attr"`
	B       float64 `xml:"b,attr"`
	C       float64 `xml:"c,attr"`
	D       float64 `xml:"d,attr"`
}

type xodrJunction struct {
	ID          int              `xml:"id,attr"`
	Name        string           `xml:"name,attr"`
	Connections []xodrConnection `xml:"connection"`
}

type xodrConnection struct {
	ID             int            `xml:"id,attr"`
	IncomingRoad   int            `xml:"incomingRoad,attr"`
	ConnectingRoad int            `xml:"connectingRoad,attr"`
	ContactPoint   string         `xml:"contactPoint,attr"`
	LaneLinks      []xodrLaneLink `xml:"laneLink"`
}

type xodrLaneLink struct {
	From int `xml:"from,attr"`
	To   int `xml:"to,attr"`
}
