package road

// LaneEntry is one lane of a segment, reduced to its first width sample.
type LaneEntry struct {
	ID    int     `json:"id"`
	Width float64 `json:"width"`
	Type  string  `json:"type"`
}

// LinkEntry is a resolved successor or predecessor of a segment.
type LinkEntry struct {
	RoadID int `json:"road_id"`
	// IsStart is true when the link attaches at the start of RoadID.
	IsStart bool `json:"is_start"`
}

// SegmentDefinition is one road's resolved lanes, links and geometry, ready
// to be added to a Builder.
type SegmentDefinition struct {
	ID           int         `json:"id"`
	IsJunction   bool        `json:"is_junction"`
	Lanes        []LaneEntry `json:"lanes"`
	Successors   []LinkEntry `json:"successors"`
	Predecessors []LinkEntry `json:"predecessors"`
	Geometries   []Geometry  `json:"geometries"`
}

// NewSegmentDefinition returns an empty definition for the road id.
func NewSegmentDefinition(id int) SegmentDefinition {
	return SegmentDefinition{ID: id}
}

// AddLane appends a lane entry.
func (s *SegmentDefinition) AddLane(id int, width float64, laneType string) {
	s.Lanes = append(s.Lanes, LaneEntry{ID: id, Width: width, Type: laneType})
}

// AddSuccessor appends a successor link.
func (s *SegmentDefinition) AddSuccessor(roadID int, isStart bool) {
	s.Successors = append(s.Successors, LinkEntry{RoadID: roadID, IsStart: isStart})
}

// AddPredecessor appends a predecessor link.
func (s *SegmentDefinition) AddPredecessor(roadID int, isStart bool) {
	s.Predecessors = append(s.Predecessors, LinkEntry{RoadID: roadID, IsStart: isStart})
}

// AddGeometry appends a geometry primitive.
func (s *SegmentDefinition) AddGeometry(g Geometry) {
	s.Geometries = append(s.Geometries, g)
}

// Length is the sum of the lengths of the segment's geometry primitives.
func (s *SegmentDefinition) Length() float64 {
	var total float64
	for _, g := range s.Geometries {
		total += g.Base().Length
	}
	return total
}
