package road

import (
	"encoding/json"
)

// Map is the immutable, queryable result of a Builder.
type Map struct {
	ids      []int
	segments map[int]SegmentDefinition
}

// Len returns the number of segments in the map.
func (m *Map) Len() int {
	return len(m.ids)
}

// IDs returns the segment ids in ascending order.
func (m *Map) IDs() []int {
	out := make([]int, len(m.ids))
	copy(out, m.ids)
	return out
}

// Segment returns the segment with the given road id.
func (m *Map) Segment(id int) (SegmentDefinition, bool) {
	s, ok := m.segments[id]
	return s, ok
}

// Segments returns every segment in ascending id order.
func (m *Map) Segments() []SegmentDefinition {
	out := make([]SegmentDefinition, 0, len(m.ids))
	for _, id := range m.ids {
		out = append(out, m.segments[id])
	}
	return out
}

// Junctions returns the ids of the segments that are connecting roads.
func (m *Map) Junctions() []int {
	var out []int
	for _, id := range m.ids {
		if m.segments[id].IsJunction {
			out = append(out, id)
		}
	}
	return out
}

// MarshalJSON encodes the map as an ordered list of segments.
func (m *Map) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Segments []SegmentDefinition `json:"segments"`
	}{m.Segments()})
}
