package road

import (
	"slices"
)

// Builder collects segment definitions and finalizes them into a Map.
type Builder interface {
	// AddSegment accepts one completed segment definition.
	AddSegment(def SegmentDefinition)
	// Build finalizes the map. It is called exactly once, after every
	// AddSegment call.
	Build() *Map
}

// MapBuilder is the default Builder implementation.
type MapBuilder struct {
	segments map[int]SegmentDefinition
	order    []int
}

// NewMapBuilder creates an empty MapBuilder.
func NewMapBuilder() *MapBuilder {
	return &MapBuilder{segments: make(map[int]SegmentDefinition)}
}

// AddSegment implements the Builder interface. A second definition with the
// same id replaces the first.
func (b *MapBuilder) AddSegment(def SegmentDefinition) {
	if _, exists := b.segments[def.ID]; !exists {
		b.order = append(b.order, def.ID)
	}
	b.segments[def.ID] = def
}

// Build implements the Builder interface. The builder must not be reused
// afterwards.
func (b *MapBuilder) Build() *Map {
	ids := slices.Clone(b.order)
	slices.Sort(ids)
	m := &Map{
		ids:      ids,
		segments: b.segments,
	}
	b.segments = nil
	b.order = nil
	return m
}
