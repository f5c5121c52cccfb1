package opendrive

import (
	"context"
	"maps"
	"slices"

	"github.com/specialistvlad/opendrivego/internal/ctxlog"
	"github.com/specialistvlad/opendrivego/internal/model"
)

// RoadIndex maps road ids to the road records of a document. The records are
// borrowed: the index must not outlive the document it was built from.
type RoadIndex struct {
	roads      map[int]*model.Road
	duplicates int
}

// NewRoadIndex indexes every road of doc by id. When an id appears more than
// once the last record in document order wins.
func NewRoadIndex(ctx context.Context, doc *model.Document) *RoadIndex {
	logger := ctxlog.FromContext(ctx)
	idx := &RoadIndex{roads: make(map[int]*model.Road, len(doc.Roads))}

	for i := range doc.Roads {
		r := &doc.Roads[i]
		if _, exists := idx.roads[r.ID]; exists {
			logger.Warn("Duplicate road id found, it will be overwritten.", "road_id", r.ID)
			idx.duplicates++
		}
		idx.roads[r.ID] = r
	}

	logger.Debug("Road index built.", "records", len(doc.Roads), "roads", len(idx.roads))
	return idx
}

// Len returns the number of distinct road ids.
func (idx *RoadIndex) Len() int {
	return len(idx.roads)
}

// Duplicates returns how many records were overwritten by a later record
// with the same id.
func (idx *RoadIndex) Duplicates() int {
	return idx.duplicates
}

// Get returns the road record indexed under id.
func (idx *RoadIndex) Get(id int) (*model.Road, bool) {
	r, ok := idx.roads[id]
	return r, ok
}

// IDs returns the indexed road ids in ascending order.
func (idx *RoadIndex) IDs() []int {
	return slices.Sorted(maps.Keys(idx.roads))
}
