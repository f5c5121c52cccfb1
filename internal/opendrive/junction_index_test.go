package opendrive

import (
	"testing"

	"github.com/specialistvlad/opendrivego/internal/model"
	"github.com/specialistvlad/opendrivego/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJunctionIndex_KeepsDocumentOrder(t *testing.T) {
	ctx, _ := testutil.NewContext(t)

	idx := NewJunctionIndex(ctx, testutil.JunctionDocument())

	assert.Equal(t, []JunctionOption{
		{ConnectingRoad: 2, ContactPoint: "end", FromLane: -1, ToLane: -1},
		{ConnectingRoad: 3, ContactPoint: "end"},
	}, idx.Options(5, 1))
}

func TestNewJunctionIndex_Defaults(t *testing.T) {
	ctx, _ := testutil.NewContext(t)
	doc := &model.Document{Junctions: []model.Junction{{
		ID: 9,
		Connections: []model.Connection{{
			IncomingRoad:   10,
			ConnectingRoad: 11,
			LaneLinks:      []model.LaneLink{{From: 1, To: 2}, {From: 3, To: 4}},
		}},
	}}}

	opts := NewJunctionIndex(ctx, doc).Options(9, 10)

	require.Len(t, opts, 1)
	assert.Equal(t, JunctionOption{ConnectingRoad: 11, ContactPoint: "start", FromLane: 1, ToLane: 2}, opts[0])
}

func TestNewJunctionIndex_GroupsByIncomingRoadAcrossJunctionRecords(t *testing.T) {
	ctx, _ := testutil.NewContext(t)
	doc := &model.Document{Junctions: []model.Junction{
		{ID: 1, Connections: []model.Connection{
			{IncomingRoad: 10, ConnectingRoad: 100, ContactPoint: "start"},
			{IncomingRoad: 20, ConnectingRoad: 200, ContactPoint: "end"},
		}},
		{ID: 1, Connections: []model.Connection{
			{IncomingRoad: 10, ConnectingRoad: 101, ContactPoint: "end"},
		}},
	}}

	idx := NewJunctionIndex(ctx, doc)

	var got []int
	for _, o := range idx.Options(1, 10) {
		got = append(got, o.ConnectingRoad)
	}
	assert.Equal(t, []int{100, 101}, got)
	assert.Len(t, idx.Options(1, 20), 1)
}

func TestJunctionIndex_OptionsDoesNotInsert(t *testing.T) {
	ctx, _ := testutil.NewContext(t)
	idx := NewJunctionIndex(ctx, testutil.JunctionDocument())

	assert.Nil(t, idx.Options(5, 42))
	assert.Nil(t, idx.Options(77, 1))

	assert.Len(t, idx, 1)
	assert.Len(t, idx[5], 1)
}
