package testutil

import "github.com/specialistvlad/opendrivego/internal/model"

// DrivingLane returns a lane with a single width sample.
func DrivingLane(id int, width float64) model.Lane {
	return model.Lane{ID: id, Type: "driving", Widths: []model.Width{{A: width}}}
}

// Line returns a line geometry record.
func Line(s, x, y, hdg, length float64) model.Geometry {
	return model.LineGeometry{GeometryHeader: model.GeometryHeader{S: s, X: x, Y: y, Hdg: hdg, Length: length}}
}

// TwoRoadDocument is a network of two roads where road 1 continues directly
// on the start of road 2.
func TwoRoadDocument() *model.Document {
	return &model.Document{
		Roads: []model.Road{
			{
				ID:         1,
				Junction:   model.NoJunction,
				Left:       []model.Lane{DrivingLane(-1, 3.5)},
				Successor:  &model.Link{ElementID: 2, ElementType: model.ElementRoad, ContactPoint: model.ContactStart},
				Geometries: []model.Geometry{Line(0, 0, 0, 0, 10)},
			},
			{
				ID:         2,
				Junction:   model.NoJunction,
				Left:       []model.Lane{DrivingLane(-1, 3.5)},
				Geometries: []model.Geometry{Line(0, 0, 0, 0, 10)},
			},
		},
	}
}

// JunctionDocument is a network where road 1 enters junction 5, which has two
// connections for it (to roads 2 and 3, both attached at their end).
func JunctionDocument() *model.Document {
	return &model.Document{
		Roads: []model.Road{
			{
				ID:         1,
				Junction:   model.NoJunction,
				Right:      []model.Lane{DrivingLane(-1, 3.0)},
				Successor:  &model.Link{ElementID: 5, ElementType: model.ElementJunction},
				Geometries: []model.Geometry{Line(0, 0, 0, 0, 20)},
			},
			{ID: 2, Junction: 5, Right: []model.Lane{DrivingLane(-1, 3.0)}},
			{ID: 3, Junction: 5, Right: []model.Lane{DrivingLane(-1, 3.0)}},
		},
		Junctions: []model.Junction{
			{
				ID: 5,
				Connections: []model.Connection{
					{ID: 0, IncomingRoad: 1, ConnectingRoad: 2, ContactPoint: model.ContactEnd, LaneLinks: []model.LaneLink{{From: -1, To: -1}}},
					{ID: 1, IncomingRoad: 1, ConnectingRoad: 3, ContactPoint: model.ContactEnd},
				},
			},
		},
	}
}
