// Package road defines the resolved road-segment model and the map builder
// that turns a stream of segment definitions into a queryable Map.
//
// The opendrive package produces SegmentDefinition values; it talks to this
// package only through the Builder interface.
package road
