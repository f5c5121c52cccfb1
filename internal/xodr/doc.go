// Package xodr provides the OpenDRIVE XML implementation of the model.Loader
// interface.
//
// Only the elements the road-segment model needs are read: road attributes,
// road links, plan-view geometry, the lanes of the first lane section, and
// junction connections with their lane links. Everything else in the file is
// ignored.
package xodr
