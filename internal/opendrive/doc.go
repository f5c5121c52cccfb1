/*
Package opendrive turns a parsed road-network document into the resolved
road-segment model consumed by a road.Builder.

The transformation runs in three passes over a borrowed *model.Document:

 1. Road indexing: every road record is indexed by id. Later records with
    an id already seen replace the earlier one.

 2. Junction indexing: every junction connection becomes a JunctionOption
    keyed by (junction id, incoming road id), in document order.

 3. Assembly: roads are visited in ascending id order. Each produces one
    road.SegmentDefinition with its lanes, resolved successors and
    predecessors, and geometry primitives. Links that target a junction
    fan out to every connecting road registered for the road in that
    junction.

All segments are assembled before the first one is handed to the builder,
so a load either produces a complete map or fails without touching it.
Indices only live for the duration of one call.
*/
package opendrive
