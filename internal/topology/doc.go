// Package topology builds a directed connectivity graph over the segments of
// a road map. A successor link of road A to road B is the edge A -> B; a
// predecessor link of road A to road P is the edge P -> A.
package topology
