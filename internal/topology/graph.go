package topology

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/specialistvlad/opendrivego/internal/ctxlog"
	"github.com/specialistvlad/opendrivego/internal/road"
)

// Graph is the connectivity of a road map. All operations are
// concurrency-safe.
type Graph struct {
	mutex sync.RWMutex
	nodes map[int]*node
	// dangling counts links whose target road is not in the map.
	dangling int
}

type node struct {
	id  int
	in  map[int]*node
	out map[int]*node
}

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[int]*node),
	}
}

// FromMap builds the graph of every segment of m and its resolved links.
func FromMap(ctx context.Context, m *road.Map) *Graph {
	logger := ctxlog.FromContext(ctx)
	g := New()
	for _, id := range m.IDs() {
		g.AddNode(id)
	}

	for _, seg := range m.Segments() {
		for _, l := range seg.Successors {
			g.link(ctx, seg.ID, l.RoadID, seg.ID)
		}
		for _, l := range seg.Predecessors {
			g.link(ctx, l.RoadID, seg.ID, seg.ID)
		}
	}

	logger.Debug("Road topology built.", "roads", len(g.nodes), "dangling_links", g.dangling)
	return g
}

func (g *Graph) link(ctx context.Context, from, to, owner int) {
	if err := g.AddEdge(from, to); err != nil {
		g.dangling++
		ctxlog.FromContext(ctx).Debug("Link not added to topology.", "road", owner, "from", from, "to", to, "error", err)
	}
}

// AddNode adds a road to the graph. Adding an existing road does nothing.
func (g *Graph) AddNode(id int) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = &node{
		id:  id,
		in:  make(map[int]*node),
		out: make(map[int]*node),
	}
}

// AddEdge records that traffic can flow from road fromID onto road toID. An
// error is returned if either road does not exist or the edge is a loop.
func (g *Graph) AddEdge(fromID, toID int) error {
	if fromID == toID {
		return fmt.Errorf("self-referential link not allowed: %d -> %d", fromID, fromID)
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	fromNode, ok := g.nodes[fromID]
	if !ok {
		return fmt.Errorf("source road not found: %d", fromID)
	}
	toNode, ok := g.nodes[toID]
	if !ok {
		return fmt.Errorf("destination road not found: %d", toID)
	}

	fromNode.out[toID] = toNode
	toNode.in[fromID] = fromNode
	return nil
}

// Len returns the number of roads in the graph.
func (g *Graph) Len() int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return len(g.nodes)
}

// Dangling returns the number of links FromMap could not add to the graph.
func (g *Graph) Dangling() int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.dangling
}

// Next returns the roads reachable from id in one step, ascending.
func (g *Graph) Next(id int) ([]int, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("road not found: %d", id)
	}
	return sortedIDs(n.out), nil
}

// Previous returns the roads that lead onto id in one step, ascending.
func (g *Graph) Previous(id int) ([]int, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("road not found: %d", id)
	}
	return sortedIDs(n.in), nil
}

// Reachable returns every road that can be reached from id, excluding id
// itself unless it lies on a cycle, in ascending order.
func (g *Graph) Reachable(id int) ([]int, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	start, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("road not found: %d", id)
	}

	seen := make(map[int]*node)
	queue := []*node{start}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for id, next := range n.out {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = next
			queue = append(queue, next)
		}
	}
	return sortedIDs(seen), nil
}

// Cycles reports whether any road can be driven back onto itself. Roads are
// explored in ascending order and the road closing the first cycle found is
// returned.
func (g *Graph) Cycles() (int, bool) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	// Depth-first search with a permanent set (fully explored) and a
	// temporary set (current recursion stack).
	permanent := make(map[int]bool)
	temporary := make(map[int]bool)

	var visit func(n *node) (int, bool)
	visit = func(n *node) (int, bool) {
		if permanent[n.id] {
			return 0, false
		}
		if temporary[n.id] {
			return n.id, true
		}
		temporary[n.id] = true
		for _, id := range sortedIDs(n.out) {
			if found, ok := visit(n.out[id]); ok {
				return found, true
			}
		}
		delete(temporary, n.id)
		permanent[n.id] = true
		return 0, false
	}

	for _, id := range sortedIDs(g.nodes) {
		if found, ok := visit(g.nodes[id]); ok {
			return found, true
		}
	}
	return 0, false
}

// sortedIDs returns the keys of nodes in ascending order, never nil.
func sortedIDs(nodes map[int]*node) []int {
	ids := make([]int, 0, len(nodes))
	for id := range nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
