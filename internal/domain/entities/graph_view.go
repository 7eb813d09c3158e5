package entities

import "sort"

// Edge is a "depends on" relation between two nodes of a graph view.
type Edge struct {
	From Coordinates
	To   Coordinates
}

// DependencyGraphView is the resolved dependency graph of one variant, rooted at
// the project node.
type DependencyGraphView struct {
	Name    string
	Project Coordinates

	nodes      coordinatesCatalog
	successors map[string]map[string]bool
}

// NewDependencyGraphView builds a view from its edges. The project node is
// always present, even if no edge mentions it.
func NewDependencyGraphView(name string, project Coordinates, nodes []Coordinates, edges []Edge) *DependencyGraphView {
	view := &DependencyGraphView{
		Name:       name,
		Project:    project,
		nodes:      coordinatesCatalog{},
		successors: map[string]map[string]bool{},
	}
	view.nodes.add(project)
	for _, n := range nodes {
		view.nodes.add(n)
	}
	for _, e := range edges {
		view.addEdge(e)
	}
	return view
}

func (it *DependencyGraphView) addEdge(e Edge) {
	if e.From.IsZero() || e.To.IsZero() {
		return
	}
	it.nodes.add(e.From)
	it.nodes.add(e.To)
	out, ok := it.successors[e.From.Identifier]
	if !ok {
		out = map[string]bool{}
		it.successors[e.From.Identifier] = out
	}
	out[e.To.Identifier] = true
}

// HasNode reports whether the coordinates are part of this view.
func (it *DependencyGraphView) HasNode(c Coordinates) bool {
	_, ok := it.nodes[c.Identifier]
	return ok
}

// Nodes returns every node, sorted by identifier.
func (it *DependencyGraphView) Nodes() []Coordinates {
	ids := make([]string, 0, len(it.nodes))
	for id := range it.nodes {
		ids = append(ids, id)
	}
	return it.resolveSorted(ids)
}

// Children returns the direct successors of a node, sorted. A node that is not
// in the view has no children.
func (it *DependencyGraphView) Children(c Coordinates) []Coordinates {
	out := it.successors[c.Identifier]
	ids := make([]string, 0, len(out))
	for id := range out {
		ids = append(ids, id)
	}
	return it.resolveSorted(ids)
}

// Reachable returns every node reachable from c, c included, sorted.
// Cycles are tolerated.
func (it *DependencyGraphView) Reachable(c Coordinates) []Coordinates {
	if !it.HasNode(c) {
		return nil
	}

	visited := map[string]bool{c.Identifier: true}
	queue := []string{c.Identifier}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for next := range it.successors[current] {
			if visited[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}

	ids := make([]string, 0, len(visited))
	for id := range visited {
		ids = append(ids, id)
	}
	return it.resolveSorted(ids)
}

func (it *DependencyGraphView) resolveSorted(ids []string) []Coordinates {
	sort.Strings(ids)
	result := make([]Coordinates, 0, len(ids))
	for _, id := range ids {
		result = append(result, it.nodes.resolve(id))
	}
	return result
}

// sortedViews returns the views ordered by name.
func sortedViews(views []*DependencyGraphView) []*DependencyGraphView {
	result := make([]*DependencyGraphView, 0, len(views))
	for _, v := range views {
		if v != nil {
			result = append(result, v)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}
