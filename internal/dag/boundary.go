package dag

import "sort"

// EntryPoints returns the sorted IDs of nodes that have outgoing edges but no
// incoming ones: the places execution can begin.
func (g *Graph) EntryPoints() []string {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	var out []string
	for id, n := range g.nodes {
		if len(n.deps) == 0 && len(n.dependents) > 0 {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// EndPoints returns the sorted IDs of nodes that have incoming edges but no
// outgoing ones: the places execution terminates.
func (g *Graph) EndPoints() []string {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	var out []string
	for id, n := range g.nodes {
		if len(n.dependents) == 0 && len(n.deps) > 0 {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// Isolated returns the sorted IDs of nodes with no edges at all.
func (g *Graph) Isolated() []string {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	var out []string
	for id, n := range g.nodes {
		if len(n.deps) == 0 && len(n.dependents) == 0 {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
