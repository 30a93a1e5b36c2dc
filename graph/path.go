package graph

// ShortestPath returns the first shortest path from source to target
// over the undirected projection of the graph, or ok=false if they lie
// in different connected components.
//
// Tie-breaking among equally short paths: BFS visits each node's
// undirected neighbors in the order edges were inserted by Build (the
// caller's edge-list order); the first path that reaches target during
// that traversal wins. This is deterministic for a fixed input and
// mirrors the teacher's BFS/ShortestPath traversal order.
func (g *Graph) ShortestPath(source, target string) (path []string, ok bool) {
	if source == target {
		return []string{source}, true
	}

	visited := map[string]bool{source: true}
	parent := map[string]string{}
	queue := []string{source}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, neighbor := range g.adjacency[current] {
			if visited[neighbor] {
				continue
			}
			visited[neighbor] = true
			parent[neighbor] = current
			if neighbor == target {
				return reconstructPath(parent, source, target), true
			}
			queue = append(queue, neighbor)
		}
	}

	return nil, false
}

func reconstructPath(parent map[string]string, source, target string) []string {
	path := []string{target}
	for path[len(path)-1] != source {
		path = append(path, parent[path[len(path)-1]])
	}
	// reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
