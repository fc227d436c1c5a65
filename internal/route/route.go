// Package route walks parent links left behind by a graph search.
package route

// Walk follows parent links from current until it reaches a node without a
// parent. It takes at most limit steps and never revisits a node, so a
// malformed, cyclic parent map still terminates.
func Walk[NodeType comparable](
	parent func(NodeType) (NodeType, bool),
	current NodeType,
	limit int,
) []NodeType {
	path := []NodeType{current}
	seen := map[NodeType]bool{current: true}
	for steps := 0; steps < limit; steps++ {
		previousNode, exists := parent(current)
		if !exists || seen[previousNode] {
			break
		}
		seen[previousNode] = true
		path = append(path, previousNode)
		current = previousNode
	}
	return path
}

// Reverse reverses path in place and returns it.
func Reverse[NodeType any](path []NodeType) []NodeType {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
