package service

import "examprep/internal/domain"

// walk states for cycle detection
const (
	unvisited = iota
	visiting
	done
)

// validateMindMap checks that the root resolves within the node mapping,
// every referenced child exists, and the graph reachable from the root
// is acyclic. The root node object carries its own children list which
// may diverge from its node-mapping entry; both are validated. A
// dangling reference or cycle is a reported error, never a silent drop.
func validateMindMap(m *domain.MindMap) error {
	if len(m.Nodes) == 0 {
		return &domain.MindMapValidationError{Reason: "node mapping is empty"}
	}
	if _, ok := m.Nodes[m.Root.ID]; !ok {
		return &domain.MindMapValidationError{
			Reason: "root node id is not a key in the node mapping",
			NodeID: m.Root.ID,
		}
	}

	for _, child := range m.Root.Children {
		if _, ok := m.Nodes[child]; !ok {
			return &domain.MindMapValidationError{
				Reason: "child reference does not resolve",
				NodeID: m.Root.ID,
				Child:  child,
			}
		}
	}
	for id, node := range m.Nodes {
		for _, child := range node.Children {
			if _, ok := m.Nodes[child]; !ok {
				return &domain.MindMapValidationError{
					Reason: "child reference does not resolve",
					NodeID: id,
					Child:  child,
				}
			}
		}
	}

	state := make(map[string]int, len(m.Nodes))
	var visit func(id string) error
	visit = func(id string) error {
		switch state[id] {
		case visiting:
			return &domain.MindMapValidationError{Reason: "cycle detected", NodeID: id}
		case done:
			return nil
		}
		state[id] = visiting
		for _, child := range m.Nodes[id].Children {
			if err := visit(child); err != nil {
				return err
			}
		}
		state[id] = done
		return nil
	}

	state[m.Root.ID] = visiting
	for _, child := range m.Root.Children {
		if err := visit(child); err != nil {
			return err
		}
	}
	for _, child := range m.Nodes[m.Root.ID].Children {
		if err := visit(child); err != nil {
			return err
		}
	}
	state[m.Root.ID] = done
	return nil
}
