// Copyright 2026 The medview Authors
// SPDX-License-Identifier: MIT

package scene

// Scene is a flat container of nodes plus the registry their modification
// events flow through.
//
// Lookup is by type tag, optionally narrowed by name. The scene keeps
// nodes in insertion order and never deduplicates names; callers that
// depend on a singleton node (such as the "default" crosshair) enforce
// that by convention.
type Scene struct {
	registry *Registry
	nodes    []Node
}

// New creates an empty scene with its own event registry.
func New() *Scene {
	return &Scene{registry: NewRegistry()}
}

// Registry returns the scene's event registry.
func (s *Scene) Registry() *Registry { return s.registry }

// Len returns the number of nodes in the scene.
func (s *Scene) Len() int { return len(s.nodes) }

// Add inserts a node and wires its Modified publication to the scene's
// registry. Adding the same node twice is a no-op.
func (s *Scene) Add(n Node) {
	for _, existing := range s.nodes {
		if existing.ID() == n.ID() {
			return
		}
	}
	s.nodes = append(s.nodes, n)
	if a, ok := n.(attacher); ok {
		a.attach(s.registry, n)
	}
}

// Remove detaches a node from the scene. The node's pending subscriptions
// stay in the registry; owners unsubscribe explicitly.
func (s *Scene) Remove(n Node) {
	for i, existing := range s.nodes {
		if existing.ID() == n.ID() {
			s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
			if a, ok := n.(attacher); ok {
				a.detach()
			}
			return
		}
	}
}

// Import adds a batch of nodes and then publishes a single KindSceneLoaded
// event, letting observers re-resolve bindings once the whole batch is in
// place.
func (s *Scene) Import(nodes ...Node) {
	for _, n := range nodes {
		s.Add(n)
	}
	s.registry.Publish(Event{Kind: KindSceneLoaded})
}

// NodesByTag returns all nodes with the given type tag, in insertion order.
func (s *Scene) NodesByTag(tag string) []Node {
	var out []Node
	for _, n := range s.nodes {
		if n.TypeTag() == tag {
			out = append(out, n)
		}
	}
	return out
}

// FirstByName returns the first node matching both tag and name, or nil.
func (s *Scene) FirstByName(tag, name string) Node {
	for _, n := range s.nodes {
		if n.TypeTag() == tag && n.Name() == name {
			return n
		}
	}
	return nil
}
