// Package scene keeps the ordered set of meshes in a sandbox session.
package scene

import "github.com/DelgadoPedro/prisma/pkg/solids"

// Handle identifies a mesh in a Scene. Handles are never reused, so a
// handle stays invalid after its mesh is removed.
type Handle int

// Scene is an ordered mesh collection. Meshes are drawn in insertion order.
// The scene shares mesh pointers with its callers, so transforming a mesh
// obtained from Get is visible on the next frame.
type Scene struct {
	next   Handle
	order  []Handle
	meshes map[Handle]*solids.Mesh
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{meshes: make(map[Handle]*solids.Mesh)}
}

// Add inserts a mesh and returns its handle.
func (s *Scene) Add(m *solids.Mesh) Handle {
	h := s.next
	s.next++
	s.order = append(s.order, h)
	s.meshes[h] = m
	return h
}

// Remove deletes the mesh with the given handle. It reports whether the
// handle was present.
func (s *Scene) Remove(h Handle) bool {
	if _, ok := s.meshes[h]; !ok {
		return false
	}
	delete(s.meshes, h)
	for i, other := range s.order {
		if other == h {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the mesh for a handle.
func (s *Scene) Get(h Handle) (*solids.Mesh, bool) {
	m, ok := s.meshes[h]
	return m, ok
}

// Len returns the number of meshes.
func (s *Scene) Len() int {
	return len(s.order)
}

// Clear removes every mesh. Previously issued handles stay invalid.
func (s *Scene) Clear() {
	s.order = s.order[:0]
	s.meshes = make(map[Handle]*solids.Mesh)
}

// Meshes returns the meshes in insertion order.
func (s *Scene) Meshes() []*solids.Mesh {
	out := make([]*solids.Mesh, 0, len(s.order))
	for _, h := range s.order {
		out = append(out, s.meshes[h])
	}
	return out
}

// Each calls fn for every mesh in insertion order.
func (s *Scene) Each(fn func(Handle, *solids.Mesh)) {
	for _, h := range s.order {
		fn(h, s.meshes[h])
	}
}
