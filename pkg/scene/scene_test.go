package scene

import (
	"testing"

	"github.com/DelgadoPedro/prisma/pkg/math3d"
	"github.com/DelgadoPedro/prisma/pkg/solids"
)

func TestHandlesStableAcrossRemoval(t *testing.T) {
	s := New()
	h1 := s.Add(solids.NewCube(10))
	h2 := s.Add(solids.NewCube(20))
	h3 := s.Add(solids.NewCube(30))

	if !s.Remove(h2) {
		t.Fatal("remove failed for a live handle")
	}
	if s.Remove(h2) {
		t.Error("second remove of the same handle succeeded")
	}
	if _, ok := s.Get(h2); ok {
		t.Error("removed handle still resolves")
	}

	// Surviving handles keep resolving to their original meshes.
	m1, ok := s.Get(h1)
	if !ok || m1.Base[0].X != -5 {
		t.Errorf("h1 resolves to %v", m1)
	}
	m3, ok := s.Get(h3)
	if !ok || m3.Base[0].X != -15 {
		t.Errorf("h3 resolves to %v", m3)
	}

	// New handles never reuse removed ones.
	h4 := s.Add(solids.NewCube(40))
	if h4 == h2 {
		t.Errorf("handle %v reused", h2)
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	s := New()
	a := solids.NewCube(10)
	b := solids.NewPyramid(10, 20)
	c := solids.NewCone(5, 10, 8)
	s.Add(a)
	hb := s.Add(b)
	s.Add(c)
	s.Remove(hb)

	got := s.Meshes()
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Errorf("order after removal = %v", got)
	}
	if s.Len() != 2 {
		t.Errorf("len = %d, want 2", s.Len())
	}
}

func TestSharedMeshMutationVisible(t *testing.T) {
	s := New()
	h := s.Add(solids.NewCube(10))

	m, _ := s.Get(h)
	m.ApplyTransform(math3d.Translate(100, 0, 0))

	again, _ := s.Get(h)
	if got := again.TransformedVertices()[0].X; got != 95 {
		t.Errorf("vertex x = %v, want 95 after shared mutation", got)
	}
}

func TestClear(t *testing.T) {
	s := New()
	h := s.Add(solids.NewCube(10))
	s.Clear()

	if s.Len() != 0 {
		t.Errorf("len = %d after clear", s.Len())
	}
	if _, ok := s.Get(h); ok {
		t.Error("handle resolves after clear")
	}

	// Handles issued after a clear are still fresh.
	h2 := s.Add(solids.NewCube(10))
	if h2 == h {
		t.Errorf("handle %v reused after clear", h)
	}
}
