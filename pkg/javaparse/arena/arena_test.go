package arena

import (
	"testing"

	"github.com/javalang/javaparse/pkg/javaparse/ast"
)

func TestAllocateAssignsMonotonicIndices(t *testing.T) {
	a := New(0)
	i0 := a.Allocate(0, 5, ast.KindCompilationUnit, NoParent)
	i1 := a.Allocate(0, 3, ast.KindNameExpression, i0)
	if i0 != 0 || i1 != 1 {
		t.Fatalf("expected indices 0,1 got %d,%d", i0, i1)
	}
}

func TestChildOrderingAndParentConsistency(t *testing.T) {
	a := New(0)
	root := a.Allocate(0, 10, ast.KindCompilationUnit, NoParent)
	c1 := a.Allocate(0, 3, ast.KindNameExpression, root)
	c2 := a.Allocate(3, 3, ast.KindNameExpression, root)
	c3 := a.Allocate(6, 3, ast.KindNameExpression, root)

	ids := a.ChildIDs(root)
	want := []int32{c1, c2, c3}
	if len(ids) != len(want) {
		t.Fatalf("got %d children, want %d", len(ids), len(want))
	}
	for i, id := range ids {
		if id != want[i] {
			t.Errorf("child %d: got %d want %d", i, id, want[i])
		}
		if a.Parent(id) != root {
			t.Errorf("child %d: parent %d, want %d", id, a.Parent(id), root)
		}
	}
}

func TestInterleavedAllocationRelocatesChildren(t *testing.T) {
	a := New(0)
	p1 := a.Allocate(0, 0, ast.KindClassDeclaration, NoParent)
	p2 := a.Allocate(0, 0, ast.KindClassDeclaration, NoParent)

	c1 := a.Allocate(0, 1, ast.KindNameExpression, p1)
	d1 := a.Allocate(1, 1, ast.KindNameExpression, p2)
	c2 := a.Allocate(2, 1, ast.KindNameExpression, p1) // interleaved: forces relocation
	d2 := a.Allocate(3, 1, ast.KindNameExpression, p2)

	gotP1 := a.ChildIDs(p1)
	if len(gotP1) != 2 || gotP1[0] != c1 || gotP1[1] != c2 {
		t.Errorf("p1 children = %v, want [%d %d]", gotP1, c1, c2)
	}
	gotP2 := a.ChildIDs(p2)
	if len(gotP2) != 2 || gotP2[0] != d1 || gotP2[1] != d2 {
		t.Errorf("p2 children = %v, want [%d %d]", gotP2, d1, d2)
	}
}

func TestUpdateLength(t *testing.T) {
	a := New(0)
	root := a.Allocate(0, 0, ast.KindClassDeclaration, NoParent)
	if err := a.UpdateLength(root, 42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	node, err := a.Read(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if node.Length != 42 {
		t.Errorf("length = %d, want 42", node.Length)
	}
}

func TestReadInvalidIndex(t *testing.T) {
	a := New(0)
	a.Allocate(0, 1, ast.KindNameExpression, NoParent)
	if _, err := a.Read(5); err == nil {
		t.Error("expected error for out-of-range index")
	}
	if _, err := a.Read(-1); err == nil {
		t.Error("expected error for negative index")
	}
}

func TestResetClearsNodesKeepsUsable(t *testing.T) {
	a := New(0)
	a.Allocate(0, 1, ast.KindNameExpression, NoParent)
	a.Reset()
	if a.Len() != 0 {
		t.Errorf("expected 0 nodes after reset, got %d", a.Len())
	}
	idx := a.Allocate(0, 1, ast.KindNameExpression, NoParent)
	if idx != 0 {
		t.Errorf("expected fresh index 0 after reset, got %d", idx)
	}
}

func TestNodeContainment(t *testing.T) {
	a := New(0)
	root := a.Allocate(0, 0, ast.KindClassDeclaration, NoParent)
	child := a.Allocate(2, 3, ast.KindNameExpression, root)
	a.UpdateLength(root, 10)

	rootNode, _ := a.Read(root)
	childNode, _ := a.Read(child)
	if childNode.Start < rootNode.Start {
		t.Error("child starts before parent")
	}
	if childNode.Start+childNode.Length > rootNode.Start+rootNode.Length {
		t.Error("child extends past parent")
	}
}
