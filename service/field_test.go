package service

import "testing"

func TestFieldRegistryAddAndLookup(t *testing.T) {
	r := NewFieldRegistry()
	f := &Field{ID: 1, Name: "nie:title", DataType: DataFulltext, Weight: 5}
	r.Add(f)

	if r.ByName("nie:title") != f {
		t.Fatalf("ByName = %v, want %v", r.ByName("nie:title"), f)
	}
	if r.ByID(1) != f {
		t.Fatalf("ByID = %v, want %v", r.ByID(1), f)
	}
}

func TestFieldRegistryChildren(t *testing.T) {
	r := NewFieldRegistry()
	child1 := &Field{ID: 2, Name: "child1"}
	child2 := &Field{ID: 3, Name: "child2"}
	parent := &Field{ID: 1, Name: "parent", ChildFieldIDs: []int{2, 3, 99}}
	r.Add(parent)
	r.Add(child1)
	r.Add(child2)

	children := r.Children(parent)
	if len(children) != 2 || children[0] != child1 || children[1] != child2 {
		t.Fatalf("Children = %v, want [child1 child2] (unresolved id 99 skipped)", children)
	}
}

func TestFieldRegistryNilReceiverSafety(t *testing.T) {
	var r *FieldRegistry
	if r.ByName("x") != nil || r.ByID(1) != nil || r.Children(&Field{}) != nil {
		t.Fatal("nil *FieldRegistry accessors must return zero values")
	}
	r.Add(&Field{}) // must not panic
}
