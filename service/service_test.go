package service

import "testing"

func TestRegistryAddAndLookup(t *testing.T) {
	r := NewRegistry()
	svc := &Service{ID: 1, Name: "Files", DBType: DBFiles}
	r.Add(svc)

	if r.ByName("Files") != svc {
		t.Fatalf("ByName(Files) = %v, want %v", r.ByName("Files"), svc)
	}
	if r.ByID(1) != svc {
		t.Fatalf("ByID(1) = %v, want %v", r.ByID(1), svc)
	}
	if len(r.All()) != 1 {
		t.Fatalf("All() len = %d, want 1", len(r.All()))
	}
}

func TestRegistryAddOverwritesByName(t *testing.T) {
	r := NewRegistry()
	first := &Service{ID: 1, Name: "Files"}
	second := &Service{ID: 2, Name: "Files"}
	r.Add(first)
	r.Add(second)

	if r.ByName("Files") != second {
		t.Fatal("second registration with the same name should win")
	}
	if len(r.All()) != 2 {
		t.Fatalf("All() len = %d, want 2 (both registrations retained in sequence)", len(r.All()))
	}
}

func TestParentChain(t *testing.T) {
	r := NewRegistry()
	root := &Service{Name: "Common"}
	mid := &Service{Name: "Files", Parent: "Common"}
	leaf := &Service{Name: "Images", Parent: "Files"}
	r.Add(root)
	r.Add(mid)
	r.Add(leaf)

	chain := r.ParentChain(leaf)
	if len(chain) != 3 || chain[0] != leaf || chain[1] != mid || chain[2] != root {
		t.Fatalf("ParentChain = %v", chain)
	}
}

func TestParentChainBreaksOnCycle(t *testing.T) {
	r := NewRegistry()
	a := &Service{Name: "A", Parent: "B"}
	b := &Service{Name: "B", Parent: "A"}
	r.Add(a)
	r.Add(b)

	chain := r.ParentChain(a)
	if len(chain) != 2 {
		t.Fatalf("ParentChain with a cycle = %v, want length 2", chain)
	}
}

func TestRegistryNilReceiverSafety(t *testing.T) {
	var r *Registry
	if r.ByName("x") != nil || r.ByID(1) != nil || r.All() != nil || r.ParentChain(&Service{}) != nil {
		t.Fatal("nil *Registry accessors must return zero values")
	}
	r.Add(&Service{}) // must not panic
}
