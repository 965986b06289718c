package ontology

import "testing"

func TestPropertySetURIDerivesName(t *testing.T) {
	p := &Property{}
	p.SetURI("http://tracker.api.gnome.org/ontology/v3/nie#title")
	if got := p.Name(); got != "title" {
		t.Fatalf("Name() = %q, want %q", got, "title")
	}
}

func TestPropertyNilReceiverSafety(t *testing.T) {
	var p *Property
	if p.URI() != "" || p.Name() != "" || p.Domain() != nil || p.Range() != nil {
		t.Fatal("nil *Property getters must return zero values")
	}
	if p.MultipleValues() || p.Indexed() || p.FulltextIndexed() || p.IsInverseFunctional() {
		t.Fatal("nil *Property boolean getters must return false")
	}
	if !p.IsZero() {
		t.Fatal("nil *Property must report IsZero")
	}
	// Must not panic.
	p.SetURI("ex:p")
	p.SetDomain(&Class{})
	p.SetWeight(5)
}

func TestPropertyIncomplete(t *testing.T) {
	p := &Property{}
	p.SetURI("ex:p")

	missingDomain, missingRange := p.Incomplete()
	if !missingDomain || !missingRange {
		t.Fatalf("fresh property should be missing both, got domain=%v range=%v", missingDomain, missingRange)
	}

	c := &Class{}
	c.SetURI("ex:C")
	p.SetDomain(c)
	missingDomain, missingRange = p.Incomplete()
	if missingDomain || !missingRange {
		t.Fatalf("after SetDomain, got domain=%v range=%v", missingDomain, missingRange)
	}
}

func TestPropertyMultipleValuesDefault(t *testing.T) {
	p := &Property{}
	p.SetURI("ex:p")
	if p.MultipleValues() {
		t.Fatal("MultipleValues should default to false until a loader sets it")
	}
	p.SetMultipleValues(true)
	if !p.MultipleValues() {
		t.Fatal("SetMultipleValues(true) should take effect")
	}
}

func TestPropertyDomainIndexesReverse(t *testing.T) {
	c := &Class{}
	c.SetURI("ex:C")
	p := &Property{}
	p.SetURI("ex:p")

	p.addDomainIndexOf(c)
	got := p.DomainIndexes()
	if len(got) != 1 || got[0] != c {
		t.Fatalf("DomainIndexes() = %v, want [%v]", got, c)
	}
}
