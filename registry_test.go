package ontology

import "testing"

func TestRegistryAddClassDuplicate(t *testing.T) {
	reg := NewRegistry()
	c1 := &Class{}
	c1.SetURI("ex:A")
	if err := reg.AddClass(c1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c2 := &Class{}
	c2.SetURI("ex:A")
	if err := reg.AddClass(c2); err != ErrDuplicateClass {
		t.Fatalf("want ErrDuplicateClass, got %v", err)
	}
}

func TestRegistryClassByURILookup(t *testing.T) {
	reg := NewRegistry()
	c := &Class{}
	c.SetURI("ex:A")
	if err := reg.AddClass(c); err != nil {
		t.Fatal(err)
	}
	if got := reg.ClassByURI("ex:A"); got != c {
		t.Fatalf("ClassByURI returned %v, want %v", got, c)
	}
	if got := reg.ClassByURI("ex:missing"); got != nil {
		t.Fatalf("want nil for unknown URI, got %v", got)
	}
}

func TestRegistryAddDomainIndexConflict(t *testing.T) {
	reg := NewRegistry()
	c := &Class{}
	c.SetURI("ex:A")
	reg.AddClass(c)

	p := &Property{}
	p.SetURI("ex:p")
	p.SetDomain(c)
	reg.AddProperty(p)

	if err := reg.AddDomainIndex(c, p); err != ErrDomainIndexConflict {
		t.Fatalf("want ErrDomainIndexConflict, got %v", err)
	}
}

func TestRegistryAddDomainIndexSucceeds(t *testing.T) {
	reg := NewRegistry()
	a := &Class{}
	a.SetURI("ex:A")
	reg.AddClass(a)

	b := &Class{}
	b.SetURI("ex:B")
	reg.AddClass(b)

	p := &Property{}
	p.SetURI("ex:p")
	p.SetDomain(a)
	reg.AddProperty(p)

	if err := reg.AddDomainIndex(b, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := b.DomainIndexes(); len(got) != 1 || got[0] != p {
		t.Fatalf("Class.DomainIndexes = %v", got)
	}
	if got := p.DomainIndexes(); len(got) != 1 || got[0] != b {
		t.Fatalf("Property.DomainIndexes = %v", got)
	}
}

func TestRegistrySetMaxCardinality(t *testing.T) {
	reg := NewRegistry()
	p := &Property{}
	p.SetURI("ex:p")
	reg.AddProperty(p)

	if err := reg.SetMaxCardinality(p, 0); err != ErrInvalidCardinality {
		t.Fatalf("want ErrInvalidCardinality, got %v", err)
	}
	if err := reg.SetMaxCardinality(p, 1); err != nil {
		t.Fatal(err)
	}
	if p.MultipleValues() {
		t.Fatal("cardinality 1 should not be multi-valued")
	}
	if err := reg.SetMaxCardinality(p, 7); err != nil {
		t.Fatal(err)
	}
	if !p.MultipleValues() {
		t.Fatal("cardinality other than 1 should be multi-valued")
	}
}

func TestRegistrySetSecondaryIndex(t *testing.T) {
	reg := NewRegistry()
	p := &Property{}
	p.SetURI("ex:p")
	p.SetMultipleValues(false)
	reg.AddProperty(p)

	target := &Property{}
	target.SetURI("ex:target")
	target.SetMultipleValues(false)
	target.SetIndexed(true)
	reg.AddProperty(target)

	if err := reg.SetSecondaryIndex(p, target); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.SecondaryIndex() != target {
		t.Fatalf("SecondaryIndex() = %v, want %v", p.SecondaryIndex(), target)
	}

	unindexed := &Property{}
	unindexed.SetURI("ex:unindexed")
	reg.AddProperty(unindexed)
	if err := reg.SetSecondaryIndex(p, unindexed); err != ErrInvalidSecondaryIndex {
		t.Fatalf("want ErrInvalidSecondaryIndex, got %v", err)
	}
}

func TestRegistryCheckCompleteness(t *testing.T) {
	reg := NewRegistry()
	c := &Class{}
	c.SetURI("ex:A")
	reg.AddClass(c)

	complete := &Property{}
	complete.SetURI("ex:complete")
	complete.SetDomain(c)
	complete.SetRange(c)
	reg.AddProperty(complete)

	incomplete := &Property{}
	incomplete.SetURI("ex:incomplete")
	incomplete.SetDomain(c)
	reg.AddProperty(incomplete)

	err := reg.CheckCompleteness()
	if err == nil {
		t.Fatal("want error for incomplete property")
	}
	le, ok := err.(*LoadError)
	if !ok || len(le.Errors) != 1 {
		t.Fatalf("want single LoadError entry, got %#v", err)
	}
	ipde, ok := le.Errors[0].(*IncompletePropertyDefinitionError)
	if !ok || ipde.URI != "ex:incomplete" || !ipde.MissingRange || ipde.MissingDomain {
		t.Fatalf("unexpected IncompletePropertyDefinitionError: %#v", ipde)
	}
}

func TestRegistrySort(t *testing.T) {
	reg := NewRegistry()
	for _, uri := range []string{"ex:Zebra", "ex:Apple", "ex:Mango"} {
		c := &Class{}
		c.SetURI(uri)
		reg.AddClass(c)
	}
	reg.Sort()
	names := []string{reg.Classes()[0].Name(), reg.Classes()[1].Name(), reg.Classes()[2].Name()}
	want := []string{"Apple", "Mango", "Zebra"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("sorted classes = %v, want %v", names, want)
		}
	}
}

func TestRegistryFastPathSlots(t *testing.T) {
	reg := NewRegistry()
	p := &Property{}
	p.SetURI(rdfNS + "type")
	reg.AddProperty(p)

	if reg.RDFType() != p {
		t.Fatalf("RDFType() = %v, want %v", reg.RDFType(), p)
	}
}

func TestRegistryFastPathSlotsIgnoreSameLocalNameFromOtherNamespace(t *testing.T) {
	reg := NewRegistry()
	decoy := &Property{}
	decoy.SetURI("http://www.semanticdesktop.org/ontologies/2007/03/22/nao#modified")
	reg.AddProperty(decoy)

	if reg.NRLModified() != nil {
		t.Fatalf("NRLModified() = %v, want nil for a same-named property from an unrelated namespace", reg.NRLModified())
	}

	real := &Property{}
	real.SetURI(nrlNS + "modified")
	reg.AddProperty(real)

	if reg.NRLModified() != real {
		t.Fatalf("NRLModified() = %v, want %v", reg.NRLModified(), real)
	}
}

func TestRegistryStats(t *testing.T) {
	reg := NewRegistry()
	c := &Class{}
	c.SetURI("ex:A")
	reg.AddClass(c)
	p := &Property{}
	p.SetURI("ex:p")
	reg.AddProperty(p)

	stats := reg.Stats()
	if stats.Classes != 1 || stats.Properties != 1 {
		t.Fatalf("unexpected stats: %#v", stats)
	}
}
