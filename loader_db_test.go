package ontology

import "testing"

func TestLoadFromDatabaseNilArgument(t *testing.T) {
	reg, err := LoadFromDatabase(nil)
	if err != ErrNilArguments {
		t.Fatalf("want ErrNilArguments, got %v", err)
	}
	if reg != nil {
		t.Fatalf("want nil registry on argument error, got %v", reg)
	}
}
