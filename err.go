package ontology

import (
	"errors"
	"fmt"
)

/*
err.go contains predefined error instances that describe certain
known aberrant conditions, plus the provenance-carrying error types
used by the ontology loaders (§4.C, §7 of the specification).
*/

var (
	ErrNilRegistry           error
	ErrNilArguments          error
	ErrDuplicateClass        error
	ErrDuplicateProperty     error
	ErrDuplicateNamespace    error
	ErrDuplicateOntology     error
	ErrUnknownClass          error
	ErrUnknownProperty       error
	ErrInvalidCardinality    error
	ErrInvalidSecondaryIndex error
	ErrDomainIndexConflict   error
	ErrFrozenRegistry        error
)

func init() {
	ErrNilRegistry = errors.New("registry instance is nil; initialization required")
	ErrNilArguments = errors.New("missing input arguments")
	ErrDuplicateClass = errors.New("duplicate class definition")
	ErrDuplicateProperty = errors.New("duplicate property definition")
	ErrDuplicateNamespace = errors.New("duplicate namespace definition")
	ErrDuplicateOntology = errors.New("duplicate ontology definition")
	ErrUnknownClass = errors.New("reference to undefined class")
	ErrUnknownProperty = errors.New("reference to undefined property")
	ErrInvalidCardinality = errors.New("nrl:maxCardinality of 0 is not permitted")
	ErrInvalidSecondaryIndex = errors.New("secondary index property must itself be indexed and neither property may allow multiple values")
	ErrDomainIndexConflict = errors.New("property is already a first-class property of its domain index class")
	ErrFrozenRegistry = errors.New("registry is read-only; loaders may only populate a fresh Registry")
}

func errorf(msg any, x ...any) error {
	switch tv := msg.(type) {
	case string:
		if len(tv) > 0 {
			return fmt.Errorf(tv, x...)
		}
	case error:
		if tv != nil {
			return fmt.Errorf(tv.Error(), x...)
		}
	}

	return nil
}

/*
Provenance records the origin of a schema entity or triple: the
ontology source file it was read from and its line/column position,
per spec.md §3.1 and §6.1.
*/
type Provenance struct {
	File   string
	Line   int
	Column int
}

/*
IsZero returns true if the receiver carries no file provenance, which
is the case for entities materialized from a database-introspection
load or from the persisted registry form.
*/
func (p Provenance) IsZero() bool {
	return len(p.File) == 0 && p.Line == 0 && p.Column == 0
}

func (p Provenance) String() string {
	if p.IsZero() {
		return "<no provenance>"
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

/*
ParseError describes a single malformed or semantically invalid triple
encountered while loading an ontology file (spec.md §4.C.1, §6.1). The
RDF-file loader accumulates these; a non-empty slice fails the overall
load (spec.md §4.C.3, §7).
*/
type ParseError struct {
	Provenance
	Subject   string
	Predicate string
	Object    string
	Err       error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Provenance, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

/*
IncompletePropertyDefinitionError reports a Property whose domain
and/or range were never set by the time loading completed (spec.md
§4.C.3).
*/
type IncompletePropertyDefinitionError struct {
	Provenance
	URI         string
	MissingDomain bool
	MissingRange  bool
}

func (e *IncompletePropertyDefinitionError) Error() string {
	var missing string
	switch {
	case e.MissingDomain && e.MissingRange:
		missing = "domain and range"
	case e.MissingDomain:
		missing = "domain"
	default:
		missing = "range"
	}
	return fmt.Sprintf("%s: property %q is missing %s", e.Provenance, e.URI, missing)
}

/*
LoadError aggregates every [ParseError] and
[IncompletePropertyDefinitionError] produced by a single loader
invocation. A successful load never returns one.
*/
type LoadError struct {
	Errors []error
}

func (e *LoadError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d errors loading ontology, first: %s", len(e.Errors), e.Errors[0])
}

func (e *LoadError) Unwrap() []error { return e.Errors }
