package ontology

import "sort"

/*
Registry is the in-memory ontology schema described in spec.md §3.2: an
insertion-ordered collection of Classes, Properties, Namespaces and
Ontologies, keyed by URI, plus a row-id↔URI mapping for backends that
address schema entities by integer id.

A Registry is built once by a loader ([LoadRDFFiles] or a
database-introspection loader) and is treated as read-only for the rest
of the process (spec.md §3.2 Lifecycle). Nothing in this package
enforces that read-only contract at the type level; callers simply
stop calling the `add*` methods once loading completes.
*/
type Registry struct {
	classes    []*Class
	properties []*Property
	namespaces []*Namespace
	ontologies []*Ontology

	classByURI    map[string]*Class
	propertyByURI map[string]*Property
	namespaceByURI map[string]*Namespace
	ontologyByURI map[string]*Ontology

	propertyByName map[string]*Property

	idToURI map[uint64]string
	uriToID map[string]uint64

	rdfType     *Property
	nrlAdded    *Property
	nrlModified *Property

	digests map[string]string
}

/*
RegistryStats is a read-only summary of a [Registry]'s population,
supplementing spec.md with a `tracker-control-status`-style surface
(SPEC_FULL.md §7).
*/
type RegistryStats struct {
	Classes    int
	Properties int
	Namespaces int
	Ontologies int
}

/*
NewRegistry returns an empty, ready-to-populate Registry.
*/
func NewRegistry() *Registry {
	return &Registry{
		classByURI:     make(map[string]*Class),
		propertyByURI:  make(map[string]*Property),
		namespaceByURI: make(map[string]*Namespace),
		ontologyByURI:  make(map[string]*Ontology),
		propertyByName: make(map[string]*Property),
		idToURI:        make(map[uint64]string),
		uriToID:        make(map[string]uint64),
		digests:        make(map[string]string),
	}
}

/*
Stats returns a snapshot of the registry's current population counts.
*/
func (r *Registry) Stats() RegistryStats {
	if r == nil {
		return RegistryStats{}
	}
	return RegistryStats{
		Classes:    len(r.classes),
		Properties: len(r.properties),
		Namespaces: len(r.namespaces),
		Ontologies: len(r.ontologies),
	}
}

/*
AddClass appends c to the registry's Class sequence and indexes it by
URI. Returns [ErrDuplicateClass] if a Class with the same URI is
already registered (spec.md §3.2 invariant 2).
*/
func (r *Registry) AddClass(c *Class) error {
	if r == nil {
		return ErrNilRegistry
	}
	if c == nil || len(c.URI()) == 0 {
		return ErrNilArguments
	}
	if _, exists := r.classByURI[c.URI()]; exists {
		return ErrDuplicateClass
	}
	c.registry = r
	r.classes = append(r.classes, c)
	r.classByURI[c.URI()] = c
	return nil
}

/*
AddProperty appends p to the registry's Property sequence and indexes
it by URI and by short name. Returns [ErrDuplicateProperty] if a
Property with the same URI is already registered. Also caches the
rdf:type, nrl:added and nrl:modified fast-path slots, matched by full
URI so a same-named property from an unrelated namespace (e.g.
nao:modified) cannot shadow the real one (spec.md §3.2, §4.B).
*/
func (r *Registry) AddProperty(p *Property) error {
	if r == nil {
		return ErrNilRegistry
	}
	if p == nil || len(p.URI()) == 0 {
		return ErrNilArguments
	}
	if _, exists := r.propertyByURI[p.URI()]; exists {
		return ErrDuplicateProperty
	}
	p.registry = r
	r.properties = append(r.properties, p)
	r.propertyByURI[p.URI()] = p
	r.propertyByName[p.Name()] = p

	switch p.URI() {
	case rdfNS + "type":
		r.rdfType = p
	case nrlNS + "added":
		r.nrlAdded = p
	case nrlNS + "modified":
		r.nrlModified = p
	}
	return nil
}

/*
AddNamespace appends n to the registry's Namespace sequence and indexes
it by URI. Returns [ErrDuplicateNamespace] on a repeated URI.
*/
func (r *Registry) AddNamespace(n *Namespace) error {
	if r == nil {
		return ErrNilRegistry
	}
	if n == nil || len(n.URI()) == 0 {
		return ErrNilArguments
	}
	if _, exists := r.namespaceByURI[n.URI()]; exists {
		return ErrDuplicateNamespace
	}
	n.registry = r
	r.namespaces = append(r.namespaces, n)
	r.namespaceByURI[n.URI()] = n
	return nil
}

/*
AddOntology appends o to the registry's Ontology sequence and indexes
it by URI. Returns [ErrDuplicateOntology] on a repeated URI.
*/
func (r *Registry) AddOntology(o *Ontology) error {
	if r == nil {
		return ErrNilRegistry
	}
	if o == nil || len(o.URI()) == 0 {
		return ErrNilArguments
	}
	if _, exists := r.ontologyByURI[o.URI()]; exists {
		return ErrDuplicateOntology
	}
	o.registry = r
	r.ontologies = append(r.ontologies, o)
	r.ontologyByURI[o.URI()] = o
	return nil
}

/*
AddIDURIPair populates the bidirectional row-id↔URI mapping used by
id-valued columns from a database-introspection load (spec.md §4.B).
*/
func (r *Registry) AddIDURIPair(id uint64, uri string) {
	if r == nil || len(uri) == 0 {
		return
	}
	r.idToURI[id] = uri
	r.uriToID[uri] = id
}

/*
URIForID resolves a row id to its URI, if known.
*/
func (r *Registry) URIForID(id uint64) (string, bool) {
	if r == nil {
		return "", false
	}
	uri, ok := r.idToURI[id]
	return uri, ok
}

/*
IDForURI resolves a URI to its row id, if known.
*/
func (r *Registry) IDForURI(uri string) (uint64, bool) {
	if r == nil {
		return 0, false
	}
	id, ok := r.uriToID[uri]
	return id, ok
}

/*
ClassByURI performs an O(1) lookup of a Class by its full URI.
*/
func (r *Registry) ClassByURI(uri string) *Class {
	if r == nil {
		return nil
	}
	return r.classByURI[uri]
}

/*
PropertyByURI performs an O(1) lookup of a Property by its full URI.
*/
func (r *Registry) PropertyByURI(uri string) *Property {
	if r == nil {
		return nil
	}
	return r.propertyByURI[uri]
}

/*
PropertyByName resolves a Property by its short display name (the
part of its URI after the last '#' or '/'), so "type" resolves the
rdf:type property (spec.md §3.2). Prefixed names such as "rdf:type"
are not expanded.
*/
func (r *Registry) PropertyByName(name string) *Property {
	if r == nil {
		return nil
	}
	return r.propertyByName[name]
}

/*
NamespaceByURI performs an O(1) lookup of a Namespace by its full URI.
*/
func (r *Registry) NamespaceByURI(uri string) *Namespace {
	if r == nil {
		return nil
	}
	return r.namespaceByURI[uri]
}

/*
OntologyByURI performs an O(1) lookup of an Ontology by its full URI.
*/
func (r *Registry) OntologyByURI(uri string) *Ontology {
	if r == nil {
		return nil
	}
	return r.ontologyByURI[uri]
}

/*
Classes enumerates all registered Classes in insertion order (or, after
[Registry.Sort], in alphabetical order by name).
*/
func (r *Registry) Classes() []*Class {
	if r == nil {
		return nil
	}
	return r.classes
}

/*
Properties enumerates all registered Properties in insertion order.
*/
func (r *Registry) Properties() []*Property {
	if r == nil {
		return nil
	}
	return r.properties
}

/*
Namespaces enumerates all registered Namespaces in insertion order.
*/
func (r *Registry) Namespaces() []*Namespace {
	if r == nil {
		return nil
	}
	return r.namespaces
}

/*
Ontologies enumerates all registered Ontologies in insertion order.
*/
func (r *Registry) Ontologies() []*Ontology {
	if r == nil {
		return nil
	}
	return r.ontologies
}

/*
RDFType returns the cached fast-path Property for rdf:type, or nil if
it was never registered.
*/
func (r *Registry) RDFType() *Property {
	if r == nil {
		return nil
	}
	return r.rdfType
}

/*
NRLAdded returns the cached fast-path Property for nrl:added, or nil.
*/
func (r *Registry) NRLAdded() *Property {
	if r == nil {
		return nil
	}
	return r.nrlAdded
}

/*
NRLModified returns the cached fast-path Property for nrl:modified, or
nil.
*/
func (r *Registry) NRLModified() *Property {
	if r == nil {
		return nil
	}
	return r.nrlModified
}

/*
Sort reorders the registry's Class sequence alphabetically by name, as
described in spec.md §4.B. Subsequent calls to [Registry.Classes]
reflect the new order; URI lookups are unaffected.
*/
func (r *Registry) Sort() {
	if r == nil {
		return
	}
	sort.Slice(r.classes, func(i, j int) bool {
		return r.classes[i].Name() < r.classes[j].Name()
	})
}

/*
AddDomainIndex registers p as a domain index of c, enforcing spec.md
§3.2 invariant 3: p must not already be a first-class property of c
(i.e. p.Domain() == c). On success both sides of the relation are
updated: c gains p in its domain-index list and p gains c in its
reverse domain-indexes list.
*/
func (r *Registry) AddDomainIndex(c *Class, p *Property) error {
	if r == nil {
		return ErrNilRegistry
	}
	if c == nil || p == nil {
		return ErrNilArguments
	}
	if c.HasDirectProperty(p) {
		return ErrDomainIndexConflict
	}
	c.addDomainIndex(p)
	p.addDomainIndexOf(c)
	return nil
}

/*
SetMaxCardinality applies an `nrl:maxCardinality` triple to p,
rejecting a cardinality of exactly 0 (spec.md §3.2 invariant 5,
§4.C.1). Any cardinality other than exactly 1 is treated as
multi-valued, including negative or otherwise nonsensical values
(spec.md §9).
*/
func (r *Registry) SetMaxCardinality(p *Property, cardinality int) error {
	if p == nil {
		return ErrNilArguments
	}
	if cardinality == 0 {
		return ErrInvalidCardinality
	}
	p.SetMultipleValues(cardinality != 1)
	return nil
}

/*
SetSecondaryIndex links p's nrl:secondaryIndex to target, enforcing
spec.md §3.2 invariant 4: target must itself be indexed, and neither p
nor target may permit multiple values.
*/
func (r *Registry) SetSecondaryIndex(p, target *Property) error {
	if p == nil || target == nil {
		return ErrNilArguments
	}
	if !target.Indexed() || p.MultipleValues() || target.MultipleValues() {
		return ErrInvalidSecondaryIndex
	}
	p.SetSecondaryIndex(target)
	return nil
}

/*
CheckCompleteness validates spec.md §4.C.3 over every registered
Property: domain and range must both be set. Returns a [LoadError]
wrapping one [IncompletePropertyDefinitionError] per offending Property,
or nil if all properties are complete.
*/
func (r *Registry) CheckCompleteness() error {
	if r == nil {
		return nil
	}
	var errs []error
	for _, p := range r.properties {
		missingDomain, missingRange := p.Incomplete()
		if missingDomain || missingRange {
			errs = append(errs, &IncompletePropertyDefinitionError{
				Provenance:    p.Provenance,
				URI:           p.URI(),
				MissingDomain: missingDomain,
				MissingRange:  missingRange,
			})
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return &LoadError{Errors: errs}
}

/*
SetOntologyFileDigest records the content digest computed for an
ontology source file, supplementing spec.md with change detection
(SPEC_FULL.md §7) so repeated loads can skip unchanged files.
*/
func (r *Registry) SetOntologyFileDigest(uri, digest string) {
	if r == nil || len(uri) == 0 {
		return
	}
	r.digests[uri] = digest
}

/*
OntologyFileDigest returns the last-recorded content digest for an
ontology source file, and whether one was ever recorded.
*/
func (r *Registry) OntologyFileDigest(uri string) (string, bool) {
	if r == nil {
		return "", false
	}
	d, ok := r.digests[uri]
	return d, ok
}
