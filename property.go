package ontology

/*
Property implements the RASCHEMA-style rdf:Property entity described
in spec.md §3.1. Like [Class], it is a value-type record populated by
setters at load time and read through getters afterward.
*/
type Property struct {
	uri   string
	id    uint64
	hasID bool
	name  string

	domain *Class
	rang   *Class

	multipleValues       bool
	indexed              bool
	secondaryIndex       *Property
	fulltextIndexed      bool
	weight               int
	isInverseFunctional  bool

	superProperties []*Property
	domainIndexOf   []*Class

	Provenance

	registry *Registry
}

/*
URI returns the property's unique URI.
*/
func (p *Property) URI() string {
	if p == nil {
		return ""
	}
	return p.uri
}

/*
SetURI assigns the property's URI and derives [Property.Name] from it.
*/
func (p *Property) SetURI(uri string) {
	if p == nil {
		return
	}
	p.uri = uri
	p.name = localName(uri)
}

/*
ID returns the property's 64-bit row id and whether one was ever set.
*/
func (p *Property) ID() (uint64, bool) {
	if p == nil {
		return 0, false
	}
	return p.id, p.hasID
}

/*
SetID assigns the property's row id.
*/
func (p *Property) SetID(id uint64) {
	if p != nil {
		p.id = id
		p.hasID = true
	}
}

/*
Name returns the property's short display form.
*/
func (p *Property) Name() string {
	if p == nil {
		return ""
	}
	return p.name
}

/*
Domain returns the Class that owns this property, or nil if unset
(spec.md §4.C.3: unset at load-end is an [IncompletePropertyDefinitionError]).
*/
func (p *Property) Domain() *Class {
	if p == nil {
		return nil
	}
	return p.domain
}

/*
SetDomain assigns the property's rdfs:domain.
*/
func (p *Property) SetDomain(c *Class) {
	if p != nil {
		p.domain = c
	}
}

/*
Range returns the Class that bounds this property's values, or nil if
unset.
*/
func (p *Property) Range() *Class {
	if p == nil {
		return nil
	}
	return p.rang
}

/*
SetRange assigns the property's rdfs:range.
*/
func (p *Property) SetRange(c *Class) {
	if p != nil {
		p.rang = c
	}
}

/*
MultipleValues reports whether the property permits more than one
value per subject. Derived from nrl:maxCardinality: true iff the
cardinality is anything other than exactly 1 (spec.md §3.1, §9 — the
"NaN-like" cardinalities are deliberately treated as multi-valued).
Properties declared via rdf:Property default to true until an explicit
nrl:maxCardinality triple says otherwise (spec.md §4.C.1).
*/
func (p *Property) MultipleValues() bool {
	return p != nil && p.multipleValues
}

/*
SetMultipleValues assigns the property's multi-valued flag.
*/
func (p *Property) SetMultipleValues(multi bool) {
	if p != nil {
		p.multipleValues = multi
	}
}

/*
Indexed reports whether nrl:indexed was set for this property.
*/
func (p *Property) Indexed() bool {
	return p != nil && p.indexed
}

/*
SetIndexed assigns the property's indexed flag.
*/
func (p *Property) SetIndexed(indexed bool) {
	if p != nil {
		p.indexed = indexed
	}
}

/*
SecondaryIndex returns the Property this property is secondarily
indexed against, or nil.
*/
func (p *Property) SecondaryIndex() *Property {
	if p == nil {
		return nil
	}
	return p.secondaryIndex
}

/*
SetSecondaryIndex assigns the property's nrl:secondaryIndex target.
Callers must validate spec.md §3.2 invariant 4 before calling this;
see [Registry.SetSecondaryIndex].
*/
func (p *Property) SetSecondaryIndex(target *Property) {
	if p != nil {
		p.secondaryIndex = target
	}
}

/*
FulltextIndexed reports whether nrl:fulltextIndexed was set.
*/
func (p *Property) FulltextIndexed() bool {
	return p != nil && p.fulltextIndexed
}

/*
SetFulltextIndexed assigns the property's fulltext-indexed flag.
*/
func (p *Property) SetFulltextIndexed(v bool) {
	if p != nil {
		p.fulltextIndexed = v
	}
}

/*
Weight returns the property's nrl:weight score multiplier (defaults to
zero if never set).
*/
func (p *Property) Weight() int {
	if p == nil {
		return 0
	}
	return p.weight
}

/*
SetWeight assigns the property's nrl:weight value.
*/
func (p *Property) SetWeight(w int) {
	if p != nil {
		p.weight = w
	}
}

/*
IsInverseFunctional reports whether this property was declared an
nrl:InverseFunctionalProperty.
*/
func (p *Property) IsInverseFunctional() bool {
	return p != nil && p.isInverseFunctional
}

/*
SetInverseFunctional marks the property as inverse-functional.
*/
func (p *Property) SetInverseFunctional(v bool) {
	if p != nil {
		p.isInverseFunctional = v
	}
}

/*
SuperProperties returns the ordered set of direct super-properties.
*/
func (p *Property) SuperProperties() []*Property {
	if p == nil {
		return nil
	}
	return p.superProperties
}

/*
AddSuperProperty appends super to the receiver's ordered
super-property set. Loaders must not add the same super twice.
*/
func (p *Property) AddSuperProperty(super *Property) {
	if p != nil && super != nil {
		p.superProperties = append(p.superProperties, super)
	}
}

/*
DomainIndexes returns the ordered set of Classes for which this
property is registered as a domain index (the reverse of
[Class.DomainIndexes], spec.md §4.A).
*/
func (p *Property) DomainIndexes() []*Class {
	if p == nil {
		return nil
	}
	return p.domainIndexOf
}

func (p *Property) addDomainIndexOf(c *Class) {
	if p != nil && c != nil {
		p.domainIndexOf = append(p.domainIndexOf, c)
	}
}

/*
IsZero reports whether the receiver is unpopulated.
*/
func (p *Property) IsZero() bool {
	return p == nil || len(p.uri) == 0
}

/*
Incomplete reports whether the property is missing its domain, its
range, or both (spec.md §4.C.3).
*/
func (p *Property) Incomplete() (missingDomain, missingRange bool) {
	return p.domain == nil, p.rang == nil
}
