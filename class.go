package ontology

/*
Class implements the RASCHEMA-style rdfs:Class entity described in
spec.md §3.1. Instances are value-type records: construction-time
setters populate the instance, read-only getters retrieve its fields
after registration via [Registry.AddClass].

Setting a Class's URI derives its [Class.Name] as the substring
following the last '#' or '/' (spec.md §4.A). Adding a super-class or
a domain-index appends to the receiver's ordered sets without dedup
responsibility; loaders must not add duplicates (spec.md §4.A).
*/
type Class struct {
	uri  string
	id   uint64
	hasID bool
	name string

	notify bool

	superClasses  []*Class
	domainIndexes []*Property

	Provenance

	registry *Registry
}

/*
URI returns the class's unique URI.
*/
func (c *Class) URI() string {
	if c == nil {
		return ""
	}
	return c.uri
}

/*
SetURI assigns the class's URI and derives [Class.Name] from it. This
is normally only called once, at construction time, by a loader.
*/
func (c *Class) SetURI(uri string) {
	if c == nil {
		return
	}
	c.uri = uri
	c.name = localName(uri)
}

/*
ID returns the class's 64-bit row id and a Boolean indicating whether
one was ever set (database-introspection loads always set it; RDF-file
loads only do when the ontology also supplies row ids, which in
practice never happens outside of the persisted/lazy registry form).
*/
func (c *Class) ID() (uint64, bool) {
	if c == nil {
		return 0, false
	}
	return c.id, c.hasID
}

/*
SetID assigns the class's row id.
*/
func (c *Class) SetID(id uint64) {
	if c != nil {
		c.id = id
		c.hasID = true
	}
}

/*
Name returns the class's short display form, derived from the
substring of its URI following the last '#' or '/'.
*/
func (c *Class) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

/*
Notify returns the class's nrl:notify flag (spec.md §4.C.1).
*/
func (c *Class) Notify() bool {
	return c != nil && c.notify
}

/*
SetNotify assigns the class's nrl:notify flag.
*/
func (c *Class) SetNotify(notify bool) {
	if c != nil {
		c.notify = notify
	}
}

/*
SuperClasses returns the ordered set of direct superclasses, in the
order they were added.
*/
func (c *Class) SuperClasses() []*Class {
	if c == nil {
		return nil
	}
	return c.superClasses
}

/*
AddSuperClass appends super to the receiver's ordered superclass set.
Loaders are responsible for not calling this twice with the same
super (spec.md §4.A) — the method itself performs no dedup.
*/
func (c *Class) AddSuperClass(super *Class) {
	if c != nil && super != nil {
		c.superClasses = append(c.superClasses, super)
	}
}

/*
DomainIndexes returns the ordered set of Properties registered as
domain indexes (nrl:domainIndex, spec.md §4.C.1) of this class.
*/
func (c *Class) DomainIndexes() []*Property {
	if c == nil {
		return nil
	}
	return c.domainIndexes
}

/*
addDomainIndex appends p to the receiver's domain-index set. Called
only from [Registry.AddDomainIndex], which enforces spec.md §3.2
invariant 3 and keeps both sides of the Class↔Property relation in
sync.
*/
func (c *Class) addDomainIndex(p *Property) {
	if c != nil && p != nil {
		c.domainIndexes = append(c.domainIndexes, p)
	}
}

/*
HasDirectProperty reports whether p already appears as a first-class
property of this class (i.e. p.Domain() == c). Used by
[Registry.AddDomainIndex] to enforce spec.md §3.2 invariant 3.
*/
func (c *Class) HasDirectProperty(p *Property) bool {
	if c == nil || p == nil {
		return false
	}
	return p.Domain() == c
}

/*
IsZero reports whether the receiver is unpopulated.
*/
func (c *Class) IsZero() bool {
	return c == nil || len(c.uri) == 0
}
