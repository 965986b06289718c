package ontology

/*
Ontology implements the RASCHEMA-style ontology entity described in
spec.md §3.1: little more than a URI identifying a group of Classes
and Properties that were declared together (e.g. "nie", "nfo", "nrl").

Instances are normally constructed only by a [Registry] loader via
[Registry.AddOntology].
*/
type Ontology struct {
	uri string

	registry *Registry
}

/*
URI returns the ontology's unique URI.
*/
func (o *Ontology) URI() string {
	if o == nil {
		return ""
	}
	return o.uri
}

/*
IsZero reports whether the receiver is unpopulated.
*/
func (o *Ontology) IsZero() bool {
	return o == nil || len(o.uri) == 0
}
