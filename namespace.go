package ontology

/*
Namespace implements the RASCHEMA-style namespace entity described in
spec.md §3.1: a URI paired with its short prefix (e.g. "nie", "nfo").

Instances are normally constructed only by a [Registry] loader via
[Registry.AddNamespace]; the zero value is not useful on its own.
*/
type Namespace struct {
	uri    string
	prefix string

	registry *Registry
}

/*
URI returns the namespace's unique URI.
*/
func (n *Namespace) URI() string {
	if n == nil {
		return ""
	}
	return n.uri
}

/*
Prefix returns the namespace's short prefix, set via [nrl:prefix]
(spec.md §4.C.1). An empty string means no prefix triple was ever
seen for this namespace.
*/
func (n *Namespace) Prefix() string {
	if n == nil {
		return ""
	}
	return n.prefix
}

/*
SetPrefix assigns the namespace's short prefix. Loaders call this in
response to an `nrl:prefix` triple (spec.md §4.C.1); it is not
normally called by other code.
*/
func (n *Namespace) SetPrefix(prefix string) {
	if n != nil {
		n.prefix = prefix
	}
}

/*
IsZero reports whether the receiver is unpopulated.
*/
func (n *Namespace) IsZero() bool {
	return n == nil || len(n.uri) == 0
}
