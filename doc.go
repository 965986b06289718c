/*
Package ontology implements an in-memory RDF/OWL-style schema registry:
Classes, Properties, Namespaces and Ontologies loaded either from a
stream of RDF triples or by introspecting an already-initialized
storage backend.

# Basic Usage

	import (
		"github.com/tinysparql/go-ontology"
	)

	func main() {
		files := []string{"core.ontology", "nie.ontology", "nfo.ontology"}
		reg, err := ontology.LoadRDFFiles(files)
		if err != nil {
			panic(err)
		}

		if p := reg.PropertyByURI("nie:title"); p != nil {
			_ = p
		}
	}

# Scope

This package owns schema well-formedness only: Class, Property,
Namespace and Ontology definitions, and the two ways of populating a
[Registry] (an RDF-file loader and a database-introspection loader).
Full-text query evaluation lives in the sibling "query" package; the
per-service/per-field legacy manifest lives in "service"; writeback
propagation to source files lives in "writeback".

# Lifecycle

A [Registry] is built once, by exactly one loader call, and is treated
as read-only for the remainder of the process. Concurrent readers do
not need to synchronize among themselves; the read-only contract is a
convention that [Registry] itself does not enforce.
*/
package ontology
