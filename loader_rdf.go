package ontology

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/xtoproto/rdf/ntriples"
)

/*
loader_rdf.go implements the RDF-file ontology loader (spec.md §4.C.1):
build a populated [Registry] from a list of ontology source files, each
readable as an RDF triple stream. Predicate and type URIs are declared
as [ntriples.IRI] values, the term type the retrieval pack's own
rdfxml reader uses throughout; the pack carries no example of a
one-call streaming N-Triples decoder for this library, so decodeTriples
below hand-writes its own line-oriented read loop the same way the
pack's rdfxml.Parser hand-writes its own XML token loop rather than
leaning on an API this library does not expose for this format.

[ntriples]: https://pkg.go.dev/github.com/google/xtoproto/rdf/ntriples
*/

const (
	rdfNS  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	rdfsNS = "http://www.w3.org/2000/01/rdf-schema#"
	nrlNS  = "http://www.semanticdesktop.org/ontologies/2007/08/15/nrl#"
)

var (
	predRDFType       = ntriples.IRI(rdfNS + "type")
	predSubClassOf    = ntriples.IRI(rdfsNS + "subClassOf")
	predSubPropertyOf = ntriples.IRI(rdfsNS + "subPropertyOf")
	predDomain        = ntriples.IRI(rdfsNS + "domain")
	predRange         = ntriples.IRI(rdfsNS + "range")
	predNotify        = ntriples.IRI(nrlNS + "notify")
	predDomainIndex   = ntriples.IRI(nrlNS + "domainIndex")
	predMaxCard       = ntriples.IRI(nrlNS + "maxCardinality")
	predIndexed       = ntriples.IRI(nrlNS + "indexed")
	predFulltext      = ntriples.IRI(nrlNS + "fulltextIndexed")
	predSecondaryIdx  = ntriples.IRI(nrlNS + "secondaryIndex")
	predWeight        = ntriples.IRI(nrlNS + "weight")
	predPrefix        = ntriples.IRI(nrlNS + "prefix")

	classClass                 = rdfsNS + "Class"
	classProperty               = rdfNS + "Property"
	classInverseFunctionalProp  = nrlNS + "InverseFunctionalProperty"
	classNamespace              = nrlNS + "Namespace"
	classOntology                = nrlNS + "Ontology"
)

/*
rdfTriple is the loader's internal, decoupled view of a single parsed
statement: plain strings plus file provenance, independent of
[ntriples]'s own term types so the predicate dispatch table below
reads as ordinary string comparisons.
*/
type rdfTriple struct {
	Subject   string
	Predicate string
	Object    string
	Provenance
}

/*
LoadRDFFiles builds a new [Registry] from files, applying each file's
triples in file order and each file in list order (spec.md §5). A
per-triple failure is recorded but does not abort the file; after all
files are processed the loader runs [Registry.CheckCompleteness]. Any
accumulated triple errors or completeness failures are returned
together as a single [LoadError].
*/
func LoadRDFFiles(files []string) (*Registry, error) {
	if len(files) == 0 {
		return nil, ErrNilArguments
	}

	reg := NewRegistry()
	var loadErrs []error

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			loadErrs = append(loadErrs, &ParseError{
				Provenance: Provenance{File: file},
				Err:        err,
			})
			continue
		}
		reg.SetOntologyFileDigest(file, fileDigest(data))

		triples, err := decodeTriples(file, data)
		if err != nil {
			loadErrs = append(loadErrs, &ParseError{
				Provenance: Provenance{File: file},
				Err:        err,
			})
			continue
		}

		for _, t := range triples {
			if err := applyTriple(reg, t); err != nil {
				loadErrs = append(loadErrs, &ParseError{
					Provenance: t.Provenance,
					Subject:    t.Subject,
					Predicate:  t.Predicate,
					Object:     t.Object,
					Err:        err,
				})
			}
		}
	}

	if err := reg.CheckCompleteness(); err != nil {
		if le, ok := err.(*LoadError); ok {
			loadErrs = append(loadErrs, le.Errors...)
		}
	}

	if len(loadErrs) > 0 {
		return reg, &LoadError{Errors: loadErrs}
	}
	return reg, nil
}

var ntripleStatement = regexp.MustCompile(`^(<[^>]*>)\s+(<[^>]*>)\s+(.+?)\s*\.$`)

/*
decodeTriples parses every `<subject> <predicate> object .` statement
out of a single ontology file, tagging each with its 1-based line
number for provenance. Blank lines and `#`-prefixed comment lines are
skipped, matching N-Triples' own line-comment convention.
*/
func decodeTriples(file string, data []byte) ([]rdfTriple, error) {
	var out []rdfTriple
	scanner := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if len(text) == 0 || strings.HasPrefix(text, "#") {
			continue
		}
		m := ntripleStatement.FindStringSubmatch(text)
		if m == nil {
			return out, fmt.Errorf("%s:%d: malformed triple statement", file, line)
		}
		out = append(out, rdfTriple{
			Subject:    decodeIRITerm(m[1]),
			Predicate:  decodeIRITerm(m[2]),
			Object:     decodeObjectTerm(m[3]),
			Provenance: Provenance{File: file, Line: line},
		})
	}
	if err := scanner.Err(); err != nil {
		return out, err
	}
	return out, nil
}

func decodeIRITerm(tok string) string {
	return strings.TrimSuffix(strings.TrimPrefix(tok, "<"), ">")
}

/*
decodeObjectTerm reduces an N-Triples object term to the loader's plain
string representation: an IRI term loses its angle brackets, a quoted
literal loses its surrounding quotes and any `^^datatype`/`@lang`
suffix, and anything else (a bare word, for loader-internal test
fixtures) is returned unchanged.
*/
func decodeObjectTerm(tok string) string {
	tok = strings.TrimSpace(tok)
	if strings.HasPrefix(tok, "<") {
		return decodeIRITerm(tok)
	}
	if strings.HasPrefix(tok, `"`) {
		if end := strings.LastIndex(tok, `"`); end > 0 {
			return tok[1:end]
		}
	}
	return tok
}

/*
applyTriple dispatches a single triple to the effect described by
spec.md §4.C.1's predicate table, mutating reg in place. A non-nil
return marks the triple's `had_error` flag without aborting the file.
*/
func applyTriple(reg *Registry, t rdfTriple) error {
	switch t.Predicate {
	case string(predRDFType):
		return applyTypeTriple(reg, t)
	case string(predSubClassOf):
		c := reg.ClassByURI(t.Subject)
		super := reg.ClassByURI(t.Object)
		if c == nil || super == nil {
			return ErrUnknownClass
		}
		c.AddSuperClass(super)
		return nil
	case string(predSubPropertyOf):
		p := reg.PropertyByURI(t.Subject)
		super := reg.PropertyByURI(t.Object)
		if p == nil || super == nil {
			return ErrUnknownProperty
		}
		p.AddSuperProperty(super)
		return nil
	case string(predDomain):
		p := reg.PropertyByURI(t.Subject)
		c := reg.ClassByURI(t.Object)
		if p == nil || c == nil {
			return ErrUnknownProperty
		}
		p.SetDomain(c)
		return nil
	case string(predRange):
		p := reg.PropertyByURI(t.Subject)
		c := reg.ClassByURI(t.Object)
		if p == nil || c == nil {
			return ErrUnknownProperty
		}
		p.SetRange(c)
		return nil
	case string(predNotify):
		c := reg.ClassByURI(t.Subject)
		if c == nil {
			return ErrUnknownClass
		}
		c.SetNotify(eq(t.Object, "true"))
		return nil
	case string(predDomainIndex):
		c := reg.ClassByURI(t.Subject)
		p := reg.PropertyByURI(t.Object)
		if c == nil || p == nil {
			return ErrUnknownClass
		}
		return reg.AddDomainIndex(c, p)
	case string(predMaxCard):
		p := reg.PropertyByURI(t.Subject)
		if p == nil {
			return ErrUnknownProperty
		}
		n, err := strconv.Atoi(t.Object)
		if err != nil {
			return err
		}
		return reg.SetMaxCardinality(p, n)
	case string(predIndexed):
		p := reg.PropertyByURI(t.Subject)
		if p == nil {
			return ErrUnknownProperty
		}
		p.SetIndexed(eq(t.Object, "true"))
		return nil
	case string(predFulltext):
		p := reg.PropertyByURI(t.Subject)
		if p == nil {
			return ErrUnknownProperty
		}
		p.SetFulltextIndexed(eq(t.Object, "true"))
		return nil
	case string(predSecondaryIdx):
		p := reg.PropertyByURI(t.Subject)
		target := reg.PropertyByURI(t.Object)
		if p == nil || target == nil {
			return ErrUnknownProperty
		}
		return reg.SetSecondaryIndex(p, target)
	case string(predWeight):
		p := reg.PropertyByURI(t.Subject)
		if p == nil {
			return ErrUnknownProperty
		}
		n, err := strconv.Atoi(t.Object)
		if err != nil {
			return err
		}
		p.SetWeight(n)
		return nil
	case string(predPrefix):
		n := reg.NamespaceByURI(t.Subject)
		if n == nil {
			return ErrUnknownProperty
		}
		n.SetPrefix(t.Object)
		return nil
	default:
		// Unrecognized predicates (rdfs:label, rdfs:comment, nao:*,
		// tracker:* and the like) carry no loading effect and are
		// silently ignored, matching tracker-ontologies-rdf.c's
		// predicate chain, which has no trailing else.
		return nil
	}
}

/*
applyTypeTriple handles the five distinct effects of an `rdf:type`
triple (spec.md §4.C.1): defining a new Class, Namespace or Ontology,
defining a new Property with its default multi-valued cardinality, or
marking an existing Property inverse-functional.
*/
func applyTypeTriple(reg *Registry, t rdfTriple) error {
	switch t.Object {
	case classClass:
		c := &Class{Provenance: t.Provenance}
		c.SetURI(t.Subject)
		return reg.AddClass(c)
	case classProperty:
		p := &Property{Provenance: t.Provenance}
		p.SetURI(t.Subject)
		p.SetMultipleValues(true)
		return reg.AddProperty(p)
	case classInverseFunctionalProp:
		p := reg.PropertyByURI(t.Subject)
		if p == nil {
			return ErrUnknownProperty
		}
		p.SetInverseFunctional(true)
		return nil
	case classNamespace:
		n := &Namespace{}
		n.uri = t.Subject
		return reg.AddNamespace(n)
	case classOntology:
		o := &Ontology{uri: t.Subject}
		return reg.AddOntology(o)
	default:
		return errorf("unrecognized rdf:type object %q", t.Object)
	}
}
