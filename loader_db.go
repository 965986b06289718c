package ontology

import (
	"gorm.io/gorm"
)

/*
loader_db.go implements the database-introspection ontology loader
(spec.md §4.C.2), grounded on the GORM connection and raw-query idiom
in evalgo-org-eve's db package: open a *gorm.DB, run a fixed sequence
of prepared queries, and populate a fresh [Registry]. Table and column
names below follow the persisted-registry key vocabulary in spec.md
§4.B so the two loaders agree on schema shape.
*/

type ontologyRow struct {
	URI string
}

type namespaceRow struct {
	URI    string
	Prefix string
}

type classRow struct {
	URI    string
	ID     uint64
	Notify bool
}

type propertyRow struct {
	URI                 string
	ID                  uint64
	Domain              string
	Range               string
	MaxCardinality      int
	Indexed             bool
	SecondaryIndex      string
	FulltextIndexed     bool
	InverseFunctional   bool
}

type edgeRow struct {
	URI      string
	SuperURI string
}

type domainIndexRow struct {
	ClassURI    string
	PropertyURI string
}

/*
LoadFromDatabase builds a new [Registry] by issuing the fixed sequence
of prepared queries described in spec.md §4.C.2 against an
already-initialized backend. Completeness is checked as in
[LoadRDFFiles], and completeness failures are returned together as a
[LoadError]. A failed query is returned as is with a nil Registry; a
row that cannot be registered or linked stops the load, and its error
is returned as is with the partially populated Registry.
*/
func LoadFromDatabase(db *gorm.DB) (*Registry, error) {
	if db == nil {
		return nil, ErrNilArguments
	}

	reg := NewRegistry()

	var ontologies []ontologyRow
	if err := db.Raw(`SELECT uri FROM ontologies`).Scan(&ontologies).Error; err != nil {
		return nil, err
	}
	for _, row := range ontologies {
		if err := reg.AddOntology(&Ontology{uri: row.URI}); err != nil {
			return reg, err
		}
	}

	var namespaces []namespaceRow
	if err := db.Raw(`SELECT uri, prefix FROM namespaces`).Scan(&namespaces).Error; err != nil {
		return nil, err
	}
	for _, row := range namespaces {
		n := &Namespace{uri: row.URI, prefix: row.Prefix}
		if err := reg.AddNamespace(n); err != nil {
			return reg, err
		}
	}

	var classes []classRow
	if err := db.Raw(`SELECT uri, id, notify FROM classes`).Scan(&classes).Error; err != nil {
		return nil, err
	}
	for _, row := range classes {
		c := &Class{}
		c.SetURI(row.URI)
		c.SetID(row.ID)
		c.SetNotify(row.Notify)
		if err := reg.AddClass(c); err != nil {
			return reg, err
		}
		reg.AddIDURIPair(row.ID, row.URI)
	}

	var properties []propertyRow
	if err := db.Raw(`SELECT uri, id, domain, range, max_cardinality, indexed,
		secondary_index, fulltext_indexed, inverse_functional FROM properties`).
		Scan(&properties).Error; err != nil {
		return nil, err
	}
	for _, row := range properties {
		p := &Property{}
		p.SetURI(row.URI)
		p.SetID(row.ID)
		p.SetDomain(reg.ClassByURI(row.Domain))
		p.SetRange(reg.ClassByURI(row.Range))
		p.SetIndexed(row.Indexed)
		p.SetFulltextIndexed(row.FulltextIndexed)
		p.SetInverseFunctional(row.InverseFunctional)
		if err := reg.AddProperty(p); err != nil {
			return reg, err
		}
		reg.AddIDURIPair(row.ID, row.URI)
		if err := reg.SetMaxCardinality(p, row.MaxCardinality); err != nil {
			return reg, err
		}
	}
	for _, row := range properties {
		if len(row.SecondaryIndex) == 0 {
			continue
		}
		p := reg.PropertyByURI(row.URI)
		target := reg.PropertyByURI(row.SecondaryIndex)
		if p == nil || target == nil {
			return reg, ErrUnknownProperty
		}
		if err := reg.SetSecondaryIndex(p, target); err != nil {
			return reg, err
		}
	}

	var superClasses []edgeRow
	if err := db.Raw(`SELECT uri, super_uri FROM class_super_classes`).Scan(&superClasses).Error; err != nil {
		return nil, err
	}
	for _, row := range superClasses {
		c := reg.ClassByURI(row.URI)
		super := reg.ClassByURI(row.SuperURI)
		if c == nil || super == nil {
			return reg, ErrUnknownClass
		}
		c.AddSuperClass(super)
	}

	var domainIndexes []domainIndexRow
	if err := db.Raw(`SELECT class_uri, property_uri FROM class_domain_indexes`).Scan(&domainIndexes).Error; err != nil {
		return nil, err
	}
	for _, row := range domainIndexes {
		c := reg.ClassByURI(row.ClassURI)
		p := reg.PropertyByURI(row.PropertyURI)
		if c == nil || p == nil {
			return reg, ErrUnknownClass
		}
		if err := reg.AddDomainIndex(c, p); err != nil {
			return reg, err
		}
	}

	var superProperties []edgeRow
	if err := db.Raw(`SELECT uri, super_uri FROM property_super_properties`).Scan(&superProperties).Error; err != nil {
		return nil, err
	}
	for _, row := range superProperties {
		p := reg.PropertyByURI(row.URI)
		super := reg.PropertyByURI(row.SuperURI)
		if p == nil || super == nil {
			return reg, ErrUnknownProperty
		}
		p.AddSuperProperty(super)
	}

	if err := reg.CheckCompleteness(); err != nil {
		return reg, err
	}
	return reg, nil
}
