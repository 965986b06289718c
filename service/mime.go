package service

import "strings"

/*
MimeMap resolves a mime type to a service name: a direct map consulted
first, falling back to an ordered prefix list, and finally to "Other"
when nothing matches (spec: "direct map + ordered prefix list").
*/
type MimeMap struct {
	direct map[string]string
	prefix []prefixRule
}

type prefixRule struct {
	prefix  string
	service string
}

/*
NewMimeMap returns an empty MimeMap.
*/
func NewMimeMap() *MimeMap {
	return &MimeMap{direct: make(map[string]string)}
}

/*
AddDirect registers an exact mime → service mapping.
*/
func (m *MimeMap) AddDirect(mime, svc string) {
	if m == nil {
		return
	}
	m.direct[mime] = svc
}

/*
AddPrefix appends a prefix → service rule. Rules are consulted in the
order they were added, so more specific prefixes must be added first.
*/
func (m *MimeMap) AddPrefix(prefix, svc string) {
	if m == nil {
		return
	}
	m.prefix = append(m.prefix, prefixRule{prefix: prefix, service: svc})
}

/*
Resolve maps mime to a service name: an exact match in the direct table
wins, then the first matching ordered prefix rule, then "Other".
*/
func (m *MimeMap) Resolve(mime string) string {
	if m == nil {
		return "Other"
	}
	if svc, ok := m.direct[mime]; ok {
		return svc
	}
	for _, rule := range m.prefix {
		if strings.HasPrefix(mime, rule.prefix) {
			return rule.service
		}
	}
	return "Other"
}
