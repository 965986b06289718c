package service

/*
DBType enumerates the storage shape a Service's backing index uses.
*/
type DBType int

const (
	DBUnknown DBType = iota
	DBData
	DBIndex
	DBCommon
	DBContent
	DBEmail
	DBFiles
	DBXesam
	DBCache
	DBUser
)

/*
Service is a per-service metadata record, the legacy shape the query
layer consults to resolve which inverted index a search targets and
what its full-text/thumbnail capabilities are.
*/
type Service struct {
	ID             int
	Name           string
	Parent         string
	PropertyPrefix string

	ContentMetadata string
	KeyMetadata     []string

	DBType DBType

	Enabled                bool
	Embedded               bool
	HasMetadata            bool
	HasFullText            bool
	HasThumbs              bool
	ShowServiceFiles       bool
	ShowServiceDirectories bool
}

/*
Registry is an ordered, id-indexed and name-indexed collection of
Services, populated once at startup from configuration.
*/
type Registry struct {
	services   []*Service
	byName     map[string]*Service
	byID       map[int]*Service
}

/*
NewRegistry returns an empty service Registry.
*/
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Service),
		byID:   make(map[int]*Service),
	}
}

/*
Add registers svc, indexing it by both name and id. A second call with
the same name overwrites the earlier registration, matching the
manifest's configuration-reload semantics.
*/
func (r *Registry) Add(svc *Service) {
	if r == nil || svc == nil {
		return
	}
	r.services = append(r.services, svc)
	r.byName[svc.Name] = svc
	r.byID[svc.ID] = svc
}

/*
ByName resolves a Service by its configured name.
*/
func (r *Registry) ByName(name string) *Service {
	if r == nil {
		return nil
	}
	return r.byName[name]
}

/*
ByID resolves a Service by its integer id.
*/
func (r *Registry) ByID(id int) *Service {
	if r == nil {
		return nil
	}
	return r.byID[id]
}

/*
All enumerates every registered Service in registration order.
*/
func (r *Registry) All() []*Service {
	if r == nil {
		return nil
	}
	return r.services
}

/*
ParentChain walks svc's Parent links up to the root, returning the
ordered chain starting with svc itself. A cycle in the configuration
terminates the walk rather than looping forever.
*/
func (r *Registry) ParentChain(svc *Service) []*Service {
	if r == nil || svc == nil {
		return nil
	}
	seen := map[string]bool{svc.Name: true}
	chain := []*Service{svc}
	cur := svc
	for len(cur.Parent) > 0 && !seen[cur.Parent] {
		seen[cur.Parent] = true
		parent := r.byName[cur.Parent]
		if parent == nil {
			break
		}
		chain = append(chain, parent)
		cur = parent
	}
	return chain
}
