package writeback

import "context"

/*
Module is the writeback plugin contract described in spec.md §6.3: a
module claims a set of rdf:type URIs and, when a task's types
intersect that set, updates the target file's metadata from a task's
result rows.
*/
type Module interface {
	RDFTypes() []string
	Create(host any) Module
	UpdateMetadata(ctx context.Context, rows []Row) (bool, error)
}

/*
FileModule is the subset of the module contract that file-oriented
modules additionally expose: a mime-type filter the [Scheduler] checks
after [Module.Create] and before taking the file lock or calling
[Module.UpdateMetadata], skipping the update on a mismatch (spec.md
§6.3).
*/
type FileModule interface {
	Module
	ContentTypes() []string
}

/*
Intersects reports whether any of a module's declared rdf_types
appears in requestTypes, using exact URI equality with no subclass
expansion (SPEC_FULL.md §6: the original dispatcher never walks the
class hierarchy).
*/
func Intersects(moduleTypes, requestTypes []string) bool {
	want := make(map[string]bool, len(requestTypes))
	for _, t := range requestTypes {
		want[t] = true
	}
	for _, t := range moduleTypes {
		if want[t] {
			return true
		}
	}
	return false
}

/*
registeredModules is the compile-time registry of writeback modules
(SPEC_FULL.md §9: "a compile-time registry... adding a module is a
static registration"), populated by each module's init().
*/
var registeredModules []Module

/*
Register adds m to the compile-time module registry. Called from each
concrete module's init().
*/
func Register(m Module) {
	registeredModules = append(registeredModules, m)
}

/*
Modules returns every module registered via [Register].
*/
func Modules() []Module {
	return registeredModules
}
