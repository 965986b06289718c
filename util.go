package ontology

import (
	"strconv"
	"strings"
)

/*
util.go collects the small string/rune helpers shared by the schema
loaders and the registry. Following the teacher's habit, common
stdlib functions are aliased to short package-local names so call
sites read tersely.
*/

var (
	eq     func(string, string) bool          = strings.EqualFold
	lc     func(string) string                = strings.ToLower
	fields func(string) []string              = strings.Fields
	join   func([]string, string) string      = strings.Join
	trimS  func(string) string                = strings.TrimSpace
	atoi   func(string) (int, error)          = strconv.Atoi
)

/*
localName returns the substring of uri following the last '#' or '/',
matching spec.md §4.A's rule for deriving a Class or Property's short
display name from its URI.
*/
func localName(uri string) string {
	if idx := strings.LastIndexAny(uri, "#/"); idx >= 0 && idx+1 < len(uri) {
		return uri[idx+1:]
	}
	return uri
}

func strInSlice(str string, sl []string) bool {
	for _, s := range sl {
		if eq(str, s) {
			return true
		}
	}
	return false
}
