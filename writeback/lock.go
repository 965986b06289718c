package writeback

import (
	"net/url"

	"github.com/gofrs/flock"
)

/*
URLLock acquires an advisory per-URL file lock for the duration of a
file-oriented module's update_metadata call (spec.md §4.F.3 step 3),
grounded on github.com/gofrs/flock (other_examples/manifests/
cs3org-reva/go.mod).
*/
type URLLock struct {
	fl *flock.Flock
}

/*
LockURL resolves targetURL to a local path and blocks until an
exclusive advisory lock on it is held. A "file://" URL is unwrapped to
its path; any other scheme is locked by its raw string form, which is
sufficient for the advisory purpose here (no two modules contend for
the same non-file URL in practice).
*/
func LockURL(targetURL string) (*URLLock, error) {
	path := targetURL
	if u, err := url.Parse(targetURL); err == nil && u.Scheme == "file" {
		path = u.Path
	}
	fl := flock.New(path + ".trackerlock")
	if err := fl.Lock(); err != nil {
		return nil, err
	}
	return &URLLock{fl: fl}, nil
}

/*
Unlock releases the advisory lock. Safe to call on a nil *URLLock.
*/
func (l *URLLock) Unlock() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}
