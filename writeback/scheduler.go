package writeback

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

/*
Scheduler runs one goroutine per dispatched module per task, grounded
on golang.org/x/sync/errgroup (a dependency the retrieval pack's
evalgo-org-eve wires for its own background-worker fan-out). A module
failure is logged and does not cancel its siblings — spec.md §7:
"module failed; logged, task marked complete" — so the scheduler
deliberately does not propagate errors through the group's own
cancellation.
*/
type Scheduler struct {
	log *logrus.Logger
}

/*
NewScheduler returns a Scheduler that logs module failures via log (a
nil log falls back to logrus's standard logger).
*/
func NewScheduler(log *logrus.Logger) *Scheduler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Scheduler{log: log}
}

/*
Dispatch calls Create(nil) on every module whose declared rdf_types
intersect task.RDFTypes, then calls UpdateMetadata concurrently for
each; for a [FileModule] it takes the per-URL lock, updates, and
releases the lock. No pause notification is sent to the miner. Dispatch
returns without waiting; a background goroutine waits for every
dispatched module to return and then marks the task complete.
*/
func (s *Scheduler) Dispatch(task *Task, modules []Module) {
	g := new(errgroup.Group)

	for _, m := range modules {
		if !Intersects(m.RDFTypes(), task.RDFTypes) {
			continue
		}
		inst := m.Create(nil)
		g.Go(func() error {
			ok, err := s.runModule(task, inst)
			task.recordModuleError(err)
			if err != nil {
				s.log.WithError(err).WithField("subject", task.Subject).Warn("writeback module failed")
			} else if !ok {
				s.log.WithField("subject", task.Subject).Warn("writeback module reported failure")
			}
			return nil
		})
	}

	go func() {
		_ = g.Wait()
		task.finish()
	}()
}

func (s *Scheduler) runModule(task *Task, m Module) (bool, error) {
	if task.Cancelled() || task.Context().Err() != nil {
		return false, task.Context().Err()
	}

	fileMod, isFile := m.(FileModule)
	if !isFile || len(task.Results) == 0 {
		return m.UpdateMetadata(task.Context(), task.Results)
	}

	target := task.Results[0].URL()
	if !contentTypeMatches(target, fileMod.ContentTypes()) {
		return true, nil
	}

	lock, err := LockURL(target)
	if err != nil {
		return false, err
	}
	defer lock.Unlock()

	return m.UpdateMetadata(task.Context(), task.Results)
}

/*
contentTypeMatches reports whether target's extension-derived mime type
is one of accepted, short-circuiting dispatch before a [FileModule] is
ever asked to update metadata it would reject anyway (spec.md §6.3).
Mime detection follows the same extension-then-mime.TypeByExtension
shape as antflydb-antfly-go/docsaf's DetectContentType, the retrieval
pack's own example of resolving a mime type from a bare file path. An
empty accepted list matches everything; an undetectable extension is
treated as a match too, leaving the decision to the module itself.
*/
func contentTypeMatches(target string, accepted []string) bool {
	if len(accepted) == 0 {
		return true
	}
	detected := mime.TypeByExtension(filepath.Ext(target))
	if detected == "" {
		return true
	}
	if i := strings.IndexByte(detected, ';'); i >= 0 {
		detected = detected[:i]
	}
	detected = strings.TrimSpace(detected)
	for _, ct := range accepted {
		if strings.EqualFold(detected, ct) {
			return true
		}
	}
	return false
}
