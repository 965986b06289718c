package writeback

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

/*
Row is a single tabular writeback result: a tuple whose first column
is the nie:url of the file the update targets, followed by
predicate-short-name/value pairs.
*/
type Row []string

/*
URL returns the row's first column, the target file URL, or "" for an
empty row.
*/
func (r Row) URL() string {
	if len(r) == 0 {
		return ""
	}
	return r[0]
}

/*
Task is a single writeback request in flight: the subject URI, its
resolved rdf_types, the tabular result rows, and a cancellation handle
shared with every module instance dispatched for it (spec.md §3.4,
§4.F.3).
*/
type Task struct {
	ID       string
	Subject  string
	RDFTypes []string
	Results  []Row

	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	cancelled  bool
	done       chan struct{}
	moduleErrs []error
}

/*
NewTask builds a Task for subject, types and results, deriving ctx from
parent so the controller can cancel every in-flight module invocation
at once.
*/
func NewTask(parent context.Context, subject string, types []string, results []Row) *Task {
	ctx, cancel := context.WithCancel(parent)
	return &Task{
		ID:       uuid.NewString(),
		Subject:  subject,
		RDFTypes: types,
		Results:  results,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
}

/*
Context returns the task's cancellation-aware context, passed to every
dispatched module's update_metadata call.
*/
func (t *Task) Context() context.Context {
	return t.ctx
}

/*
Cancel marks the task cancelled and propagates to every module via
ctx. A cancelled task still posts its completion (spec.md §4.F.4); it
does not skip that step.
*/
func (t *Task) Cancel() {
	t.mu.Lock()
	t.cancelled = true
	t.mu.Unlock()
	t.cancel()
}

/*
Cancelled reports whether Cancel was ever called on this task.
*/
func (t *Task) Cancelled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancelled
}

/*
MatchesMountRoot reports whether any row's URL has root as a string
prefix (spec.md §4.F.1, SPEC_FULL.md §6 — a string prefix match on the
nie:url value, not a filesystem stat).
*/
func (t *Task) MatchesMountRoot(root string) bool {
	for _, row := range t.Results {
		if hasPrefix(row.URL(), root) {
			return true
		}
	}
	return false
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

/*
recordModuleError records err from one dispatched module; a nil err
is ignored. It does not close done; [Task.finish] does that.
*/
func (t *Task) recordModuleError(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err != nil {
		t.moduleErrs = append(t.moduleErrs, err)
	}
}

/*
finish closes the task's completion notifier. Called exactly once by
the scheduler after every dispatched module has returned.
*/
func (t *Task) finish() {
	close(t.done)
}

/*
Wait blocks until every module dispatched for this task has returned,
then reports the accumulated module errors, if any.
*/
func (t *Task) Wait() []error {
	<-t.done
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.moduleErrs
}
