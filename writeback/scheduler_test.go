package writeback

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type recordingModule struct {
	types   []string
	called  chan struct{}
	succeed bool
	err     error
}

func (m *recordingModule) RDFTypes() []string { return m.types }
func (m *recordingModule) Create(any) Module  { return m }
func (m *recordingModule) UpdateMetadata(ctx context.Context, rows []Row) (bool, error) {
	close(m.called)
	return m.succeed, m.err
}

func TestSchedulerDispatchSkipsNonMatchingModules(t *testing.T) {
	sched := NewScheduler(logrus.StandardLogger())
	task := NewTask(context.Background(), "ex:subject", []string{"nfo:Image"}, nil)

	matching := &recordingModule{types: []string{"nfo:Image"}, called: make(chan struct{}), succeed: true}
	nonMatching := &recordingModule{types: []string{"nfo:Audio"}, called: make(chan struct{}), succeed: true}

	sched.Dispatch(task, []Module{matching, nonMatching})

	select {
	case <-matching.called:
	case <-time.After(time.Second):
		t.Fatal("matching module was never invoked")
	}

	errs := task.Wait()
	require.Empty(t, errs)

	select {
	case <-nonMatching.called:
		t.Fatal("non-matching module should not have been invoked")
	default:
	}
}

func TestSchedulerDispatchWithNoMatchesStillFinishes(t *testing.T) {
	sched := NewScheduler(logrus.StandardLogger())
	task := NewTask(context.Background(), "ex:subject", []string{"nfo:Video"}, nil)

	sched.Dispatch(task, []Module{&recordingModule{types: []string{"nfo:Audio"}, called: make(chan struct{})}})

	select {
	case <-task.done:
	case <-time.After(time.Second):
		t.Fatal("task should finish immediately with zero dispatched modules")
	}
}

func TestSchedulerRecordsModuleErrors(t *testing.T) {
	sched := NewScheduler(logrus.StandardLogger())
	task := NewTask(context.Background(), "ex:subject", []string{"nfo:Image"}, nil)

	failing := &recordingModule{types: []string{"nfo:Image"}, called: make(chan struct{}), err: errTest}
	sched.Dispatch(task, []Module{failing})

	errs := task.Wait()
	require.Len(t, errs, 1)
	require.ErrorIs(t, errs[0], errTest)
}
