package writeback

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

/*
State is the controller's internal state machine (spec.md §4.F.2):
Idle while no tasks are in flight and a shutdown countdown is running,
Processing while at least one task is active.
*/
type State int

const (
	Idle State = iota
	Processing
)

/*
Controller is the writeback subsystem's single-process event loop: it
owns the set of active [Task]s, dispatches them to registered
[Module]s via a [Scheduler], and enforces the idle-shutdown timer
(spec.md §4.F). [Controller.Run] handles every request; all other
methods send requests to it over channels. The active-task set and the
state machine are guarded by mu: Run adds tasks and marks Processing,
and a per-task goroutine started by Run removes each task when it
completes and marks Idle once none remain.
*/
type Controller struct {
	log             *logrus.Logger
	scheduler       *Scheduler
	shutdownTimeout time.Duration

	mu     sync.Mutex
	state  State
	active []*Task

	requests chan controllerRequest
	exit     chan int
}

type controllerRequest struct {
	kind    string
	subject string
	types   []string
	results []Row
	root    string
	reply   chan any
}

/*
NewController returns a Controller with the given idle-shutdown
timeout (spec.md §4.F.2, §4.F.5). Call [Controller.Run] in its own
goroutine to start the event loop.
*/
func NewController(shutdownTimeout time.Duration, log *logrus.Logger) *Controller {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Controller{
		log:             log,
		scheduler:       NewScheduler(log),
		shutdownTimeout: shutdownTimeout,
		requests:        make(chan controllerRequest),
		exit:            make(chan int, 1),
	}
}

/*
Run is the controller's event loop (spec.md §4.F.5): it handles every
request, resetting the idle countdown on each one and exiting the
process with code 0 when the countdown reaches zero while Idle; a
countdown that reaches zero while Processing starts over. Intended to run on
a dedicated goroutine for the process's lifetime.
*/
func (c *Controller) Run(ctx context.Context) {
	timer := time.NewTimer(c.shutdownTimeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			c.mu.Lock()
			idle := c.state == Idle
			c.mu.Unlock()
			if idle {
				c.log.Info("writeback: idle timeout reached, shutting down")
				os.Exit(0)
			}
			timer.Reset(c.shutdownTimeout)
		case req := <-c.requests:
			c.handle(req)
			if !timer.Stop() {
				<-timer.C
			}
			timer.Reset(c.shutdownTimeout)
		}
	}
}

func (c *Controller) handle(req controllerRequest) {
	switch req.kind {
	case "pid":
		req.reply <- os.Getpid()
	case "writeback":
		task := NewTask(context.Background(), req.subject, req.types, req.results)
		c.mu.Lock()
		c.active = append(c.active, task)
		c.state = Processing
		c.mu.Unlock()

		c.scheduler.Dispatch(task, Modules())

		go func() {
			task.Wait()
			c.mu.Lock()
			c.active = removeTask(c.active, task)
			if len(c.active) == 0 {
				c.state = Idle
			}
			c.mu.Unlock()
		}()
		req.reply <- task.ID
	case "cancel":
		c.mu.Lock()
		for _, t := range c.active {
			if t.Subject == req.subject {
				t.Cancel()
			}
		}
		c.mu.Unlock()
		req.reply <- struct{}{}
	case "cancel-mount":
		c.mu.Lock()
		for _, t := range c.active {
			if t.MatchesMountRoot(req.root) {
				t.Cancel()
			}
		}
		c.mu.Unlock()
		req.reply <- struct{}{}
	}
}

func removeTask(tasks []*Task, target *Task) []*Task {
	out := tasks[:0]
	for _, t := range tasks {
		if t != target {
			out = append(out, t)
		}
	}
	return out
}

/*
GetPid returns the controller process's pid (spec.md §6.2).
*/
func (c *Controller) GetPid() int32 {
	reply := make(chan any, 1)
	c.requests <- controllerRequest{kind: "pid", reply: reply}
	return int32((<-reply).(int))
}

/*
PerformWriteback submits a new task (spec.md §6.2, §4.F.3) and returns
its internal correlation id once the task has been accepted and
dispatch has started.
*/
func (c *Controller) PerformWriteback(subject string, rdfTypes []string, results []Row) string {
	reply := make(chan any, 1)
	c.requests <- controllerRequest{kind: "writeback", subject: subject, types: rdfTypes, results: results, reply: reply}
	return (<-reply).(string)
}

/*
CancelTasks cancels every active task whose subject appears in
subjects (spec.md §6.2).
*/
func (c *Controller) CancelTasks(subjects []string) {
	reply := make(chan any, 1)
	for _, s := range subjects {
		c.requests <- controllerRequest{kind: "cancel", subject: s, reply: reply}
		<-reply
	}
}

/*
CancelTasksByMount cancels every active task with a row URL under
root, in reaction to a mount-point-removed notification (spec.md
§4.F.1).
*/
func (c *Controller) CancelTasksByMount(root string) {
	reply := make(chan any, 1)
	c.requests <- controllerRequest{kind: "cancel-mount", root: root, reply: reply}
	<-reply
}
