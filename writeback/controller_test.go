package writeback

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestControllerGetPid(t *testing.T) {
	ctrl := NewController(time.Hour, logrus.StandardLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go ctrl.Run(ctx)

	pid := ctrl.GetPid()
	require.Greater(t, pid, int32(0))
}

func TestControllerPerformWritebackReturnsTaskID(t *testing.T) {
	saved := registeredModules
	defer func() { registeredModules = saved }()
	registeredModules = nil

	ctrl := NewController(time.Hour, logrus.StandardLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go ctrl.Run(ctx)

	id := ctrl.PerformWriteback("ex:subject", []string{"nfo:Image"}, nil)
	require.NotEmpty(t, id)
}

func TestControllerCancelTasksBySubject(t *testing.T) {
	saved := registeredModules
	defer func() { registeredModules = saved }()
	registeredModules = nil

	ctrl := NewController(time.Hour, logrus.StandardLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go ctrl.Run(ctx)

	ctrl.PerformWriteback("ex:subject-a", []string{"nfo:Image"}, nil)
	ctrl.CancelTasks([]string{"ex:subject-a"})

	require.Eventually(t, func() bool {
		ctrl.mu.Lock()
		defer ctrl.mu.Unlock()
		for _, task := range ctrl.active {
			if task.Subject == "ex:subject-a" {
				return task.Cancelled()
			}
		}
		return true
	}, time.Second, 10*time.Millisecond)
}

func TestControllerCancelTasksByMount(t *testing.T) {
	saved := registeredModules
	defer func() { registeredModules = saved }()
	registeredModules = nil

	ctrl := NewController(time.Hour, logrus.StandardLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go ctrl.Run(ctx)

	ctrl.PerformWriteback("ex:subject-b", []string{"nfo:Image"}, []Row{{"file:///mnt/usb/a.jpg"}})
	ctrl.CancelTasksByMount("file:///mnt/usb")

	require.Eventually(t, func() bool {
		ctrl.mu.Lock()
		defer ctrl.mu.Unlock()
		for _, task := range ctrl.active {
			if task.Subject == "ex:subject-b" {
				return task.Cancelled()
			}
		}
		return true
	}, time.Second, 10*time.Millisecond)
}
