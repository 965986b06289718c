package writeback

import "errors"

var (
	ErrNilController   = errors.New("writeback: controller is nil")
	ErrAlreadyRunning   = errors.New("writeback: controller already running")
	ErrTransportInit    = errors.New("writeback: failed to acquire external transport name")
	ErrUnknownSubject   = errors.New("writeback: no task registered for subject")
)
