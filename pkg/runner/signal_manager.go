package runner

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// raceWindow is how long Interrupted waits for a signal to catch up with an I/O error.
const raceWindow = 100 * time.Millisecond

// SignalManager turns SIGINT and SIGTERM into context cancellation for a run.
type SignalManager struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// NewSignalManager starts listening for signals immediately.
// A nil parent means context.Background().
func NewSignalManager(parent context.Context) *SignalManager {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	return &SignalManager{ctx: ctx, cancel: cancel}
}

// Context is cancelled on the first signal or when Stop is called.
func (sm *SignalManager) Context() context.Context {
	return sm.ctx
}

// Stop releases the signal listener and cancels the context.
func (sm *SignalManager) Stop() {
	sm.cancel()
}

// Interrupted reports whether the run was stopped by a signal.
// When the simulator is killed with Ctrl+C the closed pipe may surface as a
// platform failure slightly before the signal context is cancelled, so it
// waits briefly before answering no.
func (sm *SignalManager) Interrupted() bool {
	if sm.ctx.Err() != nil {
		return true
	}
	select {
	case <-sm.ctx.Done():
		return true
	case <-time.After(raceWindow):
		return false
	}
}
