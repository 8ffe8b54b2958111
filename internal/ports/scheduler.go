package ports

import "time"

// TimerHandle cancels a pending scheduled call. Stop reports whether it
// prevented the call from running.
type TimerHandle interface {
	Stop() bool
}

// Scheduler runs fn once after the given delay and returns a handle that can
// cancel it before it fires.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) TimerHandle
}

type SystemScheduler struct{}

func (SystemScheduler) AfterFunc(d time.Duration, fn func()) TimerHandle {
	return time.AfterFunc(d, fn)
}
