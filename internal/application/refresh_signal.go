package application

import "sync/atomic"

// RefreshSignal is a shared monotonically increasing counter. Views that
// depend on backend transaction state capture the version at fetch time and
// re-fetch whenever the current version is newer; intermediate bumps
// coalesce into a single re-fetch.
type RefreshSignal struct {
	version atomic.Uint64
}

func NewRefreshSignal() *RefreshSignal {
	return &RefreshSignal{}
}

func (s *RefreshSignal) Bump() {
	s.version.Add(1)
}

func (s *RefreshSignal) Version() uint64 {
	return s.version.Load()
}

// ChangedSince reports whether the signal has been bumped since the given
// observed version.
func (s *RefreshSignal) ChangedSince(observed uint64) bool {
	return s.version.Load() != observed
}
