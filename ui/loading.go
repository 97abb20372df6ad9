package ui

import "sync"

// LoadingTracker drives the loading spinner. Every action acquires it on
// entry and releases through the returned func; the sync.Once guarantees the
// release fires exactly once no matter how many exit paths run it.
type LoadingTracker struct {
	mu     sync.Mutex
	active int
}

func NewLoadingTracker() *LoadingTracker {
	return &LoadingTracker{}
}

// Begin marks an action in flight and returns its release. Callers defer it.
func (l *LoadingTracker) Begin() func() {
	l.mu.Lock()
	l.active++
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			l.active--
			l.mu.Unlock()
		})
	}
}

// Visible reports whether the spinner should be showing.
func (l *LoadingTracker) Visible() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active > 0
}
