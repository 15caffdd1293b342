package exhibit

import "time"

// Clock schedules the spotlight's timed transitions. The real clock uses
// time.AfterFunc; tests inject a manual one and fire transitions by hand.
type Clock interface {
	// AfterFunc runs fn after d and returns a cancel function
	AfterFunc(d time.Duration, fn func()) (cancel func())
}

type realClock struct{}

// NewClock returns the wall-clock implementation
func NewClock() Clock {
	return realClock{}
}

func (realClock) AfterFunc(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
