package dashboard

import (
	"sync"
	"time"
)

// Scheduler runs fn every interval until the returned cancel func is
// called. Implementations decide which goroutine fn runs on; the TUI posts
// ticks onto its update loop.
type Scheduler interface {
	Every(interval time.Duration, fn func()) (cancel func())
}

// TickerScheduler runs fn on its own goroutine. Cancel blocks until that
// goroutine has exited, so no tick can land after cancel returns.
type TickerScheduler struct{}

// Every implements Scheduler.
func (TickerScheduler) Every(interval time.Duration, fn func()) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	exited := make(chan struct{})

	go func() {
		defer close(exited)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fn()
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			<-exited
		})
	}
}
