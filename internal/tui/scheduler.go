package tui

import (
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// invokeMsg carries a scheduled callback onto the update loop.
type invokeMsg struct {
	fn func()
}

// programScheduler delivers ticks as messages so callbacks run on the
// bubbletea goroutine alongside every other UI mutation.
type programScheduler struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

func (s *programScheduler) attach(send func(tea.Msg)) {
	s.mu.Lock()
	s.send = send
	s.mu.Unlock()
}

func (s *programScheduler) post(msg tea.Msg) {
	s.mu.Lock()
	send := s.send
	s.mu.Unlock()
	if send != nil {
		send(msg)
	}
}

// Every implements dashboard.Scheduler. Cancel does not wait for the ticker
// goroutine: it may be blocked in Send on the very loop that is cancelling.
// A tick already queued when cancel runs is dropped by the stopped flag.
func (s *programScheduler) Every(interval time.Duration, fn func()) func() {
	var stopped atomic.Bool
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	guarded := func() {
		if !stopped.Load() {
			fn()
		}
	}

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.post(invokeMsg{fn: guarded})
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			stopped.Store(true)
			close(done)
		})
	}
}
