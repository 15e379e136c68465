// Package schedule runs deferred callbacks on the bubbletea update loop.
//
// Every scheduled callback gets an id carried by its tick message. Cancelling
// forgets the id, so a tick that arrives late finds nothing to run.
package schedule

import (
	"slices"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FireMsg is delivered by the tick backing a scheduled callback
type FireMsg struct {
	ID uint64
}

// Scheduler owns a set of pending callbacks
type Scheduler struct {
	mu      sync.Mutex
	nextID  uint64
	pending map[uint64]func()
	queued  []tea.Cmd
}

// New creates an empty scheduler
func New() *Scheduler {
	return &Scheduler{pending: make(map[uint64]func())}
}

// Schedule registers fn to run after d. The returned cancel func is safe to
// call more than once.
func (s *Scheduler) Schedule(d time.Duration, fn func()) (cancel func()) {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.pending[id] = fn
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return FireMsg{ID: id}
	}))
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.pending, id)
		s.mu.Unlock()
	}
}

// Flush hands the ticks queued since the last call to the program
func (s *Scheduler) Flush() tea.Cmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

// Fire runs the callback for id if it is still pending
func (s *Scheduler) Fire(id uint64) bool {
	s.mu.Lock()
	fn, ok := s.pending[id]
	delete(s.pending, id)
	s.mu.Unlock()

	if !ok {
		return false
	}
	fn()
	return true
}

// Update handles a FireMsg. It reports whether msg belonged to the scheduler.
func (s *Scheduler) Update(msg tea.Msg) bool {
	fire, ok := msg.(FireMsg)
	if !ok {
		return false
	}
	s.Fire(fire.ID)
	return true
}

// Pending returns the ids still waiting to fire, oldest first
func (s *Scheduler) Pending() []uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]uint64, 0, len(s.pending))
	for id := range s.pending {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

