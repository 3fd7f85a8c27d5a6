// Package stats tracks run statistics for the palette generator.
// All counters are safe for concurrent use; watch mode updates them
// from the regeneration goroutine.
package stats

import (
	"encoding/json"
	"sync"
	"time"
)

// Stats tracks generation statistics across the lifetime of a command.
type Stats struct {
	mu sync.Mutex

	runs          int64
	created       int64
	updated       int64
	unchanged     int64
	failed        int64
	watchTriggers int64

	startTime time.Time
	lastRun   time.Time
}

// Snapshot is a point-in-time copy of all statistics.
type Snapshot struct {
	Timestamp     time.Time `json:"timestamp"`
	Uptime        string    `json:"uptime"`
	Runs          int64     `json:"runs"`
	Created       int64     `json:"created"`
	Updated       int64     `json:"updated"`
	Unchanged     int64     `json:"unchanged"`
	Failed        int64     `json:"failed"`
	WatchTriggers int64     `json:"watch_triggers"`
	LastRun       string    `json:"last_run,omitempty"`
}

// New creates a Stats instance with the start time set to now.
func New() *Stats {
	return &Stats{startTime: time.Now()}
}

// RecordRun records a completed generation run and its per-color
// outcomes.
func (s *Stats) RecordRun(created, updated, unchanged int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs++
	s.created += int64(created)
	s.updated += int64(updated)
	s.unchanged += int64(unchanged)
	s.lastRun = time.Now()
}

// RecordFailure records a failed generation run.
func (s *Stats) RecordFailure() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failed++
	s.lastRun = time.Now()
}

// RecordWatchTrigger records one watch-mode regeneration trigger.
func (s *Stats) RecordWatchTrigger() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchTriggers++
}

// Uptime returns the duration since the stats instance was created.
func (s *Stats) Uptime() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Since(s.startTime)
}

// Snapshot returns a point-in-time copy of all statistics.
func (s *Stats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Timestamp:     time.Now(),
		Uptime:        time.Since(s.startTime).Round(time.Millisecond).String(),
		Runs:          s.runs,
		Created:       s.created,
		Updated:       s.updated,
		Unchanged:     s.unchanged,
		Failed:        s.failed,
		WatchTriggers: s.watchTriggers,
	}
	if !s.lastRun.IsZero() {
		snap.LastRun = s.lastRun.Format(time.RFC3339)
	}
	return snap
}

// ToJSON returns a JSON-encoded snapshot.
func (s *Stats) ToJSON() ([]byte, error) {
	snap := s.Snapshot()
	return json.Marshal(snap)
}
