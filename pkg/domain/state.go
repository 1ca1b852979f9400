package domain

import "time"

// Status is the state of the driving loop.
type Status string

const (
	StatusRunning Status = "running" // Exploring
	StatusDone    Status = "done"    // Standing on a center candidate
)

// Counters tracks what happened during a run.
type Counters struct {
	Ticks    int `json:"ticks"`
	Turns    int `json:"turns"`
	Moves    int `json:"moves"`
	Blocked  int `json:"blocked"`
	DeadEnds int `json:"dead_ends"`
}

// Snapshot represents the observable state of a run.
// It is what stores persist and what the status server exposes.
type Snapshot struct {
	RunID    string   `json:"run_id"`
	Status   Status   `json:"status"`
	Heading  Heading  `json:"heading"`
	Position Position `json:"position"`
	Bounds   Bounds   `json:"bounds"`
	Counters Counters `json:"counters"`

	StartedAt time.Time `json:"started_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSnapshot creates the snapshot of a fresh run at the start cell facing North.
func NewSnapshot(runID string, bounds Bounds) *Snapshot {
	now := time.Now().UTC()
	return &Snapshot{
		RunID:     runID,
		Status:    StatusRunning,
		Heading:   North,
		Bounds:    bounds,
		StartedAt: now,
		UpdatedAt: now,
	}
}

// Done reports whether the run reached the goal.
func (s *Snapshot) Done() bool {
	return s.Status == StatusDone
}
