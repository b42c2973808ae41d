package snapshot

import (
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/networth/internal/domain"
	"github.com/simaogato/networth/internal/usecase/dashboard"
	"github.com/simaogato/networth/internal/usecase/records"
)

// DefaultDisplayLimit is how many snapshots the history view shows
const DefaultDisplayLimit = 5

// Engine captures snapshots of the store's aggregate totals
type Engine struct {
	Store     *records.Store
	Dashboard *dashboard.DashboardService
	now       func() time.Time
	newID     func() uuid.UUID
}

// NewEngine creates a new Engine instance
func NewEngine(store *records.Store, dash *dashboard.DashboardService) *Engine {
	return &Engine{
		Store:     store,
		Dashboard: dash,
		now:       time.Now,
		newID:     uuid.New,
	}
}

// WithClock overrides the timestamp source, mostly for tests
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// TakeSnapshot freezes the current totals and appends them to the history.
// The snapshot is never recomputed afterwards.
func (e *Engine) TakeSnapshot(note string) domain.Snapshot {
	totalAssets := e.Dashboard.TotalAssets()
	totalLiabilities := e.Dashboard.TotalLiabilities()

	snap := domain.Snapshot{
		ID:               e.newID(),
		Date:             e.now(),
		TotalAssets:      totalAssets,
		TotalLiabilities: totalLiabilities,
		NetWorth:         totalAssets.Sub(totalLiabilities),
		Notes:            note,
	}
	e.Store.AppendSnapshot(snap)
	return snap
}

// Latest returns the most recent snapshot, ok is false when there is none
func (e *Engine) Latest() (domain.Snapshot, bool) {
	snaps := e.Store.Snapshots()
	if len(snaps) == 0 {
		return domain.Snapshot{}, false
	}
	return snaps[len(snaps)-1], true
}

// Recent returns at most n snapshots, newest first.
// A non-positive n returns the whole history.
func (e *Engine) Recent(n int) []domain.Snapshot {
	snaps := e.Store.Snapshots()
	if n <= 0 || n > len(snaps) {
		n = len(snaps)
	}

	recent := make([]domain.Snapshot, 0, n)
	for i := len(snaps) - 1; i >= len(snaps)-n; i-- {
		recent = append(recent, snaps[i])
	}
	return recent
}
