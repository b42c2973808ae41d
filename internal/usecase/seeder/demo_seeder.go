package seeder

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/simaogato/networth/internal/usecase/csvio"
	"github.com/simaogato/networth/internal/usecase/tracker"
)

// Tracker is the part of the tracker the seeder needs
type Tracker interface {
	IsEmpty() bool
	ImportCSV(ctx context.Context, r io.Reader) (tracker.ImportResult, error)
}

// DemoSeeder fills an empty tracker with the template's example records
type DemoSeeder struct {
	tracker Tracker
}

// NewDemoSeeder creates a new DemoSeeder instance
func NewDemoSeeder(t Tracker) *DemoSeeder {
	return &DemoSeeder{
		tracker: t,
	}
}

// Seed imports the template rows when the tracker holds no assets and no
// liabilities. It reports whether anything was imported.
func (s *DemoSeeder) Seed(ctx context.Context) (bool, error) {
	// Existing data is never mixed with demo rows
	if !s.tracker.IsEmpty() {
		return false, nil
	}

	result, err := s.tracker.ImportCSV(ctx, strings.NewReader(csvio.Template))
	if err != nil {
		return result.Assets+result.Liabilities > 0, fmt.Errorf("failed to seed demo records: %w", err)
	}
	return true, nil
}
