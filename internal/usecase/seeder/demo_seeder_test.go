package seeder

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/simaogato/networth/internal/adapter/repository/memory"
	"github.com/simaogato/networth/internal/domain"
	"github.com/simaogato/networth/internal/log"
	"github.com/simaogato/networth/internal/usecase/csvio"
	"github.com/simaogato/networth/internal/usecase/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTracker is a mock implementation of Tracker
type MockTracker struct {
	mock.Mock
}

func (m *MockTracker) IsEmpty() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockTracker) ImportCSV(ctx context.Context, r io.Reader) (tracker.ImportResult, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(tracker.ImportResult), args.Error(1)
}

func TestDemoSeeder_Seed_EmptyTracker(t *testing.T) {
	ctx := context.Background()
	mockTracker := new(MockTracker)
	seeder := NewDemoSeeder(mockTracker)

	mockTracker.On("IsEmpty").Return(true)
	mockTracker.On("ImportCSV", ctx, mock.MatchedBy(func(r io.Reader) bool {
		data, err := io.ReadAll(r)
		return err == nil && string(data) == csvio.Template
	})).Return(tracker.ImportResult{Assets: 3, Liabilities: 2}, nil)

	seeded, err := seeder.Seed(ctx)

	assert.NoError(t, err)
	assert.True(t, seeded)
	mockTracker.AssertExpectations(t)
}

func TestDemoSeeder_Seed_ExistingData(t *testing.T) {
	ctx := context.Background()
	mockTracker := new(MockTracker)
	seeder := NewDemoSeeder(mockTracker)

	mockTracker.On("IsEmpty").Return(false)

	seeded, err := seeder.Seed(ctx)

	assert.NoError(t, err)
	assert.False(t, seeded)
	mockTracker.AssertNotCalled(t, "ImportCSV", mock.Anything, mock.Anything)
}

func TestDemoSeeder_Seed_SaveFails(t *testing.T) {
	ctx := context.Background()
	mockTracker := new(MockTracker)
	seeder := NewDemoSeeder(mockTracker)

	mockTracker.On("IsEmpty").Return(true)
	mockTracker.On("ImportCSV", ctx, mock.Anything).
		Return(tracker.ImportResult{Assets: 3, Liabilities: 2}, domain.ErrPersistence)

	seeded, err := seeder.Seed(ctx)

	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.True(t, seeded, "records stay in memory when saving fails")
}

func TestDemoSeeder_Seed_RealTracker(t *testing.T) {
	ctx := context.Background()
	svc := tracker.NewTrackerService(memory.NewKeyValueStore(), log.Discard())
	seeder := NewDemoSeeder(svc)

	seeded, err := seeder.Seed(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)
	assert.Len(t, svc.Store.Assets(), 3)

	// A second run is a no-op
	seeded, err = seeder.Seed(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)
	assert.Len(t, svc.Store.Assets(), 3)
	assert.True(t, strings.Contains(svc.Store.Liabilities()[0].Name, "Mortgage"))
}
