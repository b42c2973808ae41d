package snapshot

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/networth/internal/domain"
	"github.com/simaogato/networth/internal/usecase/dashboard"
	"github.com/simaogato/networth/internal/usecase/records"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine() (*Engine, *records.Store) {
	store := records.NewStore()
	return NewEngine(store, dashboard.NewDashboardService(store)), store
}

func TestTakeSnapshot_FrozenValues(t *testing.T) {
	engine, store := newEngine()
	captured := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	engine.WithClock(func() time.Time { return captured })

	mortgage, err := store.UpsertLiability(domain.Liability{
		ID: uuid.New(), Name: "Mortgage", Category: domain.LiabilityCategoryMortgage,
		OriginalAmount: decimal.NewFromInt(250000), CurrentBalance: decimal.NewFromInt(240000),
		StartDate: domain.MustParseDate("2020-01-01"),
	})
	require.NoError(t, err)
	home, err := store.UpsertAsset(domain.Asset{
		ID: uuid.New(), Name: "Home", Category: domain.AssetCategoryRealEstate,
		PurchasePrice: decimal.NewFromInt(300000), CurrentValue: decimal.NewFromInt(350000),
		AssociatedDebtID: &mortgage.ID,
	})
	require.NoError(t, err)

	snap := engine.TakeSnapshot("after closing")

	assert.NotEqual(t, uuid.Nil, snap.ID)
	assert.Equal(t, captured, snap.Date)
	assert.Equal(t, "after closing", snap.Notes)
	assert.True(t, decimal.NewFromInt(350000).Equal(snap.TotalAssets))
	assert.True(t, decimal.NewFromInt(240000).Equal(snap.TotalLiabilities))
	assert.True(t, decimal.NewFromInt(110000).Equal(snap.NetWorth))

	// Later changes do not touch the stored snapshot
	home.CurrentValue = decimal.NewFromInt(400000)
	_, err = store.UpsertAsset(home)
	require.NoError(t, err)

	stored, ok := engine.Latest()
	require.True(t, ok)
	assert.Equal(t, snap.ID, stored.ID)
	assert.True(t, decimal.NewFromInt(110000).Equal(stored.NetWorth))
}

func TestRecent_NewestFirst(t *testing.T) {
	engine, _ := newEngine()

	_, ok := engine.Latest()
	assert.False(t, ok)
	assert.Empty(t, engine.Recent(DefaultDisplayLimit))

	var ids []uuid.UUID
	for i := 0; i < 7; i++ {
		ids = append(ids, engine.TakeSnapshot("").ID)
	}

	recent := engine.Recent(DefaultDisplayLimit)
	require.Len(t, recent, 5)
	assert.Equal(t, ids[6], recent[0].ID)
	assert.Equal(t, ids[2], recent[4].ID)

	// The full history is retained
	assert.Len(t, engine.Recent(0), 7)
	assert.Len(t, engine.Recent(100), 7)
}
