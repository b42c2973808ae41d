package dashboard

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/networth/internal/domain"
	"github.com/simaogato/networth/internal/usecase/records"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockReader is a mock implementation of records.Reader for testing
type MockReader struct {
	mock.Mock
}

func (m *MockReader) Assets() []domain.Asset {
	args := m.Called()
	return args.Get(0).([]domain.Asset)
}

func (m *MockReader) Liabilities() []domain.Liability {
	args := m.Called()
	return args.Get(0).([]domain.Liability)
}

func (m *MockReader) Snapshots() []domain.Snapshot {
	args := m.Called()
	return args.Get(0).([]domain.Snapshot)
}

func (m *MockReader) FindAsset(id uuid.UUID) (domain.Asset, bool) {
	args := m.Called(id)
	return args.Get(0).(domain.Asset), args.Bool(1)
}

func (m *MockReader) FindLiability(id uuid.UUID) (domain.Liability, bool) {
	args := m.Called(id)
	return args.Get(0).(domain.Liability), args.Bool(1)
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func assertDecimal(t *testing.T, want int64, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %d, got %s", want, got)
}

func TestTotals_Empty(t *testing.T) {
	service := NewDashboardService(records.NewStore())

	assertDecimal(t, 0, service.TotalAssets())
	assertDecimal(t, 0, service.TotalLiabilities())
	assertDecimal(t, 0, service.NetWorth())
}

func TestTotals_WithMockReader(t *testing.T) {
	reader := new(MockReader)
	reader.On("Assets").Return([]domain.Asset{
		{CurrentValue: dec(1000)},
		{CurrentValue: dec(250)},
		{CurrentValue: dec(-50)},
	})
	reader.On("Liabilities").Return([]domain.Liability{
		{CurrentBalance: dec(300)},
		{CurrentBalance: dec(100)},
	})

	service := NewDashboardService(reader)

	assertDecimal(t, 1200, service.TotalAssets())
	assertDecimal(t, 400, service.TotalLiabilities())
	assertDecimal(t, 800, service.NetWorth())
	assert.True(t, service.NetWorth().Equal(service.TotalAssets().Sub(service.TotalLiabilities())))

	reader.AssertExpectations(t)
}

func TestHomeMortgageScenario(t *testing.T) {
	store := records.NewStore()
	service := NewDashboardService(store)

	home, err := store.UpsertAsset(domain.Asset{
		ID:            uuid.New(),
		Name:          "Home",
		Category:      domain.AssetCategoryRealEstate,
		PurchaseDate:  domain.MustParseDate("2020-01-01"),
		PurchasePrice: dec(300000),
		CurrentValue:  dec(350000),
	})
	require.NoError(t, err)

	assertDecimal(t, 350000, service.TotalAssets())
	assertDecimal(t, 350000, service.NetWorth())
	assertDecimal(t, 350000, service.AssetEquity(home))

	mortgage, err := store.UpsertLiability(domain.Liability{
		ID:             uuid.New(),
		Name:           "Home Loan",
		Category:       domain.LiabilityCategoryMortgage,
		OriginalAmount: dec(250000),
		CurrentBalance: dec(240000),
		StartDate:      domain.MustParseDate("2020-01-01"),
	})
	require.NoError(t, err)

	home.AssociatedDebtID = &mortgage.ID
	home, err = store.UpsertAsset(home)
	require.NoError(t, err)

	assertDecimal(t, 110000, service.AssetEquity(home))
	assertDecimal(t, 110000, service.CategoryEquity(domain.AssetCategoryRealEstate))
	assertDecimal(t, 110000, service.NetWorth())
	assertDecimal(t, 50000, service.AssetGain(home))
	assertDecimal(t, 4, service.PayoffPercentage(mortgage))

	// Deleting the liability degrades the asset to unlinked behaviour
	require.NoError(t, store.DeleteLiability(mortgage.ID))
	home, _ = store.FindAsset(home.ID)
	require.NotNil(t, home.AssociatedDebtID)
	assertDecimal(t, 350000, service.AssetEquity(home))
	_, ok := service.LinkedLiability(home)
	assert.False(t, ok)
}

func TestPayoffPercentage(t *testing.T) {
	tests := []struct {
		name     string
		original int64
		balance  int64
		want     int64
	}{
		{name: "partially repaid", original: 1000, balance: 400, want: 60},
		{name: "untouched", original: 1000, balance: 1000, want: 0},
		{name: "fully repaid", original: 1000, balance: 0, want: 100},
		{name: "zero original amount", original: 0, balance: 500, want: 0},
		{name: "balance above principal", original: 1000, balance: 1100, want: -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PayoffPercentage(domain.Liability{OriginalAmount: dec(tt.original), CurrentBalance: dec(tt.balance)})
			assertDecimal(t, tt.want, got)
		})
	}
}

func TestChangeSince(t *testing.T) {
	change := ChangeSince(dec(110000), &domain.Snapshot{NetWorth: dec(100000)})
	assertDecimal(t, 10000, change.Amount)
	assertDecimal(t, 10, change.Percent)

	change = ChangeSince(dec(500), &domain.Snapshot{NetWorth: decimal.Zero})
	assertDecimal(t, 500, change.Amount)
	assertDecimal(t, 0, change.Percent)

	change = ChangeSince(dec(-50), &domain.Snapshot{NetWorth: dec(-100)})
	assertDecimal(t, 50, change.Amount)
	assertDecimal(t, 50, change.Percent)

	change = ChangeSince(dec(500), nil)
	assertDecimal(t, 0, change.Amount)
	assertDecimal(t, 0, change.Percent)
}

func TestNetWorthChange_UsesLatestSnapshot(t *testing.T) {
	store := records.NewStore()
	service := NewDashboardService(store)

	_, ok := service.NetWorthChange()
	assert.False(t, ok)

	store.AppendSnapshot(domain.Snapshot{ID: uuid.New(), NetWorth: dec(10)})
	store.AppendSnapshot(domain.Snapshot{ID: uuid.New(), NetWorth: dec(50)})
	_, err := store.UpsertAsset(domain.Asset{ID: uuid.New(), Name: "Cash", Category: domain.AssetCategoryCash, CurrentValue: dec(100)})
	require.NoError(t, err)

	change, ok := service.NetWorthChange()
	assert.True(t, ok)
	assertDecimal(t, 50, change.Amount)
	assertDecimal(t, 100, change.Percent)
}

func TestGroupByCategory(t *testing.T) {
	assets := []domain.Asset{
		{Category: domain.AssetCategoryCash, CurrentValue: dec(100)},
		{Category: domain.AssetCategoryRealEstate, CurrentValue: dec(600)},
		{Category: domain.AssetCategoryCash, CurrentValue: dec(100)},
		{Category: domain.AssetCategoryVehicle, CurrentValue: dec(200)},
	}

	groups := GroupByCategory(assets,
		func(a domain.Asset) string { return string(a.Category) },
		func(a domain.Asset) decimal.Decimal { return a.CurrentValue })

	require.Len(t, groups, 3)
	assert.Equal(t, "Real Estate", groups[0].Category)
	assertDecimal(t, 600, groups[0].Total)
	assertDecimal(t, 60, groups[0].Share)

	// Cash and Vehicle tie at 200; the name breaks the tie
	assert.Equal(t, "Cash", groups[1].Category)
	assert.Equal(t, 2, groups[1].Count)
	assert.Equal(t, "Vehicle", groups[2].Category)
	assert.Equal(t, 1, groups[2].Count)

	assert.Empty(t, GroupByCategory([]domain.Asset{},
		func(a domain.Asset) string { return string(a.Category) },
		func(a domain.Asset) decimal.Decimal { return a.CurrentValue }))
}

func TestGetSummary(t *testing.T) {
	store := records.NewStore()
	service := NewDashboardService(store)

	loan, err := store.UpsertLiability(domain.Liability{
		ID: uuid.New(), Name: "Car Loan", Category: domain.LiabilityCategoryAutoLoan,
		OriginalAmount: dec(20000), CurrentBalance: dec(15000), StartDate: domain.MustParseDate("2022-03-01"),
	})
	require.NoError(t, err)
	_, err = store.UpsertAsset(domain.Asset{
		ID: uuid.New(), Name: "Car", Category: domain.AssetCategoryVehicle,
		CurrentValue: dec(18000), AssociatedDebtID: &loan.ID,
	})
	require.NoError(t, err)

	summary := service.GetSummary()
	assertDecimal(t, 18000, summary.TotalAssets)
	assertDecimal(t, 15000, summary.TotalLiabilities)
	assertDecimal(t, 3000, summary.NetWorth)
	assertDecimal(t, 3000, summary.VehicleEquity)
	assertDecimal(t, 0, summary.RealEstateEquity)
	assert.False(t, summary.HasPrevious)
}
