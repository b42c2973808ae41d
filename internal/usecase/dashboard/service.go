package dashboard

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"
	"github.com/simaogato/networth/internal/domain"
	"github.com/simaogato/networth/internal/usecase/records"
)

var hundred = decimal.NewFromInt(100)

// NetWorthChange is the difference between the live net worth and a snapshot
type NetWorthChange struct {
	Amount  decimal.Decimal
	Percent decimal.Decimal // 0 when the reference net worth is 0
}

// CategoryTotal aggregates the records of one category
type CategoryTotal struct {
	Category string
	Count    int
	Total    decimal.Decimal
	Share    decimal.Decimal // Percentage of the grand total, 0 when the grand total is 0
}

// Summary bundles the headline figures shown on the dashboard
type Summary struct {
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	NetWorth         decimal.Decimal
	RealEstateEquity decimal.Decimal
	VehicleEquity    decimal.Decimal
	Change           NetWorthChange
	HasPrevious      bool // A snapshot exists to compare against
}

// DashboardService computes derived values from the record store.
// Every method is side-effect free.
type DashboardService struct {
	Records records.Reader
}

// NewDashboardService creates a new DashboardService instance
func NewDashboardService(reader records.Reader) *DashboardService {
	return &DashboardService{Records: reader}
}

// TotalAssets is the sum of CurrentValue over all assets
func (s *DashboardService) TotalAssets() decimal.Decimal {
	total := decimal.Zero
	for _, a := range s.Records.Assets() {
		total = total.Add(a.CurrentValue)
	}
	return total
}

// TotalLiabilities is the sum of CurrentBalance over all liabilities
func (s *DashboardService) TotalLiabilities() decimal.Decimal {
	total := decimal.Zero
	for _, l := range s.Records.Liabilities() {
		total = total.Add(l.CurrentBalance)
	}
	return total
}

// NetWorth is TotalAssets - TotalLiabilities
func (s *DashboardService) NetWorth() decimal.Decimal {
	return s.TotalAssets().Sub(s.TotalLiabilities())
}

// LinkedLiability resolves the asset's debt link.
// ok is false when there is no link or the target no longer exists.
func (s *DashboardService) LinkedLiability(asset domain.Asset) (domain.Liability, bool) {
	if !asset.HasDebtLink() {
		return domain.Liability{}, false
	}
	return s.Records.FindLiability(*asset.AssociatedDebtID)
}

// LinkedAsset resolves the liability's asset link
func (s *DashboardService) LinkedAsset(liability domain.Liability) (domain.Asset, bool) {
	if !liability.HasAssetLink() {
		return domain.Asset{}, false
	}
	return s.Records.FindAsset(*liability.AssociatedAssetID)
}

// AssetEquity is the asset's value minus the balance of its linked liability.
// A missing or dangling link counts as no debt.
func (s *DashboardService) AssetEquity(asset domain.Asset) decimal.Decimal {
	debt, ok := s.LinkedLiability(asset)
	if !ok {
		return asset.CurrentValue
	}
	return asset.CurrentValue.Sub(debt.CurrentBalance)
}

// CategoryEquity sums AssetEquity over the assets of one category
func (s *DashboardService) CategoryEquity(category domain.AssetCategory) decimal.Decimal {
	total := decimal.Zero
	for _, a := range s.Records.Assets() {
		if a.Category == category {
			total = total.Add(s.AssetEquity(a))
		}
	}
	return total
}

// AssetGain is CurrentValue - PurchasePrice
func (s *DashboardService) AssetGain(asset domain.Asset) decimal.Decimal {
	return asset.CurrentValue.Sub(asset.PurchasePrice)
}

// PayoffPercentage is the share of the original principal already repaid.
// An OriginalAmount of 0 yields 0.
func (s *DashboardService) PayoffPercentage(liability domain.Liability) decimal.Decimal {
	return PayoffPercentage(liability)
}

// PayoffPercentage is the free-function form of DashboardService.PayoffPercentage
func PayoffPercentage(liability domain.Liability) decimal.Decimal {
	if liability.OriginalAmount.IsZero() {
		return decimal.Zero
	}
	paid := liability.OriginalAmount.Sub(liability.CurrentBalance)
	return paid.Div(liability.OriginalAmount).Mul(hundred)
}

// ChangeSince compares current with a previous snapshot.
// A nil previous yields a zero change.
func ChangeSince(current decimal.Decimal, previous *domain.Snapshot) NetWorthChange {
	if previous == nil {
		return NetWorthChange{Amount: decimal.Zero, Percent: decimal.Zero}
	}
	amount := current.Sub(previous.NetWorth)
	if previous.NetWorth.IsZero() {
		return NetWorthChange{Amount: amount, Percent: decimal.Zero}
	}
	return NetWorthChange{
		Amount:  amount,
		Percent: amount.Div(previous.NetWorth.Abs()).Mul(hundred),
	}
}

// NetWorthChange compares the live net worth with the most recent snapshot
func (s *DashboardService) NetWorthChange() (NetWorthChange, bool) {
	snaps := s.Records.Snapshots()
	if len(snaps) == 0 {
		return ChangeSince(s.NetWorth(), nil), false
	}
	return ChangeSince(s.NetWorth(), &snaps[len(snaps)-1]), true
}

// GroupByCategory aggregates records by category, sorted by descending total.
// Ties are broken by category name so the order is stable.
func GroupByCategory[T any](items []T, category func(T) string, value func(T) decimal.Decimal) []CategoryTotal {
	index := make(map[string]int)
	var groups []CategoryTotal
	grand := decimal.Zero

	for _, item := range items {
		c := category(item)
		v := value(item)
		grand = grand.Add(v)

		i, ok := index[c]
		if !ok {
			i = len(groups)
			index[c] = i
			groups = append(groups, CategoryTotal{Category: c, Total: decimal.Zero})
		}
		groups[i].Count++
		groups[i].Total = groups[i].Total.Add(v)
	}

	for i := range groups {
		groups[i].Share = decimal.Zero
		if !grand.IsZero() {
			groups[i].Share = groups[i].Total.Div(grand).Mul(hundred)
		}
	}

	slices.SortStableFunc(groups, func(a, b CategoryTotal) int {
		if c := b.Total.Cmp(a.Total); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return groups
}

// AssetsByCategory groups assets by category using their current value
func (s *DashboardService) AssetsByCategory() []CategoryTotal {
	return GroupByCategory(s.Records.Assets(),
		func(a domain.Asset) string { return string(a.Category) },
		func(a domain.Asset) decimal.Decimal { return a.CurrentValue })
}

// LiabilitiesByCategory groups liabilities by category using their balance
func (s *DashboardService) LiabilitiesByCategory() []CategoryTotal {
	return GroupByCategory(s.Records.Liabilities(),
		func(l domain.Liability) string { return string(l.Category) },
		func(l domain.Liability) decimal.Decimal { return l.CurrentBalance })
}

// GetSummary calculates the dashboard headline figures
func (s *DashboardService) GetSummary() Summary {
	totalAssets := s.TotalAssets()
	totalLiabilities := s.TotalLiabilities()
	change, hasPrevious := s.NetWorthChange()

	return Summary{
		TotalAssets:      totalAssets,
		TotalLiabilities: totalLiabilities,
		NetWorth:         totalAssets.Sub(totalLiabilities),
		RealEstateEquity: s.CategoryEquity(domain.AssetCategoryRealEstate),
		VehicleEquity:    s.CategoryEquity(domain.AssetCategoryVehicle),
		Change:           change,
		HasPrevious:      hasPrevious,
	}
}
