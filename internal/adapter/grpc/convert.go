package grpc

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/simaogato/networth/internal/domain"
	"github.com/simaogato/networth/internal/usecase/dashboard"
	"github.com/simaogato/networth/internal/usecase/tracker"
	"google.golang.org/protobuf/types/known/structpb"
)

// jsonMap renders v through its JSON encoding so that Struct fields carry
// exactly the names and string-encoded decimals of the persisted records
func jsonMap(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func assetValue(asset domain.Asset, dash *dashboard.DashboardService) (map[string]any, error) {
	m, err := jsonMap(asset)
	if err != nil {
		return nil, fmt.Errorf("failed to encode asset %s: %w", asset.ID, err)
	}
	m["equity"] = dash.AssetEquity(asset).String()
	m["gain"] = dash.AssetGain(asset).String()
	return m, nil
}

func liabilityValue(liability domain.Liability, dash *dashboard.DashboardService) (map[string]any, error) {
	m, err := jsonMap(liability)
	if err != nil {
		return nil, fmt.Errorf("failed to encode liability %s: %w", liability.ID, err)
	}
	m["payoffPercent"] = dash.PayoffPercentage(liability).StringFixed(1)
	return m, nil
}

func snapshotValue(snap domain.Snapshot) (map[string]any, error) {
	m, err := jsonMap(snap)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot %s: %w", snap.ID, err)
	}
	return m, nil
}

func categoryTotals(totals []dashboard.CategoryTotal) []any {
	out := make([]any, 0, len(totals))
	for _, t := range totals {
		out = append(out, map[string]any{
			"category": t.Category,
			"count":    t.Count,
			"total":    t.Total.String(),
			"share":    t.Share.StringFixed(1),
		})
	}
	return out
}

func summaryStruct(summary dashboard.Summary, dash *dashboard.DashboardService) (*structpb.Struct, error) {
	m := map[string]any{
		"totalAssets":           summary.TotalAssets.String(),
		"totalLiabilities":      summary.TotalLiabilities.String(),
		"netWorth":              summary.NetWorth.String(),
		"realEstateEquity":      summary.RealEstateEquity.String(),
		"vehicleEquity":         summary.VehicleEquity.String(),
		"hasPrevious":           summary.HasPrevious,
		"assetsByCategory":      categoryTotals(dash.AssetsByCategory()),
		"liabilitiesByCategory": categoryTotals(dash.LiabilitiesByCategory()),
	}
	if summary.HasPrevious {
		m["change"] = map[string]any{
			"amount":  summary.Change.Amount.String(),
			"percent": summary.Change.Percent.StringFixed(1),
		}
	}
	return structpb.NewStruct(m)
}

func importResultStruct(result tracker.ImportResult) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"assets":      result.Assets,
		"liabilities": result.Liabilities,
		"skipped":     result.Skipped,
	})
}

// stringField reads a request field as text. Numbers and booleans are
// accepted so that clients may send amounts unquoted.
func stringField(s *structpb.Struct, key string) string {
	v, ok := s.GetFields()[key]
	if !ok {
		return ""
	}
	switch kind := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return kind.StringValue
	case *structpb.Value_NumberValue:
		return strconv.FormatFloat(kind.NumberValue, 'f', -1, 64)
	case *structpb.Value_BoolValue:
		return strconv.FormatBool(kind.BoolValue)
	default:
		return ""
	}
}

func boolField(s *structpb.Struct, key string) bool {
	return s.GetFields()[key].GetBoolValue()
}

func intField(s *structpb.Struct, key string) int {
	return int(s.GetFields()[key].GetNumberValue())
}

func assetForm(s *structpb.Struct) tracker.AssetForm {
	return tracker.AssetForm{
		ID:               stringField(s, "id"),
		Name:             stringField(s, "name"),
		Category:         stringField(s, "category"),
		PurchaseDate:     stringField(s, "purchaseDate"),
		PurchasePrice:    stringField(s, "purchasePrice"),
		CurrentValue:     stringField(s, "currentValue"),
		AssociatedDebtID: stringField(s, "associatedDebtId"),
		Notes:            stringField(s, "notes"),
	}
}

func liabilityForm(s *structpb.Struct) tracker.LiabilityForm {
	return tracker.LiabilityForm{
		ID:                stringField(s, "id"),
		Name:              stringField(s, "name"),
		Category:          stringField(s, "category"),
		OriginalAmount:    stringField(s, "originalAmount"),
		CurrentBalance:    stringField(s, "currentBalance"),
		InterestRate:      stringField(s, "interestRate"),
		StartDate:         stringField(s, "startDate"),
		AssociatedAssetID: stringField(s, "associatedAssetId"),
		Notes:             stringField(s, "notes"),
	}
}
