package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/networth/internal/domain"
)

// Header is the fixed 11-column schema shared by export, import and template
var Header = []string{
	"Type",
	"Name",
	"Category",
	"Purchase Date",
	"Purchase Price",
	"Current Value",
	"Original Amount",
	"Current Balance",
	"Interest Rate",
	"Start Date",
	"Notes",
}

// Column positions in Header
const (
	colType = iota
	colName
	colCategory
	colPurchaseDate
	colPurchasePrice
	colCurrentValue
	colOriginalAmount
	colCurrentBalance
	colInterestRate
	colStartDate
	colNotes
	columnCount
)

// Row type markers
const (
	TypeAsset     = "Asset"
	TypeLiability = "Liability"
)

// Result is the outcome of parsing an import file.
// Records carry fresh IDs and no links; timestamps are set by the store.
type Result struct {
	Assets      []domain.Asset
	Liabilities []domain.Liability
	Skipped     int // Data rows dropped for being short, unknown or invalid
}

// Write serializes assets then liabilities under the fixed header.
// Fields containing commas, quotes or line breaks are quoted with embedded
// quotes doubled.
func Write(w io.Writer, assets []domain.Asset, liabilities []domain.Liability) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, a := range assets {
		row := make([]string, columnCount)
		row[colType] = TypeAsset
		row[colName] = a.Name
		row[colCategory] = string(a.Category)
		row[colPurchaseDate] = a.PurchaseDate.String()
		row[colPurchasePrice] = a.PurchasePrice.String()
		row[colCurrentValue] = a.CurrentValue.String()
		row[colNotes] = a.Notes
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write asset %q: %w", a.Name, err)
		}
	}

	for _, l := range liabilities {
		row := make([]string, columnCount)
		row[colType] = TypeLiability
		row[colName] = l.Name
		row[colCategory] = string(l.Category)
		row[colOriginalAmount] = l.OriginalAmount.String()
		row[colCurrentBalance] = l.CurrentBalance.String()
		row[colInterestRate] = l.InterestRate.String()
		row[colStartDate] = l.StartDate.String()
		row[colNotes] = l.Notes
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write liability %q: %w", l.Name, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

// Parse reads CSV text in the fixed schema.
//
// The first record is the header and is discarded. Blank lines are ignored.
// Rows with fewer than 11 fields, an unknown Type, missing required fields,
// an unknown category or a non-numeric amount are dropped and counted in
// Result.Skipped; they never fail the whole parse.
func Parse(input string, newID func() uuid.UUID) Result {
	var result Result

	rows := Tokenize(input)
	if len(rows) == 0 {
		return result
	}

	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		if len(row) < columnCount {
			result.Skipped++
			continue
		}

		switch strings.TrimSpace(row[colType]) {
		case TypeAsset:
			asset, err := parseAsset(row, newID())
			if err != nil {
				result.Skipped++
				continue
			}
			result.Assets = append(result.Assets, asset)
		case TypeLiability:
			liability, err := parseLiability(row, newID())
			if err != nil {
				result.Skipped++
				continue
			}
			result.Liabilities = append(result.Liabilities, liability)
		default:
			result.Skipped++
		}
	}

	return result
}

func parseAsset(row []string, id uuid.UUID) (domain.Asset, error) {
	category, err := domain.ParseAssetCategory(row[colCategory])
	if err != nil {
		return domain.Asset{}, err
	}
	purchaseDate, err := domain.ParseDate(row[colPurchaseDate])
	if err != nil {
		return domain.Asset{}, err
	}
	purchasePrice, err := domain.ParseAmount("Purchase Price", row[colPurchasePrice])
	if err != nil {
		return domain.Asset{}, err
	}
	currentValue, err := domain.ParseAmount("Current Value", row[colCurrentValue])
	if err != nil {
		return domain.Asset{}, err
	}

	asset := domain.Asset{
		ID:            id,
		Name:          strings.TrimSpace(row[colName]),
		Category:      category,
		PurchaseDate:  purchaseDate,
		PurchasePrice: purchasePrice,
		CurrentValue:  currentValue,
		Notes:         strings.TrimSpace(row[colNotes]),
	}
	if err := asset.Validate(); err != nil {
		return domain.Asset{}, err
	}
	return asset, nil
}

func parseLiability(row []string, id uuid.UUID) (domain.Liability, error) {
	category, err := domain.ParseLiabilityCategory(row[colCategory])
	if err != nil {
		return domain.Liability{}, err
	}
	startDate, err := domain.ParseDate(row[colStartDate])
	if err != nil {
		return domain.Liability{}, err
	}
	originalAmount, err := domain.ParseAmount("Original Amount", row[colOriginalAmount])
	if err != nil {
		return domain.Liability{}, err
	}
	currentBalance, err := domain.ParseAmount("Current Balance", row[colCurrentBalance])
	if err != nil {
		return domain.Liability{}, err
	}

	interestRate, err := domain.ParseOptionalAmount("Interest Rate", row[colInterestRate], decimal.Zero)
	if err != nil {
		return domain.Liability{}, err
	}

	liability := domain.Liability{
		ID:             id,
		Name:           strings.TrimSpace(row[colName]),
		Category:       category,
		OriginalAmount: originalAmount,
		CurrentBalance: currentBalance,
		InterestRate:   interestRate,
		StartDate:      startDate,
		Notes:          strings.TrimSpace(row[colNotes]),
	}
	if err := liability.Validate(); err != nil {
		return domain.Liability{}, err
	}
	return liability, nil
}

func isBlank(row []string) bool {
	return len(row) == 1 && strings.TrimSpace(row[0]) == ""
}
