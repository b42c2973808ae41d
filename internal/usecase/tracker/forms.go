package tracker

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/networth/internal/domain"
)

// AssetForm is the raw user input for creating or editing an asset.
// An empty ID creates a new asset.
type AssetForm struct {
	ID               string
	Name             string
	Category         string
	PurchaseDate     string
	PurchasePrice    string
	CurrentValue     string
	AssociatedDebtID string
	Notes            string
}

// LiabilityForm is the raw user input for creating or editing a liability.
// An empty ID creates a new liability.
type LiabilityForm struct {
	ID                string
	Name              string
	Category          string
	OriginalAmount    string
	CurrentBalance    string
	InterestRate      string // Optional, defaults to 0
	StartDate         string
	AssociatedAssetID string
	Notes             string
}

// toAsset converts the form into a typed asset
func (f AssetForm) toAsset(newID func() uuid.UUID) (domain.Asset, error) {
	id, err := parseRecordID(f.ID, newID)
	if err != nil {
		return domain.Asset{}, err
	}
	if strings.TrimSpace(f.Name) == "" {
		return domain.Asset{}, domain.NewValidationError("name", "asset name cannot be empty")
	}
	category, err := domain.ParseAssetCategory(f.Category)
	if err != nil {
		return domain.Asset{}, err
	}
	purchaseDate, err := parseFormDate("purchaseDate", f.PurchaseDate)
	if err != nil {
		return domain.Asset{}, err
	}
	purchasePrice, err := domain.ParseAmount("purchasePrice", f.PurchasePrice)
	if err != nil {
		return domain.Asset{}, err
	}
	currentValue, err := domain.ParseAmount("currentValue", f.CurrentValue)
	if err != nil {
		return domain.Asset{}, err
	}
	debtID, err := parseLink("associatedDebtId", f.AssociatedDebtID)
	if err != nil {
		return domain.Asset{}, err
	}

	return domain.Asset{
		ID:               id,
		Name:             strings.TrimSpace(f.Name),
		Category:         category,
		PurchaseDate:     purchaseDate,
		PurchasePrice:    purchasePrice,
		CurrentValue:     currentValue,
		AssociatedDebtID: debtID,
		Notes:            strings.TrimSpace(f.Notes),
	}, nil
}

// toLiability converts the form into a typed liability
func (f LiabilityForm) toLiability(newID func() uuid.UUID) (domain.Liability, error) {
	id, err := parseRecordID(f.ID, newID)
	if err != nil {
		return domain.Liability{}, err
	}
	if strings.TrimSpace(f.Name) == "" {
		return domain.Liability{}, domain.NewValidationError("name", "liability name cannot be empty")
	}
	category, err := domain.ParseLiabilityCategory(f.Category)
	if err != nil {
		return domain.Liability{}, err
	}
	if strings.TrimSpace(f.StartDate) == "" {
		return domain.Liability{}, domain.NewValidationError("startDate", "start date cannot be empty")
	}
	startDate, err := parseFormDate("startDate", f.StartDate)
	if err != nil {
		return domain.Liability{}, err
	}
	originalAmount, err := domain.ParseAmount("originalAmount", f.OriginalAmount)
	if err != nil {
		return domain.Liability{}, err
	}
	currentBalance, err := domain.ParseAmount("currentBalance", f.CurrentBalance)
	if err != nil {
		return domain.Liability{}, err
	}
	interestRate, err := domain.ParseOptionalAmount("interestRate", f.InterestRate, decimal.Zero)
	if err != nil {
		return domain.Liability{}, err
	}
	assetID, err := parseLink("associatedAssetId", f.AssociatedAssetID)
	if err != nil {
		return domain.Liability{}, err
	}

	return domain.Liability{
		ID:                id,
		Name:              strings.TrimSpace(f.Name),
		Category:          category,
		OriginalAmount:    originalAmount,
		CurrentBalance:    currentBalance,
		InterestRate:      interestRate,
		StartDate:         startDate,
		AssociatedAssetID: assetID,
		Notes:             strings.TrimSpace(f.Notes),
	}, nil
}

func parseRecordID(s string, newID func() uuid.UUID) (uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return newID(), nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "malformed id "+s)
	}
	return id, nil
}

func parseLink(field, s string) (*uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, domain.NewValidationError(field, "malformed id "+s)
	}
	return &id, nil
}

func parseFormDate(field, s string) (domain.Date, error) {
	d, err := domain.ParseDate(s)
	if err != nil {
		return domain.Date{}, domain.NewValidationError(field, err.Error())
	}
	return d, nil
}
