package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Liability represents a debt obligation
type Liability struct {
	ID                uuid.UUID         `json:"id"`
	Name              string            `json:"name"`
	Category          LiabilityCategory `json:"category"`
	OriginalAmount    decimal.Decimal   `json:"originalAmount"` // Original principal
	CurrentBalance    decimal.Decimal   `json:"currentBalance"`
	InterestRate      decimal.Decimal   `json:"interestRate"` // Percentage, 4.5 means 4.5%
	StartDate         Date              `json:"startDate"`
	AssociatedAssetID *uuid.UUID        `json:"associatedAssetId,omitempty"`
	Notes             string            `json:"notes,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

// Validate ensures the liability adheres to domain rules
func (l *Liability) Validate() error {
	if l.ID == uuid.Nil {
		return NewValidationError("id", "liability id cannot be empty")
	}
	if strings.TrimSpace(l.Name) == "" {
		return NewValidationError("name", "liability name cannot be empty")
	}
	if !l.Category.IsValid() {
		return NewValidationError("category", "unknown liability category "+quote(string(l.Category)))
	}
	if l.StartDate.IsZero() {
		return NewValidationError("startDate", "start date cannot be empty")
	}
	if l.OriginalAmount.IsNegative() {
		return NewValidationError("originalAmount", "original amount cannot be negative")
	}
	if l.CurrentBalance.IsNegative() {
		return NewValidationError("currentBalance", "current balance cannot be negative")
	}
	if l.InterestRate.IsNegative() {
		return NewValidationError("interestRate", "interest rate cannot be negative")
	}

	if l.AssociatedAssetID != nil {
		if _, ok := LinkableAssetCategory(l.Category); !ok {
			return NewValidationError("associatedAssetId", "category "+quote(string(l.Category))+" cannot be linked to an asset")
		}
	}

	return nil
}

// HasAssetLink reports whether the liability references an asset
func (l *Liability) HasAssetLink() bool {
	return l.AssociatedAssetID != nil && *l.AssociatedAssetID != uuid.Nil
}
