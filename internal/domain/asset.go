package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Asset represents an owned item of value
type Asset struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	Category         AssetCategory   `json:"category"`
	PurchaseDate     Date            `json:"purchaseDate"`
	PurchasePrice    decimal.Decimal `json:"purchasePrice"`
	CurrentValue     decimal.Decimal `json:"currentValue"` // Negative only when the value is truly impaired
	AssociatedDebtID *uuid.UUID      `json:"associatedDebtId,omitempty"`
	Notes            string          `json:"notes,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// Validate ensures the asset adheres to domain rules
func (a *Asset) Validate() error {
	if a.ID == uuid.Nil {
		return NewValidationError("id", "asset id cannot be empty")
	}
	if strings.TrimSpace(a.Name) == "" {
		return NewValidationError("name", "asset name cannot be empty")
	}
	if !a.Category.IsValid() {
		return NewValidationError("category", "unknown asset category "+quote(string(a.Category)))
	}
	if a.PurchasePrice.IsNegative() {
		return NewValidationError("purchasePrice", "purchase price cannot be negative")
	}

	// Only the three policy categories can carry a debt link
	if a.AssociatedDebtID != nil {
		if _, ok := LinkableLiabilityCategory(a.Category); !ok {
			return NewValidationError("associatedDebtId", "category "+quote(string(a.Category))+" cannot be linked to a liability")
		}
	}

	return nil
}

// HasDebtLink reports whether the asset references a liability
func (a *Asset) HasDebtLink() bool {
	return a.AssociatedDebtID != nil && *a.AssociatedDebtID != uuid.Nil
}
