package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Snapshot is a frozen capture of the aggregate totals at a point in time.
// Its values are a historical fact and are never recomputed.
type Snapshot struct {
	ID               uuid.UUID       `json:"id"`
	Date             time.Time       `json:"date"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	NetWorth         decimal.Decimal `json:"netWorth"`
	Notes            string          `json:"notes,omitempty"`
}
