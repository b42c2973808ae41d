package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLiability_Validate(t *testing.T) {
	assetID := uuid.New()
	valid := func() Liability {
		return Liability{
			ID:             uuid.New(),
			Name:           "Home Loan",
			Category:       LiabilityCategoryMortgage,
			OriginalAmount: decimal.NewFromInt(250000),
			CurrentBalance: decimal.NewFromInt(240000),
			StartDate:      MustParseDate("2020-01-01"),
		}
	}

	tests := []struct {
		name    string
		mutate  func(l *Liability)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid liability",
			mutate:  func(l *Liability) {},
			wantErr: false,
		},
		{
			name:    "missing start date",
			mutate:  func(l *Liability) { l.StartDate = Date{} },
			wantErr: true,
			errMsg:  "start date cannot be empty",
		},
		{
			name:    "empty name",
			mutate:  func(l *Liability) { l.Name = "" },
			wantErr: true,
			errMsg:  "liability name cannot be empty",
		},
		{
			name:    "unknown category",
			mutate:  func(l *Liability) { l.Category = LiabilityCategory("IOU") },
			wantErr: true,
			errMsg:  "unknown liability category",
		},
		{
			name:    "negative balance",
			mutate:  func(l *Liability) { l.CurrentBalance = decimal.NewFromInt(-10) },
			wantErr: true,
			errMsg:  "current balance cannot be negative",
		},
		{
			name:    "negative original amount",
			mutate:  func(l *Liability) { l.OriginalAmount = decimal.NewFromInt(-10) },
			wantErr: true,
			errMsg:  "original amount cannot be negative",
		},
		{
			name:    "negative interest rate",
			mutate:  func(l *Liability) { l.InterestRate = decimal.NewFromFloat(-0.5) },
			wantErr: true,
			errMsg:  "interest rate cannot be negative",
		},
		{
			name: "asset link on credit card",
			mutate: func(l *Liability) {
				l.Category = LiabilityCategoryCreditCard
				l.AssociatedAssetID = &assetID
			},
			wantErr: true,
			errMsg:  "cannot be linked to an asset",
		},
		{
			name:    "asset link on mortgage",
			mutate:  func(l *Liability) { l.AssociatedAssetID = &assetID },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := valid()
			tt.mutate(&l)
			err := l.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
