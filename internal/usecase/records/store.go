package records

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/networth/internal/domain"
)

// Reader is the read side of the Store consumed by calculations and codecs
type Reader interface {
	Assets() []domain.Asset
	Liabilities() []domain.Liability
	Snapshots() []domain.Snapshot
	FindAsset(id uuid.UUID) (domain.Asset, bool)
	FindLiability(id uuid.UUID) (domain.Liability, bool)
}

// Store holds the three ordered record collections in memory.
// Insertion order is display order (most recent last).
// It has no persistence logic of its own.
type Store struct {
	mu          sync.RWMutex
	assets      []domain.Asset
	liabilities []domain.Liability
	snapshots   []domain.Snapshot
	now         func() time.Time
}

// NewStore creates an empty Store using the wall clock for timestamps
func NewStore() *Store {
	return NewStoreWithClock(time.Now)
}

// NewStoreWithClock creates an empty Store using now for createdAt/updatedAt
func NewStoreWithClock(now func() time.Time) *Store {
	return &Store{now: now}
}

// UpsertAsset replaces the asset with the same ID in place, preserving its
// position and CreatedAt, or appends it when the ID is new.
// A debt link that is set or changed must resolve to an existing liability of
// the compatible category. An unchanged link is kept even if it now dangles,
// but while it resolves the pair must still fit the link policy. The category
// cannot change to one that a liability linked to this asset cannot finance.
func (s *Store) UpsertAsset(asset domain.Asset) (domain.Asset, error) {
	if err := asset.Validate(); err != nil {
		return domain.Asset{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.assets, func(a domain.Asset) bool { return a.ID == asset.ID })

	var previousLink *uuid.UUID
	if idx >= 0 {
		previousLink = s.assets[idx].AssociatedDebtID
	}
	if asset.HasDebtLink() {
		if err := s.checkDebtLink(asset, !sameID(previousLink, asset.AssociatedDebtID)); err != nil {
			return domain.Asset{}, err
		}
	}
	if idx >= 0 && s.assets[idx].Category != asset.Category {
		if err := s.checkLiabilitiesFinancing(asset); err != nil {
			return domain.Asset{}, err
		}
	}
	if !asset.HasDebtLink() {
		asset.AssociatedDebtID = nil
	}

	now := s.now()
	asset.UpdatedAt = now
	if idx >= 0 {
		asset.CreatedAt = s.assets[idx].CreatedAt
		s.assets[idx] = asset
		return asset, nil
	}

	if asset.CreatedAt.IsZero() {
		asset.CreatedAt = now
	}
	s.assets = append(s.assets, asset)
	return asset, nil
}

// UpsertLiability is the liability counterpart of UpsertAsset
func (s *Store) UpsertLiability(liability domain.Liability) (domain.Liability, error) {
	if err := liability.Validate(); err != nil {
		return domain.Liability{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.liabilities, func(l domain.Liability) bool { return l.ID == liability.ID })

	var previousLink *uuid.UUID
	if idx >= 0 {
		previousLink = s.liabilities[idx].AssociatedAssetID
	}
	if liability.HasAssetLink() {
		if err := s.checkAssetLink(liability, !sameID(previousLink, liability.AssociatedAssetID)); err != nil {
			return domain.Liability{}, err
		}
	}
	if idx >= 0 && s.liabilities[idx].Category != liability.Category {
		if err := s.checkAssetsFinancedBy(liability); err != nil {
			return domain.Liability{}, err
		}
	}
	if !liability.HasAssetLink() {
		liability.AssociatedAssetID = nil
	}

	now := s.now()
	liability.UpdatedAt = now
	if idx >= 0 {
		liability.CreatedAt = s.liabilities[idx].CreatedAt
		s.liabilities[idx] = liability
		return liability, nil
	}

	if liability.CreatedAt.IsZero() {
		liability.CreatedAt = now
	}
	s.liabilities = append(s.liabilities, liability)
	return liability, nil
}

// DeleteAsset removes the asset with the given ID.
// Liabilities that referenced it keep a dangling link.
func (s *Store) DeleteAsset(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.assets, func(a domain.Asset) bool { return a.ID == id })
	if idx < 0 {
		return fmt.Errorf("asset %s: %w", id, domain.ErrNotFound)
	}
	s.assets = slices.Delete(s.assets, idx, idx+1)
	return nil
}

// DeleteLiability removes the liability with the given ID.
// Assets that referenced it keep a dangling link.
func (s *Store) DeleteLiability(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.liabilities, func(l domain.Liability) bool { return l.ID == id })
	if idx < 0 {
		return fmt.Errorf("liability %s: %w", id, domain.ErrNotFound)
	}
	s.liabilities = slices.Delete(s.liabilities, idx, idx+1)
	return nil
}

// AppendSnapshot appends a snapshot to the history
func (s *Store) AppendSnapshot(snapshot domain.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots = append(s.snapshots, snapshot)
}

// Assets returns a copy of the assets in insertion order
func (s *Store) Assets() []domain.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.assets)
}

// Liabilities returns a copy of the liabilities in insertion order
func (s *Store) Liabilities() []domain.Liability {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.liabilities)
}

// Snapshots returns a copy of the snapshot history, oldest first
func (s *Store) Snapshots() []domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.snapshots)
}

// FindAsset resolves an asset ID, ok is false when it does not exist
func (s *Store) FindAsset(id uuid.UUID) (domain.Asset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findAsset(id)
}

// FindLiability resolves a liability ID, ok is false when it does not exist
func (s *Store) FindLiability(id uuid.UUID) (domain.Liability, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findLiability(id)
}

// Replace installs previously persisted collections, e.g. at startup
func (s *Store) Replace(assets []domain.Asset, liabilities []domain.Liability, snapshots []domain.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assets = slices.Clone(assets)
	s.liabilities = slices.Clone(liabilities)
	s.snapshots = slices.Clone(snapshots)
}

// Reset removes every record of every collection
func (s *Store) Reset() {
	s.Replace(nil, nil, nil)
}

func (s *Store) findAsset(id uuid.UUID) (domain.Asset, bool) {
	for _, a := range s.assets {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Asset{}, false
}

func (s *Store) findLiability(id uuid.UUID) (domain.Liability, bool) {
	for _, l := range s.liabilities {
		if l.ID == id {
			return l, true
		}
	}
	return domain.Liability{}, false
}

// checkDebtLink validates the pairing of asset with its debt. A link that
// no longer resolves is only an error when it was just set.
func (s *Store) checkDebtLink(asset domain.Asset, changed bool) error {
	target, ok := s.findLiability(*asset.AssociatedDebtID)
	if !ok {
		if !changed {
			return nil
		}
		return domain.NewValidationError("associatedDebtId", "liability "+asset.AssociatedDebtID.String()+" does not exist")
	}
	if !domain.CanLink(asset.Category, target.Category) {
		return domain.NewValidationError("associatedDebtId",
			fmt.Sprintf("%s asset cannot be linked to a %s liability", asset.Category, target.Category))
	}
	return nil
}

func (s *Store) checkAssetLink(liability domain.Liability, changed bool) error {
	target, ok := s.findAsset(*liability.AssociatedAssetID)
	if !ok {
		if !changed {
			return nil
		}
		return domain.NewValidationError("associatedAssetId", "asset "+liability.AssociatedAssetID.String()+" does not exist")
	}
	if !domain.CanLink(target.Category, liability.Category) {
		return domain.NewValidationError("associatedAssetId",
			fmt.Sprintf("%s liability cannot be linked to a %s asset", liability.Category, target.Category))
	}
	return nil
}

// checkLiabilitiesFinancing rejects a new asset category that the
// liabilities linked to the asset cannot finance
func (s *Store) checkLiabilitiesFinancing(asset domain.Asset) error {
	for _, l := range s.liabilities {
		if l.HasAssetLink() && *l.AssociatedAssetID == asset.ID && !domain.CanLink(asset.Category, l.Category) {
			return domain.NewValidationError("category",
				fmt.Sprintf("%s liability %q is linked to this asset and cannot finance a %s asset", l.Category, l.Name, asset.Category))
		}
	}
	return nil
}

// checkAssetsFinancedBy rejects a new liability category that no longer fits
// the assets linked to the liability
func (s *Store) checkAssetsFinancedBy(liability domain.Liability) error {
	for _, a := range s.assets {
		if a.HasDebtLink() && *a.AssociatedDebtID == liability.ID && !domain.CanLink(a.Category, liability.Category) {
			return domain.NewValidationError("category",
				fmt.Sprintf("%s asset %q is linked to this liability and cannot be financed by a %s", a.Category, a.Name, liability.Category))
		}
	}
	return nil
}

func sameID(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
