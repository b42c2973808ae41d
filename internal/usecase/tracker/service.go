package tracker

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/simaogato/networth/internal/domain"
	"github.com/simaogato/networth/internal/log"
	"github.com/simaogato/networth/internal/usecase/csvio"
	"github.com/simaogato/networth/internal/usecase/dashboard"
	"github.com/simaogato/networth/internal/usecase/records"
	"github.com/simaogato/networth/internal/usecase/snapshot"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// ImportResult reports what an import added to the store
type ImportResult struct {
	Assets      int
	Liabilities int
	Skipped     int
}

// TrackerService is the entry point used by the CLI and gRPC adapters.
// It turns form input into records, keeps the store and the key-value store
// in step, and gates destructive operations behind a Confirmer.
//
// When a save fails the in-memory change stays applied and the error wraps
// domain.ErrPersistence, so the caller can report that the data is unsaved.
// The collection stays dirty and is written again by the next save.
type TrackerService struct {
	Store     *records.Store
	Dashboard *dashboard.DashboardService
	Snapshots *snapshot.Engine
	KV        domain.KeyValueStore

	mu     sync.Mutex
	dirty  map[string]bool // Collections changed in memory but not yet saved
	logger *log.Logger
	newID  func() uuid.UUID
}

// NewTrackerService creates a TrackerService backed by kv
func NewTrackerService(kv domain.KeyValueStore, logger *log.Logger) *TrackerService {
	store := records.NewStore()
	dash := dashboard.NewDashboardService(store)
	if logger == nil {
		logger = log.Discard()
	}

	return &TrackerService{
		Store:     store,
		Dashboard: dash,
		Snapshots: snapshot.NewEngine(store, dash),
		KV:        kv,
		dirty:     make(map[string]bool),
		logger:    logger.WithComponent(log.ComponentTracker),
		newID:     uuid.New,
	}
}

// Load replaces the in-memory records with the persisted collections.
// Keys that were never saved load as empty collections. Nothing is replaced
// if any collection fails to load or decode.
func (s *TrackerService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	assets, err := loadCollection[domain.Asset](ctx, s.KV, domain.KeyAssets)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load records", log.FieldOperation, log.OpLoad, log.FieldKey, domain.KeyAssets, log.FieldError, err)
		return err
	}
	liabilities, err := loadCollection[domain.Liability](ctx, s.KV, domain.KeyLiabilities)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load records", log.FieldOperation, log.OpLoad, log.FieldKey, domain.KeyLiabilities, log.FieldError, err)
		return err
	}
	snapshots, err := loadCollection[domain.Snapshot](ctx, s.KV, domain.KeySnapshots)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load records", log.FieldOperation, log.OpLoad, log.FieldKey, domain.KeySnapshots, log.FieldError, err)
		return err
	}

	s.Store.Replace(assets, liabilities, snapshots)
	clear(s.dirty)
	s.logger.InfoContext(ctx, "records loaded",
		log.FieldOperation, log.OpLoad,
		log.FieldAssets, len(assets),
		log.FieldLiabilities, len(liabilities),
		log.FieldSnapshots, len(snapshots),
	)
	return nil
}

// SaveAsset creates or updates an asset from form input and persists the
// asset collection
func (s *TrackerService) SaveAsset(ctx context.Context, form AssetForm) (domain.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	asset, err := form.toAsset(s.newID)
	if err != nil {
		return domain.Asset{}, err
	}
	saved, err := s.Store.UpsertAsset(asset)
	if err != nil {
		return domain.Asset{}, err
	}

	s.logger.InfoContext(ctx, "asset saved",
		log.FieldOperation, log.OpUpsert,
		log.FieldRecordID, saved.ID,
		log.FieldRecordName, saved.Name,
		log.FieldCategory, saved.Category,
	)
	return saved, s.persist(ctx, domain.KeyAssets)
}

// SaveLiability creates or updates a liability from form input and persists
// the liability collection
func (s *TrackerService) SaveLiability(ctx context.Context, form LiabilityForm) (domain.Liability, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	liability, err := form.toLiability(s.newID)
	if err != nil {
		return domain.Liability{}, err
	}
	saved, err := s.Store.UpsertLiability(liability)
	if err != nil {
		return domain.Liability{}, err
	}

	s.logger.InfoContext(ctx, "liability saved",
		log.FieldOperation, log.OpUpsert,
		log.FieldRecordID, saved.ID,
		log.FieldRecordName, saved.Name,
		log.FieldCategory, saved.Category,
	)
	return saved, s.persist(ctx, domain.KeyLiabilities)
}

// DeleteAsset removes an asset after the user confirms.
// Liabilities pointing at it keep their now-dangling link.
func (s *TrackerService) DeleteAsset(ctx context.Context, id uuid.UUID, confirm domain.Confirmer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	asset, ok := s.Store.FindAsset(id)
	if !ok {
		return fmt.Errorf("asset %s: %w", id, domain.ErrNotFound)
	}
	if !confirmed(confirm, fmt.Sprintf("Delete asset %q?", asset.Name)) {
		return fmt.Errorf("delete asset %q: %w", asset.Name, domain.ErrCancelled)
	}
	if err := s.Store.DeleteAsset(id); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "asset deleted", log.FieldOperation, log.OpDelete, log.FieldRecordID, id, log.FieldRecordName, asset.Name)
	return s.persist(ctx, domain.KeyAssets)
}

// DeleteLiability removes a liability after the user confirms.
// Assets pointing at it keep their now-dangling link.
func (s *TrackerService) DeleteLiability(ctx context.Context, id uuid.UUID, confirm domain.Confirmer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	liability, ok := s.Store.FindLiability(id)
	if !ok {
		return fmt.Errorf("liability %s: %w", id, domain.ErrNotFound)
	}
	if !confirmed(confirm, fmt.Sprintf("Delete liability %q?", liability.Name)) {
		return fmt.Errorf("delete liability %q: %w", liability.Name, domain.ErrCancelled)
	}
	if err := s.Store.DeleteLiability(id); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "liability deleted", log.FieldOperation, log.OpDelete, log.FieldRecordID, id, log.FieldRecordName, liability.Name)
	return s.persist(ctx, domain.KeyLiabilities)
}

// DeleteAll clears all assets, liabilities and snapshots after the user
// confirms, then persists the three empty collections
func (s *TrackerService) DeleteAll(ctx context.Context, confirm domain.Confirmer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !confirmed(confirm, "Delete ALL assets, liabilities and snapshots? This cannot be undone.") {
		return fmt.Errorf("delete all: %w", domain.ErrCancelled)
	}

	s.Store.Reset()
	s.logger.WarnContext(ctx, "all records deleted", log.FieldOperation, log.OpReset)
	return s.persist(ctx, domain.KeyAssets, domain.KeyLiabilities, domain.KeySnapshots)
}

// TakeSnapshot records the current totals with an optional note and persists
// the snapshot history
func (s *TrackerService) TakeSnapshot(ctx context.Context, note string) (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.Snapshots.TakeSnapshot(note)
	s.logger.InfoContext(ctx, "snapshot taken",
		log.FieldOperation, log.OpSnapshot,
		log.FieldRecordID, snap.ID,
		log.FieldNetWorth, snap.NetWorth.String(),
	)
	return snap, s.persist(ctx, domain.KeySnapshots)
}

// RecentSnapshots returns up to n snapshots, newest first
func (s *TrackerService) RecentSnapshots(n int) []domain.Snapshot {
	return s.Snapshots.Recent(n)
}

// ExportCSV writes all assets and liabilities as CSV
func (s *TrackerService) ExportCSV(ctx context.Context, w io.Writer) error {
	assets := s.Store.Assets()
	liabilities := s.Store.Liabilities()

	if err := csvio.Write(w, assets, liabilities); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "records exported",
		log.FieldOperation, log.OpExport,
		log.FieldAssets, len(assets),
		log.FieldLiabilities, len(liabilities),
	)
	return nil
}

// ExportTemplate writes the static CSV import template
func (s *TrackerService) ExportTemplate(w io.Writer) error {
	return csvio.WriteTemplate(w)
}

// ImportCSV appends the records read from r with fresh IDs.
// Malformed rows are skipped and counted. If r cannot be read or is not
// UTF-8 text nothing is added and the error wraps domain.ErrImportFailure.
func (s *TrackerService) ImportCSV(ctx context.Context, r io.Reader) (ImportResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return ImportResult{}, fmt.Errorf("%w: read: %w", domain.ErrImportFailure, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return ImportResult{}, fmt.Errorf("%w: input is not valid UTF-8 text", domain.ErrImportFailure)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	parsed := csvio.Parse(string(data), s.newID)
	result := ImportResult{Skipped: parsed.Skipped}

	for _, asset := range parsed.Assets {
		if _, err := s.Store.UpsertAsset(asset); err != nil {
			result.Skipped++
			continue
		}
		result.Assets++
	}
	for _, liability := range parsed.Liabilities {
		if _, err := s.Store.UpsertLiability(liability); err != nil {
			result.Skipped++
			continue
		}
		result.Liabilities++
	}

	s.logger.InfoContext(ctx, "records imported",
		log.FieldOperation, log.OpImport,
		log.FieldAssets, result.Assets,
		log.FieldLiabilities, result.Liabilities,
		log.FieldSkipped, result.Skipped,
	)
	if result.Assets == 0 && result.Liabilities == 0 {
		return result, nil
	}
	return result, s.persist(ctx, domain.KeyAssets, domain.KeyLiabilities)
}

// AssetLinkCandidates lists the liabilities an asset of the given category
// may link to. It is empty for categories without a link policy.
func (s *TrackerService) AssetLinkCandidates(category domain.AssetCategory) []domain.Liability {
	want, ok := domain.LinkableLiabilityCategory(category)
	if !ok {
		return nil
	}

	var out []domain.Liability
	for _, l := range s.Store.Liabilities() {
		if l.Category == want {
			out = append(out, l)
		}
	}
	return out
}

// LiabilityLinkCandidates lists the assets a liability of the given category
// may link to. It is empty for categories without a link policy.
func (s *TrackerService) LiabilityLinkCandidates(category domain.LiabilityCategory) []domain.Asset {
	want, ok := domain.LinkableAssetCategory(category)
	if !ok {
		return nil
	}

	var out []domain.Asset
	for _, a := range s.Store.Assets() {
		if a.Category == want {
			out = append(out, a)
		}
	}
	return out
}

// IsEmpty reports whether the tracker holds no assets and no liabilities
func (s *TrackerService) IsEmpty() bool {
	return len(s.Store.Assets()) == 0 && len(s.Store.Liabilities()) == 0
}

// persist marks the given collections dirty and writes every dirty one.
// Callers hold s.mu.
func (s *TrackerService) persist(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		s.dirty[key] = true
	}

	for _, key := range []string{domain.KeyAssets, domain.KeyLiabilities, domain.KeySnapshots} {
		if !s.dirty[key] {
			continue
		}

		var err error
		switch key {
		case domain.KeyAssets:
			err = saveCollection(ctx, s.KV, key, s.Store.Assets())
		case domain.KeyLiabilities:
			err = saveCollection(ctx, s.KV, key, s.Store.Liabilities())
		case domain.KeySnapshots:
			err = saveCollection(ctx, s.KV, key, s.Store.Snapshots())
		}
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to persist records", log.FieldOperation, log.OpSave, log.FieldKey, key, log.FieldError, err)
			return err
		}
		delete(s.dirty, key)
	}
	return nil
}

func confirmed(confirm domain.Confirmer, message string) bool {
	return confirm != nil && confirm.Confirm(message)
}
