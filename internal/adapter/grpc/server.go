package grpc

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/simaogato/networth/internal/domain"
	"github.com/simaogato/networth/internal/usecase/snapshot"
	"github.com/simaogato/networth/internal/usecase/tracker"
)

// Server implements the NetWorthService gRPC server
type Server struct {
	Tracker *tracker.TrackerService

	// SnapshotLimit is used by ListSnapshots when the request has no limit
	SnapshotLimit int
}

var _ NetWorthServiceServer = (*Server)(nil)

// NewServer creates a new gRPC server instance
func NewServer(trackerService *tracker.TrackerService) *Server {
	return &Server{
		Tracker:       trackerService,
		SnapshotLimit: snapshot.DefaultDisplayLimit,
	}
}

// GetSummary handles the GetSummary RPC
func (s *Server) GetSummary(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	dash := s.Tracker.Dashboard
	resp, err := summaryStruct(dash.GetSummary(), dash)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode summary: %v", err)
	}
	return resp, nil
}

// ListAssets handles the ListAssets RPC
func (s *Server) ListAssets(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	assets := s.Tracker.Store.Assets()
	items := make([]any, 0, len(assets))
	for _, a := range assets {
		m, err := assetValue(a, s.Tracker.Dashboard)
		if err != nil {
			return nil, status.Error(codes.Internal, err.Error())
		}
		items = append(items, m)
	}
	return listStruct("assets", items)
}

// ListLiabilities handles the ListLiabilities RPC
func (s *Server) ListLiabilities(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	liabilities := s.Tracker.Store.Liabilities()
	items := make([]any, 0, len(liabilities))
	for _, l := range liabilities {
		m, err := liabilityValue(l, s.Tracker.Dashboard)
		if err != nil {
			return nil, status.Error(codes.Internal, err.Error())
		}
		items = append(items, m)
	}
	return listStruct("liabilities", items)
}

// ListSnapshots handles the ListSnapshots RPC.
// The optional "limit" field caps the result; a negative limit returns the
// whole history.
func (s *Server) ListSnapshots(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	limit := s.SnapshotLimit
	if _, ok := req.GetFields()["limit"]; ok {
		limit = intField(req, "limit")
	}

	snaps := s.Tracker.RecentSnapshots(limit)
	items := make([]any, 0, len(snaps))
	for _, snap := range snaps {
		m, err := snapshotValue(snap)
		if err != nil {
			return nil, status.Error(codes.Internal, err.Error())
		}
		items = append(items, m)
	}
	return listStruct("snapshots", items)
}

// SaveAsset handles the SaveAsset RPC
func (s *Server) SaveAsset(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	asset, err := s.Tracker.SaveAsset(ctx, assetForm(req))
	if err != nil {
		return nil, mapError(err)
	}

	m, err := assetValue(asset, s.Tracker.Dashboard)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return structpb.NewStruct(m)
}

// SaveLiability handles the SaveLiability RPC
func (s *Server) SaveLiability(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	liability, err := s.Tracker.SaveLiability(ctx, liabilityForm(req))
	if err != nil {
		return nil, mapError(err)
	}

	m, err := liabilityValue(liability, s.Tracker.Dashboard)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return structpb.NewStruct(m)
}

// DeleteAsset handles the DeleteAsset RPC.
// The request must carry "confirm": true, there is no interactive prompt.
func (s *Server) DeleteAsset(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	id, err := uuid.Parse(stringField(req, "id"))
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid id format: %v", err)
	}

	if err := s.Tracker.DeleteAsset(ctx, id, requestConfirmer(req)); err != nil {
		return nil, mapError(err)
	}
	return &emptypb.Empty{}, nil
}

// DeleteLiability handles the DeleteLiability RPC
func (s *Server) DeleteLiability(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	id, err := uuid.Parse(stringField(req, "id"))
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid id format: %v", err)
	}

	if err := s.Tracker.DeleteLiability(ctx, id, requestConfirmer(req)); err != nil {
		return nil, mapError(err)
	}
	return &emptypb.Empty{}, nil
}

// DeleteAll handles the DeleteAll RPC
func (s *Server) DeleteAll(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	if err := s.Tracker.DeleteAll(ctx, requestConfirmer(req)); err != nil {
		return nil, mapError(err)
	}
	return &emptypb.Empty{}, nil
}

// TakeSnapshot handles the TakeSnapshot RPC
func (s *Server) TakeSnapshot(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	snap, err := s.Tracker.TakeSnapshot(ctx, strings.TrimSpace(req.GetValue()))
	if err != nil {
		return nil, mapError(err)
	}

	m, err := snapshotValue(snap)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return structpb.NewStruct(m)
}

// ExportCSV handles the ExportCSV RPC
func (s *Server) ExportCSV(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	var b strings.Builder
	if err := s.Tracker.ExportCSV(ctx, &b); err != nil {
		return nil, mapError(err)
	}
	return wrapperspb.String(b.String()), nil
}

// ExportTemplate handles the ExportTemplate RPC
func (s *Server) ExportTemplate(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	var b strings.Builder
	if err := s.Tracker.ExportTemplate(&b); err != nil {
		return nil, mapError(err)
	}
	return wrapperspb.String(b.String()), nil
}

// ImportCSV handles the ImportCSV RPC
func (s *Server) ImportCSV(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	result, err := s.Tracker.ImportCSV(ctx, strings.NewReader(req.GetValue()))
	if err != nil {
		return nil, mapError(err)
	}
	return importResultStruct(result)
}

func listStruct(field string, items []any) (*structpb.Struct, error) {
	resp, err := structpb.NewStruct(map[string]any{field: items})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode %s: %v", field, err)
	}
	return resp, nil
}

// requestConfirmer approves the deletion only when the request says so
func requestConfirmer(req *structpb.Struct) domain.Confirmer {
	ok := boolField(req, "confirm")
	return domain.ConfirmFunc(func(string) bool { return ok })
}

// mapError maps domain errors to appropriate gRPC status codes
func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrImportFailure):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrCancelled):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		// Persistence failures and unknown errors
		return status.Error(codes.Internal, err.Error())
	}
}
