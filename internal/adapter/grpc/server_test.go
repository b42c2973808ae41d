package grpc

import (
	"context"
	"net"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/simaogato/networth/internal/adapter/repository/memory"
	"github.com/simaogato/networth/internal/log"
	"github.com/simaogato/networth/internal/usecase/csvio"
	"github.com/simaogato/networth/internal/usecase/tracker"
)

const testToken = "test-token"

// testClient calls the service over an in-memory connection
type testClient struct {
	conn *grpc.ClientConn
}

func (c *testClient) call(t *testing.T, method string, req, resp proto.Message) error {
	t.Helper()
	ctx := metadata.AppendToOutgoingContext(context.Background(), "authorization", testToken)
	return c.conn.Invoke(ctx, FullMethod(method), req, resp)
}

func newTestServer(t *testing.T) (*testClient, *tracker.TrackerService) {
	t.Helper()

	svc := tracker.NewTrackerService(memory.NewKeyValueStore(), log.Discard())
	lis := bufconn.Listen(1 << 20)

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			LoggingInterceptor(log.Discard()),
			AuthInterceptor(testToken),
		),
	)
	RegisterNetWorthServiceServer(grpcServer, NewServer(svc))
	go func() { _ = grpcServer.Serve(lis) }()
	t.Cleanup(grpcServer.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &testClient{conn: conn}, svc
}

func mustStruct(t *testing.T, m map[string]any) *structpb.Struct {
	t.Helper()
	s, err := structpb.NewStruct(m)
	require.NoError(t, err)
	return s
}

func TestServer_SaveAndSummarize(t *testing.T) {
	client, _ := newTestServer(t)

	house := new(structpb.Struct)
	err := client.call(t, "SaveAsset", mustStruct(t, map[string]any{
		"name":          "House",
		"category":      "real-estate",
		"purchaseDate":  "2020-06-15",
		"purchasePrice": "350000",
		"currentValue":  425000,
	}), house)
	require.NoError(t, err)
	houseID := house.GetFields()["id"].GetStringValue()
	assert.NotEmpty(t, houseID)
	assert.Equal(t, "Real Estate", house.GetFields()["category"].GetStringValue())
	assert.Equal(t, "75000", house.GetFields()["gain"].GetStringValue())

	mortgage := new(structpb.Struct)
	err = client.call(t, "SaveLiability", mustStruct(t, map[string]any{
		"name":              "Mortgage",
		"category":          "Mortgage",
		"originalAmount":    "280000",
		"currentBalance":    "245000",
		"interestRate":      "6.5",
		"startDate":         "2020-06-15",
		"associatedAssetId": houseID,
	}), mortgage)
	require.NoError(t, err)
	assert.Equal(t, "12.5", mortgage.GetFields()["payoffPercent"].GetStringValue())

	summary := new(structpb.Struct)
	require.NoError(t, client.call(t, "GetSummary", &emptypb.Empty{}, summary))
	fields := summary.GetFields()
	assert.Equal(t, "425000", fields["totalAssets"].GetStringValue())
	assert.Equal(t, "245000", fields["totalLiabilities"].GetStringValue())
	assert.Equal(t, "180000", fields["netWorth"].GetStringValue())
	assert.False(t, fields["hasPrevious"].GetBoolValue())
	assert.Len(t, fields["assetsByCategory"].GetListValue().GetValues(), 1)

	list := new(structpb.Struct)
	require.NoError(t, client.call(t, "ListAssets", &emptypb.Empty{}, list))
	assets := list.GetFields()["assets"].GetListValue().GetValues()
	require.Len(t, assets, 1)
	// Only the mortgage points at the house, so the house carries no debt
	assert.Equal(t, "425000", assets[0].GetStructValue().GetFields()["equity"].GetStringValue())
}

func TestServer_ErrorCodes(t *testing.T) {
	client, svc := newTestServer(t)

	err := client.call(t, "SaveAsset", mustStruct(t, map[string]any{"name": "Boat", "category": "Boat"}), new(structpb.Struct))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	err = client.call(t, "DeleteAsset", mustStruct(t, map[string]any{"id": "nope", "confirm": true}), new(emptypb.Empty))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	err = client.call(t, "DeleteLiability", mustStruct(t, map[string]any{
		"id":      "6f1c1c1e-2b7a-4d7e-9d0c-3d2f1a9b8c7d",
		"confirm": true,
	}), new(emptypb.Empty))
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = svc.ImportCSV(context.Background(), strings.NewReader(csvio.Template))
	require.NoError(t, err)

	err = client.call(t, "DeleteAll", mustStruct(t, map[string]any{}), new(emptypb.Empty))
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	assert.False(t, svc.IsEmpty())

	require.NoError(t, client.call(t, "DeleteAll", mustStruct(t, map[string]any{"confirm": true}), new(emptypb.Empty)))
	assert.True(t, svc.IsEmpty())
}

func TestServer_RequiresToken(t *testing.T) {
	client, _ := newTestServer(t)

	err := client.conn.Invoke(context.Background(), FullMethod("GetSummary"), &emptypb.Empty{}, new(structpb.Struct))
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestServer_SnapshotsAndCSV(t *testing.T) {
	client, _ := newTestServer(t)

	imported := new(structpb.Struct)
	require.NoError(t, client.call(t, "ImportCSV", wrapperspb.String(csvio.Template), imported))
	assert.Equal(t, float64(3), imported.GetFields()["assets"].GetNumberValue())
	assert.Equal(t, float64(2), imported.GetFields()["liabilities"].GetNumberValue())

	for _, note := range []string{"first", "second", "third"} {
		require.NoError(t, client.call(t, "TakeSnapshot", wrapperspb.String(note), new(structpb.Struct)))
	}

	snaps := new(structpb.Struct)
	require.NoError(t, client.call(t, "ListSnapshots", mustStruct(t, map[string]any{"limit": 2}), snaps))
	values := snaps.GetFields()["snapshots"].GetListValue().GetValues()
	require.Len(t, values, 2)
	assert.Equal(t, "third", values[0].GetStructValue().GetFields()["notes"].GetStringValue())

	exported := new(wrapperspb.StringValue)
	require.NoError(t, client.call(t, "ExportCSV", &emptypb.Empty{}, exported))
	result := csvio.Parse(exported.GetValue(), uuid.New)
	assert.Len(t, result.Assets, 3)
	assert.Len(t, result.Liabilities, 2)

	template := new(wrapperspb.StringValue)
	require.NoError(t, client.call(t, "ExportTemplate", &emptypb.Empty{}, template))
	assert.Equal(t, csvio.Template, template.GetValue())
}
