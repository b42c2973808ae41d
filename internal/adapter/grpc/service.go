package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully-qualified name of the net worth service
const ServiceName = "networth.v1.NetWorthService"

// NetWorthServiceServer is the server API for the net worth service.
// Records travel as google.protobuf.Struct using the JSON field names of the
// domain types; free text travels as google.protobuf.StringValue.
type NetWorthServiceServer interface {
	GetSummary(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	ListAssets(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	ListLiabilities(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	ListSnapshots(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SaveAsset(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SaveLiability(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteAsset(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	DeleteLiability(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	DeleteAll(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	TakeSnapshot(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	ExportCSV(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
	ExportTemplate(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
	ImportCSV(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
}

// ServiceDesc describes the net worth service for grpc.Server.RegisterService
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*NetWorthServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod("GetSummary", NetWorthServiceServer.GetSummary),
		unaryMethod("ListAssets", NetWorthServiceServer.ListAssets),
		unaryMethod("ListLiabilities", NetWorthServiceServer.ListLiabilities),
		unaryMethod("ListSnapshots", NetWorthServiceServer.ListSnapshots),
		unaryMethod("SaveAsset", NetWorthServiceServer.SaveAsset),
		unaryMethod("SaveLiability", NetWorthServiceServer.SaveLiability),
		unaryMethod("DeleteAsset", NetWorthServiceServer.DeleteAsset),
		unaryMethod("DeleteLiability", NetWorthServiceServer.DeleteLiability),
		unaryMethod("DeleteAll", NetWorthServiceServer.DeleteAll),
		unaryMethod("TakeSnapshot", NetWorthServiceServer.TakeSnapshot),
		unaryMethod("ExportCSV", NetWorthServiceServer.ExportCSV),
		unaryMethod("ExportTemplate", NetWorthServiceServer.ExportTemplate),
		unaryMethod("ImportCSV", NetWorthServiceServer.ImportCSV),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "networth/v1/networth.proto",
}

// RegisterNetWorthServiceServer registers srv with s
func RegisterNetWorthServiceServer(s grpc.ServiceRegistrar, srv NetWorthServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// FullMethod returns the "/service/method" path of a method
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// unaryMethod builds the handler grpc-go expects for one unary RPC: decode
// the request, then call the method through the interceptor chain if any.
func unaryMethod[Req any, PReq interface {
	*Req
	proto.Message
}, Resp proto.Message](name string, call func(NetWorthServiceServer, context.Context, PReq) (Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := PReq(new(Req))
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(NetWorthServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(name),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(NetWorthServiceServer), ctx, req.(PReq))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
