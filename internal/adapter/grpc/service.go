package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	TransferServiceName = "transfersol.v1.TransferService"

	TransferViaDelegationMethod     = "/" + TransferServiceName + "/TransferViaDelegation"
	TransferViaDirectMutationMethod = "/" + TransferServiceName + "/TransferViaDirectMutation"
)

// TransferServiceServer is the server API for TransferService.
// Requests and responses are structpb.Struct documents; see codec.go for their layout.
type TransferServiceServer interface {
	TransferViaDelegation(context.Context, *structpb.Struct) (*structpb.Struct, error)
	TransferViaDirectMutation(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterTransferServiceServer registers srv on s
func RegisterTransferServiceServer(s grpc.ServiceRegistrar, srv TransferServiceServer) {
	s.RegisterService(&TransferServiceDesc, srv)
}

// TransferServiceDesc describes TransferService for grpc.Server
var TransferServiceDesc = grpc.ServiceDesc{
	ServiceName: TransferServiceName,
	HandlerType: (*TransferServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "TransferViaDelegation",
			Handler:    transferViaDelegationHandler,
		},
		{
			MethodName: "TransferViaDirectMutation",
			Handler:    transferViaDirectMutationHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "transfersol/v1/transfer.proto",
}

func transferViaDelegationHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TransferServiceServer).TransferViaDelegation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TransferViaDelegationMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TransferServiceServer).TransferViaDelegation(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func transferViaDirectMutationHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TransferServiceServer).TransferViaDirectMutation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TransferViaDirectMutationMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TransferServiceServer).TransferViaDirectMutation(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// TransferServiceClient calls TransferService over a client connection
type TransferServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewTransferServiceClient creates a client bound to cc
func NewTransferServiceClient(cc grpc.ClientConnInterface) *TransferServiceClient {
	return &TransferServiceClient{cc: cc}
}

func (c *TransferServiceClient) TransferViaDelegation(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, TransferViaDelegationMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *TransferServiceClient) TransferViaDirectMutation(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, TransferViaDirectMutationMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
