package handler

import (
	"context"

	"google.golang.org/grpc"
)

const storeServiceName = "storefront.Store"

// StoreServer is the server API of the storefront.Store gRPC service.
type StoreServer interface {
	ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error)
	TotalQuantity(context.Context, *TotalQuantityRequest) (*TotalQuantityResponse, error)
	PlaceOrder(context.Context, *PlaceOrderRequest) (*OrderResponse, error)
}

func RegisterStoreServer(s grpc.ServiceRegistrar, srv StoreServer) {
	s.RegisterService(&storeServiceDesc, srv)
}

var storeServiceDesc = grpc.ServiceDesc{
	ServiceName: storeServiceName,
	HandlerType: (*StoreServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListProducts",
			Handler: unaryHandler("ListProducts", func(srv StoreServer, ctx context.Context, in *ListProductsRequest) (any, error) {
				return srv.ListProducts(ctx, in)
			}),
		},
		{
			MethodName: "TotalQuantity",
			Handler: unaryHandler("TotalQuantity", func(srv StoreServer, ctx context.Context, in *TotalQuantityRequest) (any, error) {
				return srv.TotalQuantity(ctx, in)
			}),
		},
		{
			MethodName: "PlaceOrder",
			Handler: unaryHandler("PlaceOrder", func(srv StoreServer, ctx context.Context, in *PlaceOrderRequest) (any, error) {
				return srv.PlaceOrder(ctx, in)
			}),
		},
	},
	Streams: []grpc.StreamDesc{},
}

func unaryHandler[Req any](method string, call func(StoreServer, context.Context, *Req) (any, error)) grpc.MethodHandler {
	fullMethod := "/" + storeServiceName + "/" + method
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(StoreServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(StoreServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// StoreClient calls the storefront.Store service.
type StoreClient struct {
	cc grpc.ClientConnInterface
}

func NewStoreClient(cc grpc.ClientConnInterface) *StoreClient {
	return &StoreClient{cc: cc}
}

func (c *StoreClient) ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsResponse, error) {
	out := new(ListProductsResponse)
	return out, c.invoke(ctx, "ListProducts", in, out, opts)
}

func (c *StoreClient) TotalQuantity(ctx context.Context, in *TotalQuantityRequest, opts ...grpc.CallOption) (*TotalQuantityResponse, error) {
	out := new(TotalQuantityResponse)
	return out, c.invoke(ctx, "TotalQuantity", in, out, opts)
}

func (c *StoreClient) PlaceOrder(ctx context.Context, in *PlaceOrderRequest, opts ...grpc.CallOption) (*OrderResponse, error) {
	out := new(OrderResponse)
	return out, c.invoke(ctx, "PlaceOrder", in, out, opts)
}

func (c *StoreClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codecName)}, opts...)
	return c.cc.Invoke(ctx, "/"+storeServiceName+"/"+method, in, out, opts...)
}
