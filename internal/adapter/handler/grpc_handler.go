package handler

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rl1809/storefront/internal/core/service"
)

type GRPCHandler struct {
	orderService *service.OrderService
	logger       *zap.Logger
}

func NewGRPCHandler(orderService *service.OrderService, logger *zap.Logger) *GRPCHandler {
	return &GRPCHandler{orderService: orderService, logger: logger}
}

func (h *GRPCHandler) ListProducts(ctx context.Context, req *ListProductsRequest) (*ListProductsResponse, error) {
	products, err := h.orderService.Store().AllActiveProducts()
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}

	resp := &ListProductsResponse{Products: make([]ProductResponse, len(products))}
	for i, p := range products {
		resp.Products[i] = toProductResponse(p)
	}
	return resp, nil
}

func (h *GRPCHandler) TotalQuantity(ctx context.Context, req *TotalQuantityRequest) (*TotalQuantityResponse, error) {
	total, err := h.orderService.Store().TotalQuantity()
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}
	return &TotalQuantityResponse{Total: total}, nil
}

func (h *GRPCHandler) PlaceOrder(ctx context.Context, req *PlaceOrderRequest) (*OrderResponse, error) {
	items, err := resolveItems(h.orderService.Store(), req.Items)
	if err != nil {
		return nil, h.fail(err)
	}

	order, err := h.orderService.PlaceOrder(ctx, req.RequestID, items)
	if err != nil {
		return nil, h.fail(err)
	}
	return toOrderResponse(order), nil
}

func (h *GRPCHandler) fail(err error) error {
	f := classify(err)
	if f.code == codes.Internal {
		h.logger.Error("place order failed", zap.Error(err))
	}
	return status.Error(f.code, f.message)
}
