package handler

import (
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"

	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/core/service"
)

// Wire messages shared by the HTTP and gRPC surfaces.

type ProductResponse struct {
	Name      string          `json:"name"`
	Kind      string          `json:"kind"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Active    bool            `json:"active"`
	Promotion string          `json:"promotion,omitempty"`
	Display   string          `json:"display"`
}

type ListProductsRequest struct{}

type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
}

type TotalQuantityRequest struct{}

type TotalQuantityResponse struct {
	Total int `json:"total"`
}

type OrderItemRequest struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

type PlaceOrderRequest struct {
	RequestID string             `json:"request_id"`
	Items     []OrderItemRequest `json:"items"`
}

type OrderLineResponse struct {
	Product  string          `json:"product"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type OrderResponse struct {
	ID    string              `json:"id"`
	Lines []OrderLineResponse `json:"lines"`
	Total decimal.Decimal     `json:"total"`
}

func toProductResponse(p domain.Purchasable) ProductResponse {
	resp := ProductResponse{
		Name:     p.Name(),
		Kind:     string(p.Kind()),
		Price:    p.Price(),
		Quantity: p.Quantity(),
		Active:   p.IsActive(),
		Display:  p.Show(),
	}
	if promo := p.Promotion(); promo != nil {
		resp.Promotion = promo.Name()
	}
	return resp
}

func toOrderResponse(order domain.Order) *OrderResponse {
	lines := make([]OrderLineResponse, len(order.Lines))
	for i, l := range order.Lines {
		lines[i] = OrderLineResponse{Product: l.Product, Quantity: l.Quantity, Price: l.Price}
	}
	return &OrderResponse{ID: order.ID, Lines: lines, Total: order.Total}
}

// resolveItems looks up each requested product by name in the store.
func resolveItems(store *service.Store, items []OrderItemRequest) ([]domain.OrderItem, error) {
	resolved := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		p, err := store.FindProduct(item.Product)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, domain.OrderItem{Product: p, Quantity: item.Quantity})
	}
	return resolved, nil
}

type failure struct {
	status  int
	code    codes.Code
	message string
}

// classify maps an order error onto transport status codes.
func classify(err error) failure {
	switch {
	case errors.Is(err, service.ErrServiceClosed):
		return failure{http.StatusServiceUnavailable, codes.Unavailable, "service is shutting down"}
	case errors.Is(err, service.ErrDuplicateRequest):
		return failure{http.StatusConflict, codes.AlreadyExists, "duplicate request"}
	case errors.Is(err, service.ErrProductNotFound):
		return failure{http.StatusNotFound, codes.NotFound, err.Error()}
	case errors.Is(err, domain.ErrValidation):
		return failure{http.StatusBadRequest, codes.InvalidArgument, err.Error()}
	case errors.Is(err, domain.ErrInventory):
		return failure{http.StatusGone, codes.FailedPrecondition, err.Error()}
	default:
		return failure{http.StatusInternalServerError, codes.Internal, "internal error"}
	}
}
