package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/rl1809/storefront/internal/core/service"
)

type HTTPHandler struct {
	orderService *service.OrderService
	logger       *zap.Logger
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewHTTPHandler(orderService *service.OrderService, logger *zap.Logger) *HTTPHandler {
	return &HTTPHandler{orderService: orderService, logger: logger}
}

// Register mounts the handler's routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.HealthCheck)
	mux.HandleFunc("GET /api/products", h.ListProducts)
	mux.HandleFunc("GET /api/products/total", h.TotalQuantity)
	mux.HandleFunc("POST /api/orders", h.PlaceOrder)
}

func (h *HTTPHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.orderService.Store().AllActiveProducts()
	if err != nil {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Message: err.Error()})
		return
	}

	resp := ListProductsResponse{Products: make([]ProductResponse, len(products))}
	for i, p := range products {
		resp.Products[i] = toProductResponse(p)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *HTTPHandler) TotalQuantity(w http.ResponseWriter, r *http.Request) {
	total, err := h.orderService.Store().TotalQuantity()
	if err != nil {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, TotalQuantityResponse{Total: total})
}

func (h *HTTPHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	items, err := resolveItems(h.orderService.Store(), req.Items)
	if err != nil {
		h.fail(w, err)
		return
	}

	order, err := h.orderService.PlaceOrder(r.Context(), req.RequestID, items)
	if err != nil {
		h.fail(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toOrderResponse(order))
}

func (h *HTTPHandler) fail(w http.ResponseWriter, err error) {
	f := classify(err)
	if f.status == http.StatusInternalServerError {
		h.logger.Error("place order failed", zap.Error(err))
	}
	writeJSON(w, f.status, ErrorResponse{Message: f.message})
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
