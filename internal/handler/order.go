package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"teashop/internal/model"
	"teashop/internal/service"
)

// Orders is the slice of the order service the order handlers need.
type Orders interface {
	Submit(ctx context.Context, req *model.OrderRequest) (*model.OrderRecord, error)
	List(ctx context.Context) ([]model.OrderRecord, error)
}

func CreateOrderHandler(orders Orders) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req model.OrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if req.DrinkName == "" {
			http.Error(w, "drink_name is required", http.StatusBadRequest)
			return
		}

		receipt, err := orders.Submit(r.Context(), &req)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrDrinkNotFound):
				http.Error(w, "no such drink", http.StatusNotFound)
			case errors.Is(err, service.ErrInvalidSize), errors.Is(err, service.ErrSizeNotOffered):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, service.ErrOrderRejected):
				// Raw store errors stay in the log.
				slog.Error("order insert rejected", "drink", req.DrinkName, "error", err)
				http.Error(w, "order could not be stored", http.StatusBadRequest)
			default:
				slog.Error("order submit failed", "drink", req.DrinkName, "error", err)
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(receipt); err != nil {
			slog.Error("receipt encode failed", "error", err)
		}
	}
}

func ListOrdersHandler(orders Orders) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		history, err := orders.List(r.Context())
		if err != nil {
			slog.Error("order history failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(history); err != nil {
			http.Error(w, "encode error", http.StatusInternalServerError)
		}
	}
}
