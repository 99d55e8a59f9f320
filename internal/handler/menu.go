package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"teashop/internal/model"
	"teashop/internal/service"
)

// Catalog is the slice of the catalog service the menu and options handlers
// need; the narrow interface keeps them testable with fakes.
type Catalog interface {
	ListMenu(ctx context.Context, category string) (model.Menu, error)
	ListOptions(ctx context.Context, typ string) (map[string][]string, error)
	AddMenuItem(ctx context.Context, category, drinkName string, priceM, priceL int) (int64, error)
}

func GetMenuHandler(catalog Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := r.URL.Query().Get("category")

		menu, err := catalog.ListMenu(r.Context(), category)
		if err != nil {
			slog.Error("menu listing failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(menu); err != nil {
			http.Error(w, "encode error", http.StatusInternalServerError)
		}
	}
}

func AddMenuItemHandler(catalog Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		category := q.Get("category")
		drinkName := q.Get("drink_name")

		priceM, err := strconv.Atoi(q.Get("price_m"))
		if err != nil {
			http.Error(w, "price_m must be an integer", http.StatusBadRequest)
			return
		}
		priceL, err := strconv.Atoi(q.Get("price_l"))
		if err != nil {
			http.Error(w, "price_l must be an integer", http.StatusBadRequest)
			return
		}

		_, err = catalog.AddMenuItem(r.Context(), category, drinkName, priceM, priceL)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidMenuItem):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				slog.Error("menu insert failed", "drink", drinkName, "error", err)
				http.Error(w, "could not add menu item", http.StatusBadRequest)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]string{
			"message": fmt.Sprintf("added %s", drinkName),
		}); err != nil {
			http.Error(w, "encode error", http.StatusInternalServerError)
		}
	}
}
