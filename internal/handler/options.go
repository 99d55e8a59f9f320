package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"teashop/internal/service"
)

// GetOptionsHandler lists order customization options. Without a type filter
// the response holds all three groups; with one it holds a single key.
func GetOptionsHandler(catalog Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		typ := r.URL.Query().Get("type")

		options, err := catalog.ListOptions(r.Context(), typ)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrUnknownOptionType):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				slog.Error("options listing failed", "error", err)
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(options); err != nil {
			http.Error(w, "encode error", http.StatusInternalServerError)
		}
	}
}
