package handler

import (
	"encoding/json"
	"net/http"
)

func StatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]string{"message": "tea shop API is ready"}); err != nil {
			http.Error(w, "encode error", http.StatusInternalServerError)
		}
	}
}
