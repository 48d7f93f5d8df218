package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// storeTimeout bounds every document-store operation issued by a handler.
const storeTimeout = 5 * time.Second

// writeSuccess writes the success envelope: {"success": true, ...payload}.
func writeSuccess(w http.ResponseWriter, status int, payload map[string]interface{}) {
	body := map[string]interface{}{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError writes the failure shape: a non-2xx status with {"detail": msg}.
func writeError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}

// storeContext derives the bounded context used for store operations.
func storeContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), storeTimeout)
}
