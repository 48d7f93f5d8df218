package handlers

import "net/http"

const serviceName = "FitGenius API"

// Root is the API hello route.
func (a *API) Root(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, map[string]interface{}{
		"message": serviceName + " is running",
	})
}

// Health reports service health for the /api prefix.
func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": serviceName,
	})
}
