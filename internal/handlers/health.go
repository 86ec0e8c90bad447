package handlers

import "net/http"

// Health reports liveness for the gateway's health probe
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "payment-service",
	})
}
