package handler

import "net/http"

// HandleHealth responds with a 200 OK and a JSON body indicating the server
// is healthy.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
