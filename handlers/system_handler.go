package handlers

import "net/http"

// SystemHandler handles system-level endpoints.
type SystemHandler struct{}

func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// Home returns a small API index.
func (h *SystemHandler) Home(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Social Media API",
		"version": "1.0",
		"endpoints": map[string]string{
			"users":     "/api/users",
			"posts":     "/api/posts",
			"comments":  "/api/comments",
			"followers": "/api/followers",
		},
	})
}
