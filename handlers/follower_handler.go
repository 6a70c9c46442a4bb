package handlers

import (
	"encoding/json"
	"net/http"

	"api/monitoring"
	"api/services"
)

// FollowerHandler handles follow-edge endpoints.
type FollowerHandler struct {
	Followers *services.FollowerService
}

func NewFollowerHandler(followers *services.FollowerService) *FollowerHandler {
	return &FollowerHandler{Followers: followers}
}

func (h *FollowerHandler) List(w http.ResponseWriter, r *http.Request) {
	follows, err := h.Followers.GetAll()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, follows)
}

func (h *FollowerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	follow, err := h.Followers.Get(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, follow)
}

func (h *FollowerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.CreateFollowerInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondInvalidJSON(w)
		return
	}
	follow, err := h.Followers.Create(in)
	if err != nil {
		respondError(w, err)
		return
	}
	monitoring.EntitiesCreated.WithLabelValues("follower").Inc()
	respondJSON(w, http.StatusCreated, follow)
}

func (h *FollowerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	var patch services.FollowerPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondInvalidJSON(w)
		return
	}
	follow, err := h.Followers.Update(id, patch)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, follow)
}

func (h *FollowerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	if err := h.Followers.Delete(id); err != nil {
		respondError(w, err)
		return
	}
	monitoring.EntitiesDeleted.WithLabelValues("follower").Inc()
	w.WriteHeader(http.StatusNoContent)
}
