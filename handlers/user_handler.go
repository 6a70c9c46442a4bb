package handlers

import (
	"encoding/json"
	"net/http"

	"api/dto"
	"api/models"
	"api/monitoring"
	"api/services"
)

// UserHandler handles user endpoints and the follower relationship reads.
type UserHandler struct {
	Users     *services.UserService
	Followers *services.FollowerService
}

func NewUserHandler(users *services.UserService, followers *services.FollowerService) *UserHandler {
	return &UserHandler{Users: users, Followers: followers}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.GetAll()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	user, err := h.Users.Get(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.CreateUserInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondInvalidJSON(w)
		return
	}
	user, err := h.Users.Create(in)
	if err != nil {
		respondError(w, err)
		return
	}
	monitoring.EntitiesCreated.WithLabelValues("user").Inc()
	respondJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	var patch services.UserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondInvalidJSON(w)
		return
	}
	user, err := h.Users.Update(id, patch)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	if err := h.Users.Delete(id); err != nil {
		respondError(w, err)
		return
	}
	monitoring.EntitiesDeleted.WithLabelValues("user").Inc()
	w.WriteHeader(http.StatusNoContent)
}

// GetFollowers lists the follow edges pointing at a user, each with the
// follower's profile attached.
func (h *UserHandler) GetFollowers(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	follows, err := h.Followers.FollowersOf(id)
	if err != nil {
		respondError(w, err)
		return
	}
	response := make([]dto.FollowerDTO, len(follows))
	for i, f := range follows {
		response[i] = dto.FollowerDTO{Follower: f, FollowerInfo: h.lookupUser(f.UserFromID)}
	}
	respondJSON(w, http.StatusOK, response)
}

// GetFollowing lists the follow edges leaving a user, each with the
// followed user's profile attached.
func (h *UserHandler) GetFollowing(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	follows, err := h.Followers.FollowingOf(id)
	if err != nil {
		respondError(w, err)
		return
	}
	response := make([]dto.FollowerDTO, len(follows))
	for i, f := range follows {
		response[i] = dto.FollowerDTO{Follower: f, FollowingInfo: h.lookupUser(f.UserToID)}
	}
	respondJSON(w, http.StatusOK, response)
}

func (h *UserHandler) lookupUser(id uint) *models.User {
	user, err := h.Users.Get(id)
	if err != nil {
		return nil
	}
	return user
}
