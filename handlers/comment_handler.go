package handlers

import (
	"encoding/json"
	"net/http"

	"api/dto"
	"api/models"
	"api/monitoring"
	"api/services"
)

// CommentHandler handles comment endpoints.
type CommentHandler struct {
	Comments *services.CommentService
	Users    *services.UserService
}

func NewCommentHandler(comments *services.CommentService, users *services.UserService) *CommentHandler {
	return &CommentHandler{Comments: comments, Users: users}
}

func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	comments, err := h.Comments.GetAll()
	if err != nil {
		respondError(w, err)
		return
	}
	response := make([]dto.CommentDTO, len(comments))
	for i, comment := range comments {
		response[i] = dto.NewCommentDTO(comment, h.lookupUser(comment.UserID))
	}
	respondJSON(w, http.StatusOK, response)
}

func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	comment, err := h.Comments.Get(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewCommentDTO(*comment, h.lookupUser(comment.UserID)))
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.CreateCommentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondInvalidJSON(w)
		return
	}
	comment, err := h.Comments.Create(in)
	if err != nil {
		respondError(w, err)
		return
	}
	monitoring.EntitiesCreated.WithLabelValues("comment").Inc()
	respondJSON(w, http.StatusCreated, comment)
}

func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	var patch services.CommentPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondInvalidJSON(w)
		return
	}
	comment, err := h.Comments.Update(id, patch)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, comment)
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	if err := h.Comments.Delete(id); err != nil {
		respondError(w, err)
		return
	}
	monitoring.EntitiesDeleted.WithLabelValues("comment").Inc()
	w.WriteHeader(http.StatusNoContent)
}

func (h *CommentHandler) lookupUser(id uint) *models.User {
	user, err := h.Users.Get(id)
	if err != nil {
		return nil
	}
	return user
}
