package handlers

import (
	"encoding/json"
	"net/http"

	"api/dto"
	"api/models"
	"api/monitoring"
	"api/services"
)

// PostHandler handles post endpoints and the comments-of-post read.
type PostHandler struct {
	Posts *services.PostService
	Users *services.UserService
}

func NewPostHandler(posts *services.PostService, users *services.UserService) *PostHandler {
	return &PostHandler{Posts: posts, Users: users}
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Posts.GetAll()
	if err != nil {
		respondError(w, err)
		return
	}
	response := make([]dto.PostDTO, len(posts))
	for i, post := range posts {
		response[i] = dto.NewPostDTO(post, h.lookupUser(post.UserID))
	}
	respondJSON(w, http.StatusOK, response)
}

func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	post, err := h.Posts.Get(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewPostDTO(*post, h.lookupUser(post.UserID)))
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.CreatePostInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondInvalidJSON(w)
		return
	}
	post, err := h.Posts.Create(in)
	if err != nil {
		respondError(w, err)
		return
	}
	monitoring.EntitiesCreated.WithLabelValues("post").Inc()
	respondJSON(w, http.StatusCreated, post)
}

func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	var patch services.PostPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondInvalidJSON(w)
		return
	}
	post, err := h.Posts.Update(id, patch)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, post)
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	if err := h.Posts.Delete(id); err != nil {
		respondError(w, err)
		return
	}
	monitoring.EntitiesDeleted.WithLabelValues("post").Inc()
	w.WriteHeader(http.StatusNoContent)
}

// GetComments lists the comments on a post in insertion order.
func (h *PostHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	comments, err := h.Posts.CommentsOf(id)
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

func (h *PostHandler) lookupUser(id uint) *models.User {
	user, err := h.Users.Get(id)
	if err != nil {
		return nil
	}
	return user
}
