package dto

import "api/models"

// PostDTO is a post read payload with its author embedded.
// Author is null when the owner no longer exists (orphan delete policy).
type PostDTO struct {
	models.Post
	Author *models.User `json:"author"`
}

func NewPostDTO(post models.Post, author *models.User) PostDTO {
	return PostDTO{Post: post, Author: author}
}
