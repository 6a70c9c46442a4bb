package dto

import "api/models"

// CommentDTO is a comment read payload with its author embedded.
type CommentDTO struct {
	models.Comment
	Author *models.User `json:"author"`
}

func NewCommentDTO(comment models.Comment, author *models.User) CommentDTO {
	return CommentDTO{Comment: comment, Author: author}
}
