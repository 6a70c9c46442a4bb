package dto

import "api/models"

// FollowerDTO is a follow-edge read payload. FollowerInfo is set when
// listing the followers of a user, FollowingInfo when listing who a user
// follows.
type FollowerDTO struct {
	models.Follower
	FollowerInfo  *models.User `json:"follower_info,omitempty"`
	FollowingInfo *models.User `json:"following_info,omitempty"`
}
