package services

import (
	"sync"

	"api/repositories"
)

// Services bundles the per-entity services over one repository set.
//
// All services share a single mutation mutex: every check-then-write
// sequence (email uniqueness, follow-pair uniqueness, foreign-key
// existence) runs under it, so two racing duplicate creates cannot both
// pass their checks. Reads never take the lock.
type Services struct {
	Users     *UserService
	Posts     *PostService
	Comments  *CommentService
	Followers *FollowerService
}

// New wires the services over the given repositories with the chosen
// delete policy.
func New(
	users repositories.UserRepository,
	posts repositories.PostRepository,
	comments repositories.CommentRepository,
	followers repositories.FollowerRepository,
	policy DeletePolicy,
) *Services {
	mu := &sync.Mutex{}
	return &Services{
		Users: &UserService{
			users:     users,
			posts:     posts,
			comments:  comments,
			followers: followers,
			mu:        mu,
			policy:    policy,
		},
		Posts: &PostService{
			posts:    posts,
			users:    users,
			comments: comments,
			mu:       mu,
			policy:   policy,
		},
		Comments: &CommentService{
			comments: comments,
			users:    users,
			posts:    posts,
			mu:       mu,
		},
		Followers: &FollowerService{
			followers: followers,
			users:     users,
			mu:        mu,
		},
	}
}
