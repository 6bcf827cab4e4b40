package store

import (
	"context"

	"akademix/pkg/domain"
)

// Store is the full content store surface consumed by the app layer.
type Store interface {
	Session
	Feed
	Directory
	CommentLedger
	UserPosts
}

// Session tracks the single local user and its login flag.
type Session interface {
	CurrentUser() (domain.User, bool)
	IsLoggedIn() bool
	Login(ctx context.Context, email, password string) bool
	LoginAsync(email, password string) <-chan bool
	Logout()
}

// Feed holds the shared posts. Toggles report whether a post matched; an
// unknown id is a no-op, not an error.
type Feed interface {
	Posts() []domain.Post
	Post(id string) (domain.Post, bool)
	ToggleLike(postID string) bool
	ToggleShare(postID string) bool
}

// Directory holds the discoverable academics.
type Directory interface {
	Academics() []domain.Academic
	Academic(id string) (domain.Academic, bool)
	ToggleFollow(academicID string) bool
	FollowingCount() int
	SearchAcademics(query string) []domain.Academic
}

// CommentLedger is append-only.
type CommentLedger interface {
	Comments(postID string) []domain.Comment
	AddComment(postID, content string) domain.Comment
}

// UserPosts holds posts published by the session user, newest first.
type UserPosts interface {
	UserPosts() []domain.Post
	AddUserPost(p domain.NewPost) domain.Post
}
