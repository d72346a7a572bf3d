package store

import (
	"context"

	"github.com/Marmblshko/Simple-blog/models"
)

// Store is the persistence boundary consumed by the controllers. Record
// misses are reported as gorm.ErrRecordNotFound so callers can errors.Is
// against a single sentinel.
type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	UserByID(ctx context.Context, id uint) (*models.User, error)
	UserByUsername(ctx context.Context, username string) (*models.User, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	// DeleteUser removes the user together with their posts (and those
	// posts' comments and likes) and every like the user placed. Comments
	// authored under the username survive.
	DeleteUser(ctx context.Context, user *models.User) error

	CreatePost(ctx context.Context, post *models.Post) error
	PostByID(ctx context.Context, id uint) (*models.Post, error)
	// ListPosts returns posts most-recently-created first.
	ListPosts(ctx context.Context) ([]models.Post, error)
	UpdatePost(ctx context.Context, post *models.Post) error
	// DeletePost removes the post and cascades its comments, the comments'
	// likes, and the post's own likes in one transaction.
	DeletePost(ctx context.Context, post *models.Post) error

	CreateComment(ctx context.Context, comment *models.Comment) error
	// CommentOfPost loads a comment scoped to the given post; a comment id
	// that exists under a different post is a record miss.
	CommentOfPost(ctx context.Context, postID, commentID uint) (*models.Comment, error)
	CommentByID(ctx context.Context, id uint) (*models.Comment, error)
	CommentsOfPost(ctx context.Context, postID uint) ([]models.Comment, error)
	// DeleteComment removes the comment and its likes in one transaction.
	DeleteComment(ctx context.Context, comment *models.Comment) error

	CreateLike(ctx context.Context, like *models.Like) error
	// LikeOfTarget finds the actor's like against the given target. With
	// likeID != 0 the lookup is further narrowed to that row.
	LikeOfTarget(ctx context.Context, userID uint, target models.Likeable, likeID uint) (*models.Like, error)
	CountLikes(ctx context.Context, target models.Likeable) (int64, error)
	DeleteLike(ctx context.Context, like *models.Like) error
}
