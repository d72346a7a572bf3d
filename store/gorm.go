package store

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/Marmblshko/Simple-blog/models"
)

// gormStore is the MySQL-backed implementation of Store.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an initialized gorm connection.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) CreateUser(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *gormStore) UserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *gormStore) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *gormStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	email = strings.ToLower(strings.TrimSpace(email))
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *gormStore) DeleteUser(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var postIDs []uint
		if err := tx.Model(&models.Post{}).Where("user_id = ?", user.ID).Pluck("id", &postIDs).Error; err != nil {
			return err
		}
		for _, id := range postIDs {
			if err := deletePostCascade(tx, id); err != nil {
				return err
			}
		}
		// Likes the user placed anywhere, regardless of target.
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(user).Error
	})
}

func (s *gormStore) CreatePost(ctx context.Context, post *models.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

func (s *gormStore) PostByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := s.db.WithContext(ctx).Preload("User").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *gormStore) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	// id breaks ties between posts created within the same second.
	if err := s.db.WithContext(ctx).Preload("User").Order("created_at DESC, id DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *gormStore) UpdatePost(ctx context.Context, post *models.Post) error {
	return s.db.WithContext(ctx).Save(post).Error
}

func (s *gormStore) DeletePost(ctx context.Context, post *models.Post) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deletePostCascade(tx, post.ID)
	})
}

// deletePostCascade removes a post with its comments, the comments' likes,
// and the post's own likes. Must run inside a transaction.
func deletePostCascade(tx *gorm.DB, postID uint) error {
	var commentIDs []uint
	if err := tx.Model(&models.Comment{}).Where("post_id = ?", postID).Pluck("id", &commentIDs).Error; err != nil {
		return err
	}
	if len(commentIDs) > 0 {
		if err := tx.Where("likeable_type = ? AND likeable_id IN ?", models.LikeableComment, commentIDs).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
	}
	if err := tx.Where("likeable_type = ? AND likeable_id = ?", models.LikeablePost, postID).Delete(&models.Like{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Post{}, postID).Error
}

func (s *gormStore) CreateComment(ctx context.Context, comment *models.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s *gormStore) CommentOfPost(ctx context.Context, postID, commentID uint) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.WithContext(ctx).Where("post_id = ?", postID).First(&comment, commentID).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *gormStore) CommentByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *gormStore) CommentsOfPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := s.db.WithContext(ctx).Where("post_id = ?", postID).Order("created_at DESC, id DESC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *gormStore) DeleteComment(ctx context.Context, comment *models.Comment) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("likeable_type = ? AND likeable_id = ?", models.LikeableComment, comment.ID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(comment).Error
	})
}

func (s *gormStore) CreateLike(ctx context.Context, like *models.Like) error {
	return s.db.WithContext(ctx).Create(like).Error
}

func (s *gormStore) LikeOfTarget(ctx context.Context, userID uint, target models.Likeable, likeID uint) (*models.Like, error) {
	kind, id := target.LikeableRef()
	q := s.db.WithContext(ctx).Where("user_id = ? AND likeable_type = ? AND likeable_id = ?", userID, kind, id)
	if likeID != 0 {
		q = q.Where("id = ?", likeID)
	}
	var like models.Like
	if err := q.First(&like).Error; err != nil {
		return nil, err
	}
	return &like, nil
}

func (s *gormStore) CountLikes(ctx context.Context, target models.Likeable) (int64, error) {
	kind, id := target.LikeableRef()
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Like{}).
		Where("likeable_type = ? AND likeable_id = ?", kind, id).Count(&count).Error
	return count, err
}

func (s *gormStore) DeleteLike(ctx context.Context, like *models.Like) error {
	return s.db.WithContext(ctx).Delete(like).Error
}
