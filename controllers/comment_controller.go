package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Marmblshko/Simple-blog/models"
	"github.com/Marmblshko/Simple-blog/store"
	"github.com/Marmblshko/Simple-blog/utils"
)

// CommentController manages comments attached to posts.
type CommentController struct {
	store store.Store
}

// NewCommentController creates a new CommentController instance.
func NewCommentController(s store.Store) *CommentController {
	return &CommentController{store: s}
}

// CreateComment attaches a comment to an existing post. The author field is a
// snapshot of the actor's username taken here and never updated again.
func (c *CommentController) CreateComment(ctx *gin.Context) {
	var req struct {
		Body string `json:"body"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40030, "invalid request payload")
		return
	}

	actor := actorFrom(ctx)
	if actor == nil {
		utils.SignInRequired(ctx, 40110, "unauthorized")
		return
	}

	postID := paramID(ctx, "post_id")
	if postID == 0 {
		utils.Error(ctx, http.StatusNotFound, 40401, "post not found")
		return
	}
	post, err := c.store.PostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40401, "post not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50030, "failed to load post")
		return
	}

	comment := models.Comment{
		PostID: post.ID,
		Author: actor.Username,
		Body:   utils.Sanitize(req.Body),
	}
	if err := comment.Validate(); err != nil {
		utils.Invalid(ctx, err.(models.ValidationErrors))
		return
	}

	if err := c.store.CreateComment(ctx, &comment); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50031, "failed to create comment")
		return
	}

	utils.InvalidateByPrefix(fmt.Sprintf("cache:post:detail:%d", post.ID))

	utils.Redirect(ctx, post.Path(), "Comment added!", gin.H{"comment": comment})
}

// DeleteComment removes a comment and its likes. The lookup is scoped to the
// post in the path: a comment living under a different post is not found
// here, so a cross-post id can never delete anything. Only the user whose
// username matches the author snapshot may delete.
func (c *CommentController) DeleteComment(ctx *gin.Context) {
	postID := paramID(ctx, "post_id")
	commentID := paramID(ctx, "comment_id")
	if postID == 0 || commentID == 0 {
		utils.Error(ctx, http.StatusNotFound, 40420, "comment not found")
		return
	}

	post, err := c.store.PostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40401, "post not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50030, "failed to load post")
		return
	}

	comment, err := c.store.CommentOfPost(ctx, post.ID, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40420, "comment not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50032, "failed to load comment")
		return
	}

	actor := actorFrom(ctx)
	if !comment.DeletableBy(actor) {
		utils.Redirect(ctx, post.Path(), noticeCommentForbidden, nil)
		return
	}

	if err := c.store.DeleteComment(ctx, comment); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50033, "failed to delete comment")
		return
	}

	utils.InvalidateByPrefix(fmt.Sprintf("cache:post:detail:%d", post.ID))

	utils.Redirect(ctx, post.Path(), "Comment deleted!", nil)
}
