package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Marmblshko/Simple-blog/models"
	"github.com/Marmblshko/Simple-blog/store"
	"github.com/Marmblshko/Simple-blog/utils"
)

// PostController manages CRUD operations for posts.
type PostController struct {
	store store.Store
}

// NewPostController creates a new PostController instance.
func NewPostController(s store.Store) *PostController {
	return &PostController{store: s}
}

// ListPosts returns all posts, most recently created first.
func (p *PostController) ListPosts(ctx *gin.Context) {
	const cacheKey = "cache:posts:list"
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	posts, err := p.store.ListPosts(ctx)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50020, "failed to list posts")
		return
	}

	payload := gin.H{"items": posts}
	utils.CacheSetJSON(cacheKey, utils.JSONResponse{Code: 0, Message: "success", Data: payload}, time.Hour)
	utils.Success(ctx, payload)
}

// GetPost returns a single post with its comments and like count.
func (p *PostController) GetPost(ctx *gin.Context) {
	postID := paramID(ctx, "post_id")
	if postID == 0 {
		utils.Error(ctx, http.StatusNotFound, 40401, "post not found")
		return
	}

	cacheKey := fmt.Sprintf("cache:post:detail:%d", postID)
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	post, err := p.store.PostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40401, "post not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50021, "failed to load post")
		return
	}

	comments, err := p.store.CommentsOfPost(ctx, post.ID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50022, "failed to load comments")
		return
	}
	post.Comments = comments

	likes, err := p.store.CountLikes(ctx, post)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50023, "failed to count likes")
		return
	}

	payload := gin.H{"post": post, "likes_count": likes}
	utils.CacheSetJSON(cacheKey, utils.JSONResponse{Code: 0, Message: "success", Data: payload}, time.Hour)
	utils.Success(ctx, payload)
}

// CreatePost allows authenticated users to create new posts.
func (p *PostController) CreatePost(ctx *gin.Context) {
	var req struct {
		Title string `json:"title"`
		Text  string `json:"text"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40020, "invalid request payload")
		return
	}

	actor := actorFrom(ctx)
	if actor == nil {
		utils.SignInRequired(ctx, 40110, "unauthorized")
		return
	}

	post := models.Post{
		UserID: actor.ID,
		Title:  utils.Sanitize(strings.TrimSpace(req.Title)),
		Text:   utils.Sanitize(req.Text),
	}
	if err := post.Validate(); err != nil {
		utils.Invalid(ctx, err.(models.ValidationErrors))
		return
	}

	if err := p.store.CreatePost(ctx, &post); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50024, "failed to create post")
		return
	}

	utils.InvalidateByPrefix("cache:posts:list")

	utils.Redirect(ctx, post.Path(), "Post created!", gin.H{"post": post})
}

// UpdatePost allows the owner to update their post. A non-owner attempt is a
// no-op answered with a permission notice.
func (p *PostController) UpdatePost(ctx *gin.Context) {
	var req struct {
		Title *string `json:"title"`
		Text  *string `json:"text"`
	}
	// Both fields are optional; an empty body is a valid no-change request.
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.Error(ctx, http.StatusBadRequest, 40021, "invalid request payload")
		return
	}

	post, ok := p.loadPost(ctx)
	if !ok {
		return
	}

	actor := actorFrom(ctx)
	if !post.EditableBy(actor) {
		utils.Redirect(ctx, postsPath, noticePostForbidden, nil)
		return
	}

	updated := *post
	if req.Title != nil {
		updated.Title = utils.Sanitize(strings.TrimSpace(*req.Title))
	}
	if req.Text != nil {
		updated.Text = utils.Sanitize(*req.Text)
	}
	// Violations leave the stored post untouched; only field errors go back.
	if err := updated.Validate(); err != nil {
		utils.Invalid(ctx, err.(models.ValidationErrors))
		return
	}

	if err := p.store.UpdatePost(ctx, &updated); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50025, "failed to update post")
		return
	}

	utils.InvalidateByPrefix("cache:posts:list")
	utils.InvalidateByPrefix(fmt.Sprintf("cache:post:detail:%d", updated.ID))

	utils.Redirect(ctx, updated.Path(), "Post updated!", gin.H{"post": updated})
}

// DeletePost allows the owner to delete their post together with its comments
// and likes.
func (p *PostController) DeletePost(ctx *gin.Context) {
	post, ok := p.loadPost(ctx)
	if !ok {
		return
	}

	actor := actorFrom(ctx)
	if !post.EditableBy(actor) {
		utils.Redirect(ctx, postsPath, noticePostForbidden, nil)
		return
	}

	if err := p.store.DeletePost(ctx, post); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50026, "failed to delete post")
		return
	}

	utils.InvalidateByPrefix("cache:posts:list")
	utils.InvalidateByPrefix(fmt.Sprintf("cache:post:detail:%d", post.ID))

	utils.Redirect(ctx, postsPath, "Post deleted!", nil)
}

func (p *PostController) loadPost(ctx *gin.Context) (*models.Post, bool) {
	postID := paramID(ctx, "post_id")
	if postID == 0 {
		utils.Error(ctx, http.StatusNotFound, 40401, "post not found")
		return nil, false
	}
	post, err := p.store.PostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40401, "post not found")
			return nil, false
		}
		utils.Error(ctx, http.StatusInternalServerError, 50021, "failed to load post")
		return nil, false
	}
	return post, true
}
