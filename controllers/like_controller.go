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

// LikeController manages likes against posts and comments.
type LikeController struct {
	store store.Store
}

// NewLikeController creates a new LikeController instance.
func NewLikeController(s store.Store) *LikeController {
	return &LikeController{store: s}
}

var errNoLikeable = errors.New("no likeable in request context")

// resolveLikeable loads the like target from the route context. A post
// identifier wins over a comment identifier when both are present.
func (l *LikeController) resolveLikeable(ctx *gin.Context) (models.Likeable, error) {
	if postID := paramID(ctx, "post_id"); postID != 0 {
		return l.store.PostByID(ctx, postID)
	}
	if commentID := paramID(ctx, "comment_id"); commentID != 0 {
		return l.store.CommentByID(ctx, commentID)
	}
	return nil, errNoLikeable
}

// CreateLike records that the actor likes the resolved target. Duplicate
// likes by the same user against the same target are allowed.
func (l *LikeController) CreateLike(ctx *gin.Context) {
	actor := actorFrom(ctx)
	if actor == nil {
		utils.SignInRequired(ctx, 40110, "unauthorized")
		return
	}

	target, err := l.resolveLikeable(ctx)
	if err != nil {
		l.likeableError(ctx, err)
		return
	}

	like := models.NewLike(actor, target)
	if err := like.Validate(); err != nil {
		utils.Redirect(ctx, target.Path(), "Failed to add like", nil)
		return
	}

	if err := l.store.CreateLike(ctx, like); err != nil {
		utils.Redirect(ctx, target.Path(), "Failed to add like", nil)
		return
	}

	l.invalidateTarget(target)

	utils.Redirect(ctx, target.Path(), "Like added!", gin.H{"like": like})
}

// DeleteLike removes the actor's like against the resolved target. The lookup
// is scoped to likes that belong to the actor and match the target, so an
// unrelated like id can never be deleted; no match is NotFound.
func (l *LikeController) DeleteLike(ctx *gin.Context) {
	actor := actorFrom(ctx)
	if actor == nil {
		utils.SignInRequired(ctx, 40110, "unauthorized")
		return
	}

	target, err := l.resolveLikeable(ctx)
	if err != nil {
		l.likeableError(ctx, err)
		return
	}

	like, err := l.store.LikeOfTarget(ctx, actor.ID, target, paramID(ctx, "like_id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40430, "like not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50040, "failed to load like")
		return
	}

	if err := l.store.DeleteLike(ctx, like); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50041, "failed to delete like")
		return
	}

	l.invalidateTarget(target)

	utils.Redirect(ctx, target.Path(), "Like removed!", nil)
}

func (l *LikeController) likeableError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, errNoLikeable):
		utils.Error(ctx, http.StatusBadRequest, 40040, "a post or comment reference is required")
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.Error(ctx, http.StatusNotFound, 40440, "likeable not found")
	default:
		utils.Error(ctx, http.StatusInternalServerError, 50042, "failed to resolve likeable")
	}
}

func (l *LikeController) invalidateTarget(target models.Likeable) {
	kind, id := target.LikeableRef()
	switch kind {
	case models.LikeablePost:
		utils.InvalidateByPrefix(fmt.Sprintf("cache:post:detail:%d", id))
	case models.LikeableComment:
		if c, ok := target.(*models.Comment); ok {
			utils.InvalidateByPrefix(fmt.Sprintf("cache:post:detail:%d", c.PostID))
		}
	}
}
