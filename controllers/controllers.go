package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Marmblshko/Simple-blog/middleware"
	"github.com/Marmblshko/Simple-blog/models"
)

// Redirect targets and notices shared across handlers.
const (
	postsPath = "/posts"

	noticePostForbidden    = "You do not have permission to mod this post."
	noticeCommentForbidden = "You can`t delete this comment."
)

// actorFrom rebuilds the authenticated actor from the JWT claims attached by
// the auth middleware. Returns nil when the request is unauthenticated, which
// the policy methods treat as never-authorized.
func actorFrom(ctx *gin.Context) *models.User {
	idVal, ok := ctx.Get(middleware.ContextUserIDKey)
	if !ok {
		return nil
	}
	id, ok := idVal.(uint)
	if !ok || id == 0 {
		return nil
	}
	username, _ := ctx.Get(middleware.ContextUsernameKey)
	name, _ := username.(string)
	return &models.User{ID: id, Username: name}
}

// paramID parses a numeric path parameter; zero means absent or malformed.
func paramID(ctx *gin.Context, name string) uint {
	raw := ctx.Param(name)
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0
	}
	return uint(id)
}
