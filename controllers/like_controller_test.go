package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Marmblshko/Simple-blog/models"
)

func TestCreateLikeOnPost(t *testing.T) {
	s := new(MockStore)
	s.On("PostByID", mock.Anything, uint(1)).Return(&models.Post{ID: 1, UserID: 42}, nil)
	s.On("CreateLike", mock.Anything, mock.MatchedBy(func(l *models.Like) bool {
		return l.UserID == 5 && l.LikeableType == models.LikeablePost && l.LikeableID == 1
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Like).ID = 9
	}).Return(nil)

	actor := &models.User{ID: 5, Username: "alice"}
	rr := doJSON(newTestRouter(s, actor), http.MethodPost, "/api/v1/posts/1/likes", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "/posts/1", body["redirect"])
	assert.Equal(t, "Like added!", body["notice"])
	s.AssertExpectations(t)
}

func TestCreateLikeOnComment(t *testing.T) {
	s := new(MockStore)
	s.On("CommentByID", mock.Anything, uint(3)).Return(&models.Comment{ID: 3, PostID: 1, Author: "bob"}, nil)
	s.On("CreateLike", mock.Anything, mock.MatchedBy(func(l *models.Like) bool {
		return l.UserID == 5 && l.LikeableType == models.LikeableComment && l.LikeableID == 3
	})).Return(nil)

	actor := &models.User{ID: 5, Username: "alice"}
	rr := doJSON(newTestRouter(s, actor), http.MethodPost, "/api/v1/comments/3/likes", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "/posts/1", body["redirect"])
	assert.Equal(t, "Like added!", body["notice"])
	s.AssertExpectations(t)
}

func TestCreateLikeUnauthenticated(t *testing.T) {
	s := new(MockStore)

	rr := doJSON(newTestRouter(s, nil), http.MethodPost, "/api/v1/posts/1/likes", nil)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	s.AssertNotCalled(t, "CreateLike", mock.Anything, mock.Anything)
}

func TestCreateLikeOnMissingPost(t *testing.T) {
	s := new(MockStore)
	s.On("PostByID", mock.Anything, uint(8)).Return(nil, gorm.ErrRecordNotFound)

	actor := &models.User{ID: 5, Username: "alice"}
	rr := doJSON(newTestRouter(s, actor), http.MethodPost, "/api/v1/posts/8/likes", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	s.AssertNotCalled(t, "CreateLike", mock.Anything, mock.Anything)
}

func TestResolveLikeablePrefersPostContext(t *testing.T) {
	s := new(MockStore)
	post := &models.Post{ID: 1, UserID: 42}
	s.On("PostByID", mock.Anything, uint(1)).Return(post, nil)

	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	ctx.Params = gin.Params{
		{Key: "post_id", Value: "1"},
		{Key: "comment_id", Value: "3"},
	}

	target, err := NewLikeController(s).resolveLikeable(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Likeable(post), target)
	s.AssertNotCalled(t, "CommentByID", mock.Anything, mock.Anything)
}

func TestDeleteLikeScopedToActorAndTarget(t *testing.T) {
	s := new(MockStore)
	post := &models.Post{ID: 1, UserID: 42}
	like := &models.Like{ID: 9, UserID: 5, LikeableType: models.LikeablePost, LikeableID: 1}
	s.On("PostByID", mock.Anything, uint(1)).Return(post, nil)
	s.On("LikeOfTarget", mock.Anything, uint(5), models.Likeable(post), uint(9)).Return(like, nil)
	s.On("DeleteLike", mock.Anything, like).Return(nil)

	actor := &models.User{ID: 5, Username: "alice"}
	rr := doJSON(newTestRouter(s, actor), http.MethodDelete, "/api/v1/posts/1/likes/9", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "/posts/1", body["redirect"])
	assert.Equal(t, "Like removed!", body["notice"])
	s.AssertExpectations(t)
}

func TestDeleteLikeOfAnotherUserIsNotFound(t *testing.T) {
	// The like id exists but belongs to someone else: the scoped lookup
	// misses and nothing is deleted.
	s := new(MockStore)
	post := &models.Post{ID: 1, UserID: 42}
	s.On("PostByID", mock.Anything, uint(1)).Return(post, nil)
	s.On("LikeOfTarget", mock.Anything, uint(5), models.Likeable(post), uint(9)).Return(nil, gorm.ErrRecordNotFound)

	actor := &models.User{ID: 5, Username: "alice"}
	rr := doJSON(newTestRouter(s, actor), http.MethodDelete, "/api/v1/posts/1/likes/9", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	s.AssertNotCalled(t, "DeleteLike", mock.Anything, mock.Anything)
}
