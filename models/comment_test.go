package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: "Hello!"},
		{name: "blank", body: "   ", wantErr: true},
		{name: "too short", body: "1234", wantErr: true},
		{name: "at minimum", body: "12345"},
		{name: "at maximum", body: strings.Repeat("a", 150)},
		{name: "too long", body: strings.Repeat("a", 151), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comment := Comment{PostID: 1, Author: "alice", Body: tt.body}
			err := comment.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, err.(ValidationErrors).Has("body"))
		})
	}
}

func TestCommentDeletableBy(t *testing.T) {
	comment := Comment{ID: 3, PostID: 1, Author: "alice"}

	assert.True(t, comment.DeletableBy(&User{ID: 1, Username: "alice"}))
	assert.False(t, comment.DeletableBy(&User{ID: 2, Username: "bob"}))
	assert.False(t, comment.DeletableBy(nil))

	// The check is against the snapshot, not any user id.
	assert.True(t, comment.DeletableBy(&User{ID: 99, Username: "alice"}))
}

func TestCommentLikeableRef(t *testing.T) {
	comment := Comment{ID: 5, PostID: 2}
	kind, id := comment.LikeableRef()
	assert.Equal(t, LikeableComment, kind)
	assert.Equal(t, uint(5), id)
	assert.Equal(t, "/posts/2", comment.Path())
}
