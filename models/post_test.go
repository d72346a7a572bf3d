package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPost() Post {
	return Post{UserID: 1, Title: "A fine title", Text: "Long enough body text."}
}

func TestPostValidate(t *testing.T) {
	tests := []struct {
		name  string
		merge func(*Post)
		field string
	}{
		{name: "valid", merge: func(p *Post) {}},
		{name: "blank title", merge: func(p *Post) { p.Title = "  " }, field: "title"},
		{name: "title too short", merge: func(p *Post) { p.Title = "ab" }, field: "title"},
		{name: "title at minimum", merge: func(p *Post) { p.Title = "abc" }},
		{name: "title at maximum", merge: func(p *Post) { p.Title = strings.Repeat("a", 30) }},
		{name: "title too long", merge: func(p *Post) { p.Title = strings.Repeat("a", 31) }, field: "title"},
		{name: "blank text", merge: func(p *Post) { p.Text = "" }, field: "text"},
		{name: "text too short", merge: func(p *Post) { p.Text = strings.Repeat("a", 9) }, field: "text"},
		{name: "text at minimum", merge: func(p *Post) { p.Text = strings.Repeat("a", 10) }},
		{name: "text at maximum", merge: func(p *Post) { p.Text = strings.Repeat("a", 600) }},
		{name: "text too long", merge: func(p *Post) { p.Text = strings.Repeat("a", 601) }, field: "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := validPost()
			tt.merge(&post)
			err := post.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			verrs, ok := err.(ValidationErrors)
			require.True(t, ok)
			assert.True(t, verrs.Has(tt.field), "expected error on %q, got %v", tt.field, verrs)
		})
	}
}

func TestPostValidateCountsRunes(t *testing.T) {
	post := validPost()
	post.Title = strings.Repeat("好", 30)
	assert.NoError(t, post.Validate())
}

func TestPostValidateReportsBothFields(t *testing.T) {
	post := Post{Title: "ab", Text: "short"}
	err := post.Validate()
	require.Error(t, err)
	verrs := err.(ValidationErrors)
	assert.True(t, verrs.Has("title"))
	assert.True(t, verrs.Has("text"))
}

func TestPostEditableBy(t *testing.T) {
	post := Post{ID: 7, UserID: 42}

	assert.True(t, post.EditableBy(&User{ID: 42, Username: "owner"}))
	assert.False(t, post.EditableBy(&User{ID: 43, Username: "someone"}))
	assert.False(t, post.EditableBy(nil))
}

func TestPostLikeableRef(t *testing.T) {
	post := Post{ID: 9}
	kind, id := post.LikeableRef()
	assert.Equal(t, LikeablePost, kind)
	assert.Equal(t, uint(9), id)
	assert.Equal(t, "/posts/9", post.Path())
}
