package models

import "time"

// Comment is a reply attached to exactly one post. Author is a username
// snapshot taken at creation time, not a foreign key: deleting the named user
// does not delete the comment, and the snapshot never changes afterwards.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"index;not null" json:"post_id"`
	Author    string    `gorm:"size:25;not null" json:"author"`
	Body      string    `gorm:"size:150;not null" json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	minBodyLen = 5
	maxBodyLen = 150
)

// Validate checks the body against its length bounds.
func (c *Comment) Validate() error {
	errs := ValidationErrors{}
	requireLength(errs, "body", c.Body, minBodyLen, maxBodyLen)
	return errs.OrNil()
}

// DeletableBy reports whether u may delete this comment. The check is
// username equality against the snapshot, so usernames must never be reused.
func (c *Comment) DeletableBy(u *User) bool {
	return u != nil && u.Username == c.Author
}

// LikeableRef identifies this comment as a like target.
func (c *Comment) LikeableRef() (LikeableType, uint) {
	return LikeableComment, c.ID
}

// Path returns the boundary location a comment mutation redirects to; the
// parent post is the page the comment lives on.
func (c *Comment) Path() string {
	return postPath(c.PostID)
}
