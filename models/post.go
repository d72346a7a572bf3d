package models

import "time"

// Post is a top-level content item owned by a user.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Title     string    `gorm:"size:30;not null" json:"title"`
	Text      string    `gorm:"size:600;not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	User      User      `json:"author"`
	Comments  []Comment `json:"comments,omitempty"`
}

// Title and text bounds are inclusive rune counts.
const (
	minTitleLen = 3
	maxTitleLen = 30
	minTextLen  = 10
	maxTextLen  = 600
)

// Validate checks title and text against their length bounds.
func (p *Post) Validate() error {
	errs := ValidationErrors{}
	requireLength(errs, "title", p.Title, minTitleLen, maxTitleLen)
	requireLength(errs, "text", p.Text, minTextLen, maxTextLen)
	return errs.OrNil()
}

// EditableBy reports whether u may update or delete this post. Only the
// owner qualifies; a nil actor never does.
func (p *Post) EditableBy(u *User) bool {
	return u != nil && u.ID == p.UserID
}

// LikeableRef identifies this post as a like target.
func (p *Post) LikeableRef() (LikeableType, uint) {
	return LikeablePost, p.ID
}

// Path returns the canonical boundary location of the post, used as the
// redirect target after mutations.
func (p *Post) Path() string {
	return postPath(p.ID)
}
