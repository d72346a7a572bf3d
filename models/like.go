package models

import (
	"fmt"
	"time"
)

// LikeableType discriminates the polymorphic target of a like.
type LikeableType string

const (
	LikeablePost    LikeableType = "Post"
	LikeableComment LikeableType = "Comment"
)

// Valid reports whether t is one of the known target kinds.
func (t LikeableType) Valid() bool {
	switch t {
	case LikeablePost, LikeableComment:
		return true
	}
	return false
}

// Likeable is anything a like can point at. The pair returned by LikeableRef
// is the discriminant stored on the Like row.
type Likeable interface {
	LikeableRef() (LikeableType, uint)
	Path() string
}

// Like records that a user likes a post or a comment. There is no uniqueness
// constraint on (user_id, likeable_type, likeable_id); a user may hold
// several likes against the same target.
type Like struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	UserID       uint         `gorm:"index;not null" json:"user_id"`
	LikeableType LikeableType `gorm:"size:16;index:idx_likes_likeable;not null" json:"likeable_type"`
	LikeableID   uint         `gorm:"index:idx_likes_likeable;not null" json:"likeable_id"`
	CreatedAt    time.Time    `json:"created_at"`
}

// NewLike builds a like for the given actor and target.
func NewLike(actor *User, target Likeable) *Like {
	l := &Like{}
	if actor != nil {
		l.UserID = actor.ID
	}
	if target != nil {
		l.LikeableType, l.LikeableID = target.LikeableRef()
	}
	return l
}

// Validate requires both a present user and a present likeable.
func (l *Like) Validate() error {
	errs := ValidationErrors{}
	if l.UserID == 0 {
		errs.Add("user", "must exist")
	}
	if l.LikeableID == 0 || !l.LikeableType.Valid() {
		errs.Add("likeable", "must exist")
	}
	return errs.OrNil()
}

func postPath(id uint) string {
	return fmt.Sprintf("/posts/%d", id)
}
