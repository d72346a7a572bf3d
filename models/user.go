package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// User represents a registered account. Passwords are stored as bcrypt hashes only.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:25;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Posts        []Post    `json:"-"`
}

const maxUsernameLen = 25

// BeforeCreate normalizes the email so the uniqueness index is case-insensitive.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return nil
}

// Validate checks registration-time field constraints. Uniqueness is left to
// the store, which owns the indexes.
func (u *User) Validate() error {
	errs := ValidationErrors{}
	if strings.TrimSpace(u.Username) == "" {
		errs.Add("username", "can't be blank")
	} else if len([]rune(u.Username)) > maxUsernameLen {
		errs.Add("username", "is too long (maximum is 25 characters)")
	}
	if strings.TrimSpace(u.Email) == "" {
		errs.Add("email", "can't be blank")
	}
	return errs.OrNil()
}
