package types

import (
	"time"

	"github.com/google/uuid"
)

// Session maps an opaque token to a user for the lifetime of one login.
// Rows are deleted on logout and lazily when found expired.
type Session struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"index;not null" json:"user_id"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	Token     string    `gorm:"uniqueIndex;not null;column:token" json:"-"`
	ExpiresAt time.Time `gorm:"not null;column:expires_at" json:"expires_at"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (Session) TableName() string {
	return "session"
}
