package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultAvatar is assigned to users registered without an avatar URL.
const DefaultAvatar = "https://via.placeholder.com/150"

// User represents a registered user in the system
type User struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"` // Never expose password hash in JSON
	Avatar    string    `json:"avatar"`

	// Relationships
	Recipes   []Recipe   `gorm:"foreignKey:UserID" json:"recipes,omitempty"`
	Favorites []Favorite `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Ratings   []Rating   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.Avatar == "" {
		u.Avatar = DefaultAvatar
	}
	return nil
}

// PublicUser is the user shape embedded in API responses
type PublicUser struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Avatar string `json:"avatar"`
}

// Public strips credential fields for client-facing payloads
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Avatar: u.Avatar,
	}
}
