package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account in the users collection
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FirstName string             `bson:"first_name" json:"firstName"`
	LastName  string             `bson:"last_name,omitempty" json:"lastName,omitempty"`
	EmailID   string             `bson:"email_id" json:"emailId"`
	Password  string             `bson:"password" json:"-"`
	Age       int                `bson:"age,omitempty" json:"age,omitempty"`
	Gender    string             `bson:"gender,omitempty" json:"gender,omitempty"`
	Skills    []string           `bson:"skills,omitempty" json:"skills,omitempty"`
	Bio       string             `bson:"bio,omitempty" json:"bio,omitempty"`
	PhotoURL  string             `bson:"photo_url,omitempty" json:"photoURL,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// PublicProfile is the subset of user fields safe to expose to other
// users. Credentials and email never leave the server through it.
type PublicProfile struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	FirstName string             `bson:"first_name" json:"firstName"`
	LastName  string             `bson:"last_name,omitempty" json:"lastName,omitempty"`
	PhotoURL  string             `bson:"photo_url,omitempty" json:"photoURL,omitempty"`
	Bio       string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Skills    []string           `bson:"skills,omitempty" json:"skills,omitempty"`
}

// PublicProfile projects the safe fields out of a full user record
func (u *User) PublicProfile() PublicProfile {
	return PublicProfile{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		PhotoURL:  u.PhotoURL,
		Bio:       u.Bio,
		Skills:    u.Skills,
	}
}

// RegisterRequest represents a registration payload
type RegisterRequest struct {
	FirstName string   `json:"firstName" validate:"required,min=2,max=30"`
	LastName  string   `json:"lastName" validate:"omitempty,max=30"`
	EmailID   string   `json:"emailId" validate:"required,email"`
	Password  string   `json:"password" validate:"required,min=6,max=30"`
	Age       int      `json:"age" validate:"omitempty,gte=18,lte=150"`
	Gender    string   `json:"gender" validate:"omitempty,oneof=male female others 'prefer not to say'"`
	Skills    []string `json:"skills" validate:"omitempty,max=10,dive,max=30"`
	Bio       string   `json:"bio" validate:"omitempty,max=200"`
	PhotoURL  string   `json:"photoURL" validate:"omitempty,url,startswith=http"`
}

// LoginRequest represents a login payload
type LoginRequest struct {
	EmailID  string `json:"emailId" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest represents a profile update payload. Only these
// fields may be changed; email and password have dedicated flows.
type UpdateProfileRequest struct {
	FirstName string   `json:"firstName" validate:"omitempty,min=2,max=30"`
	LastName  string   `json:"lastName" validate:"omitempty,max=30"`
	Age       int      `json:"age" validate:"omitempty,gte=18,lte=150"`
	Gender    string   `json:"gender" validate:"omitempty,oneof=male female others 'prefer not to say'"`
	Skills    []string `json:"skills" validate:"omitempty,max=10,dive,max=30"`
	Bio       string   `json:"bio" validate:"omitempty,max=200"`
	PhotoURL  string   `json:"photoURL" validate:"omitempty,url,startswith=http"`
}

// ChangePasswordRequest represents a password change payload
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,max=30"`
}

// FeedQuery carries the discovery feed pagination and filter parameters
type FeedQuery struct {
	Page   int
	Limit  int
	Skills []string
	Gender string
}

// FeedPage is one page of the discovery feed with pagination metadata
type FeedPage struct {
	Users       []PublicProfile `json:"data"`
	Count       int             `json:"count"`
	Total       int64           `json:"total"`
	CurrentPage int             `json:"currentPage"`
	TotalPages  int64           `json:"totalPages"`
}
