package models

import "time"

// Role values carried in sessions and JWT claims.
const (
	RoleUser      = "user"
	RoleTherapist = "therapist"
	RoleAdmin     = "admin"
)

// User represents a platform account: customers, therapists and admins all
// authenticate through the same collection, distinguished by Role.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Role         string    `bson:"role" json:"role"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email,omitempty" json:"email,omitempty"`
	PasswordHash string    `bson:"password_hash,omitempty" json:"-"`
	Phone        string    `bson:"phone" json:"phone"`
	ProfileImage string    `bson:"profile_image,omitempty" json:"profileImage,omitempty"`
	FCMToken     string    `bson:"fcm_token,omitempty" json:"-"`
	Active       bool      `bson:"active" json:"active"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// ProfileUpdate is the mutable subset of a user profile.
type ProfileUpdate struct {
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
	FCMToken     string `json:"fcmToken,omitempty"`
}
