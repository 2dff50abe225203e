package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered customer.
type User struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"-" bson:"password"` // bcrypt hash, never serialized
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// UserFields is the client-supplied part of a user. Nil fields are absent from the request.
type UserFields struct {
	Name     *string `json:"name" validate:"required,personname"`
	Email    *string `json:"email" validate:"required,emailaddr"`
	Password *string `json:"password" validate:"required,strongpassword"`
}

// Fields returns the stored values of u. The password hash is not a client value
// and is left unset.
func (u *User) Fields() UserFields {
	name, email := u.Name, u.Email
	return UserFields{Name: &name, Email: &email}
}

// Merge overlays the fields present in patch.
func (f UserFields) Merge(patch UserFields) UserFields {
	if patch.Name != nil {
		f.Name = patch.Name
	}
	if patch.Email != nil {
		f.Email = patch.Email
	}
	if patch.Password != nil {
		f.Password = patch.Password
	}
	return f
}
