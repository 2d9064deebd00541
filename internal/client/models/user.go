package models

import (
	"fmt"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/common"
)

// User is the opaque user record returned by the authentication endpoint.
// The console only reads name, username, email and role; every other field
// is carried through untouched.
type User map[string]any

// NewUser synthesizes the minimal record used when the server returns none.
func NewUser(identifier string) User {
	return User{"username": identifier, "name": identifier}
}

// Field returns the string form of key, or "" when the key is missing or null.
func (u User) Field(key string) string {
	v, ok := u[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Display returns Field(key) or the placeholder for absent values.
func (u User) Display(key string) string {
	if s := u.Field(key); s != "" {
		return s
	}
	return common.Placeholder
}

// Name is the label shown in the header: name, then username, then "User".
func (u User) Name() string {
	if s := u.Field("name"); s != "" {
		return s
	}
	if s := u.Field("username"); s != "" {
		return s
	}
	return "User"
}

// Clone returns a shallow copy so callers cannot mutate shared state.
func (u User) Clone() User {
	if u == nil {
		return nil
	}
	c := make(User, len(u))
	for k, v := range u {
		c[k] = v
	}
	return c
}

// UserForm is the payload of the create and update user calls. Username and
// Password are only sent on create.
type UserForm struct {
	Username string `json:"username,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Role     string `json:"role,omitempty"`
	Password string `json:"password,omitempty"`
}
