// Package models defines client-side data models used by the MyAuthApp CLI.
package models

// User is the signed-in identity. It is also the shape of the session
// snapshot kept in local storage.
type User struct {
	// Name is set by signup only; login knows just the email.
	Name string `json:"name,omitempty"`

	// Email identifies the user. There is no other identifier.
	Email string `json:"email"`
}

// DisplayName returns Name, falling back to Email when Name is empty.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
