package models

// Credentials are the two login form fields. Identifier is an email or a
// phone number and goes on the wire as "username".
type Credentials struct {
	Identifier string
	Secret     string
}

// LoginResult is what a successful login yields.
type LoginResult struct {
	Token string
	User  User
}
