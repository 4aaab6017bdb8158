package models

// LoginResponse carries the issued bearer token together with the public view
// of the authenticated user. The same token is also placed in the
// Authorization response header.
type LoginResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

// RegisterResponse is returned after successful registration.
type RegisterResponse struct {
	Msg  string     `json:"msg"`
	User PublicUser `json:"user"`
}

// ApplyResponse acknowledges a successful job application.
type ApplyResponse struct {
	Msg string `json:"msg"`
}

// CategoriesResponse lists the fixed job category enumeration.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}
