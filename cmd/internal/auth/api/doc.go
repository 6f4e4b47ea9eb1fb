// Package authapi exposes user registration, login, logout and profile
// endpoints, plus the RequireAuth middleware that protected routes across the
// API hang off.
//
// Credentials travel in two headers: "username-key" carries the claimed owner,
// "auth-token-key" the opaque credential. All verification failures collapse
// into one uniform 401 response.
package authapi
