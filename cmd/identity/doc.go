// Package identity holds the marketplace user principal: the GORM model,
// its persistence boundary, username/phone canonicalization, and the
// password hashing facade used by registration and login.
package identity
