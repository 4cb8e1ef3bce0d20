// Package entities contains core business entities.
package entities

// User is a registered account. PasswordHash holds a bcrypt hash.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
}

// Client is another user sharing at least one project with the viewer.
type Client struct {
	ID       int64
	Username string
}
