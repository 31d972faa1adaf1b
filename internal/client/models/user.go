// Package models defines the records the MoodKeeper CLI persists and exports.
package models

// User is a registered local account. The password is never stored, only
// its salted digest.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	Salt         string `json:"salt"`
	PasswordHash string `json:"passwordHash"`

	// CreatedAt is unix milliseconds.
	CreatedAt int64 `json:"createdAt"`
}

// Session points at the signed-in user.
type Session struct {
	UserID    string `json:"userId"`
	CreatedAt int64  `json:"createdAt"`
}
