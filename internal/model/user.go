package model

import "time"

// User is a registered shop account, keyed by login
type User struct {
	Login        string
	PasswordHash string // bcrypt hash
	Email        string
	Balance      float64
	CreatedAt    time.Time
}
