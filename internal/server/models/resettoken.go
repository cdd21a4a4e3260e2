package models

import "time"

// PasswordResetToken is a one-shot token issued by the password-reset
// request endpoint and consumed by the confirm endpoint.
type PasswordResetToken struct {
	Token     string
	UserID    int64
	Expires   time.Time
	CreatedAt time.Time
}
