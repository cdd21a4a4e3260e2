package models

import "time"

type RefreshToken struct {
	Token     string
	UserID    int64
	Expires   time.Time
	CreatedAt time.Time
}
