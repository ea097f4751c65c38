package model

import "time"

// BrawlerID uniquely identifies a brawler across the system
type BrawlerID string

// Brawler represents a registered principal who can own and join missions
type Brawler struct {
	ID           BrawlerID
	Username     string // login username (immutable, unique)
	DisplayName  string
	PasswordHash string // bcrypt hash, never the plaintext
	AvatarURL    string // optional reference, empty if never uploaded
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
