package model

import "errors"

// Common errors used across the application
var (
	// Brawler errors
	ErrBrawlerNotFound = errors.New("brawler not found")
	ErrUsernameTaken   = errors.New("username already exists")

	// Mission errors.
	// ErrMissionNotFound covers both "no such mission" and "not the chief":
	// callers must not be able to tell a mission they don't own exists.
	ErrMissionNotFound      = errors.New("mission not found")
	ErrInvalidMissionStatus = errors.New("invalid mission status")

	// Crew errors
	ErrAlreadyCrewMember = errors.New("already part of this mission")
	ErrNotCrewMember     = errors.New("not part of this mission")
)
