package model

import "time"

// MissionID uniquely identifies a mission
type MissionID string

// MissionStatus is the closed set of lifecycle states for a mission
type MissionStatus string

const (
	MissionPending    MissionStatus = "pending"
	MissionInProgress MissionStatus = "in_progress"
	MissionCompleted  MissionStatus = "completed"
	MissionFailed     MissionStatus = "failed"
)

// ParseMissionStatus converts a raw string into a MissionStatus
func ParseMissionStatus(raw string) (MissionStatus, error) {
	switch MissionStatus(raw) {
	case MissionPending, MissionInProgress, MissionCompleted, MissionFailed:
		return MissionStatus(raw), nil
	default:
		return "", ErrInvalidMissionStatus
	}
}

// Terminal reports whether no further transition is possible from s
func (s MissionStatus) Terminal() bool {
	return s == MissionCompleted || s == MissionFailed
}

// CanTransitionTo reports whether the lifecycle admits moving from s to target.
// Pending is the initial state and never a transition target.
func (s MissionStatus) CanTransitionTo(target MissionStatus) bool {
	switch target {
	case MissionInProgress:
		return s == MissionPending
	case MissionCompleted, MissionFailed:
		return s == MissionInProgress
	default:
		return false
	}
}

// Mission represents a coordinated operation owned by a chief
type Mission struct {
	ID          MissionID
	ChiefID     BrawlerID // the only brawler allowed to change Status
	Name        string
	Description string
	Status      MissionStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // soft-delete marker; set means hidden everywhere
}

// Deleted reports whether the mission is soft-deleted
func (m *Mission) Deleted() bool {
	return m.DeletedAt != nil
}

// CrewMembership links a non-owning brawler to a mission
type CrewMembership struct {
	MissionID MissionID
	BrawlerID BrawlerID
	JoinedAt  time.Time
}

// MissionFilter narrows mission listings
type MissionFilter struct {
	Status *MissionStatus
}

// MissionView is a mission with its crew headcount attached
type MissionView struct {
	Mission   *Mission
	CrewCount int
}
