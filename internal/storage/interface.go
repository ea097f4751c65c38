package storage

import (
	"context"

	"github.com/brawlops/brawlsquad/internal/model"
)

// Storage defines the interface for data persistence. Backends assign
// identifiers on insert. Soft-deleted missions are invisible to every
// read and write operation.
type Storage interface {
	// Brawler operations
	InsertBrawler(ctx context.Context, username, displayName, passwordHash string) (model.BrawlerID, error)
	GetBrawler(ctx context.Context, id model.BrawlerID) (*model.Brawler, error)
	GetBrawlerByUsername(ctx context.Context, username string) (*model.Brawler, error)
	UpdateAvatar(ctx context.Context, id model.BrawlerID, url string) (string, error)

	// Mission operations
	CreateMission(ctx context.Context, mission *model.Mission) (model.MissionID, error)
	GetMission(ctx context.Context, id model.MissionID) (*model.Mission, error)
	ListMissions(ctx context.Context, filter model.MissionFilter) ([]*model.Mission, error)
	ListMissionsFor(ctx context.Context, brawlerID model.BrawlerID) ([]*model.Mission, error)

	// UpdateMissionStatus atomically applies a status transition, but only
	// when the mission is live, chiefID owns it, and its current status
	// admits the target. Every failure mode is model.ErrMissionNotFound.
	UpdateMissionStatus(ctx context.Context, missionID model.MissionID, chiefID model.BrawlerID, status model.MissionStatus) (model.MissionID, error)

	// SoftDeleteMission marks a mission deleted; chief-only, same merged
	// error contract as UpdateMissionStatus.
	SoftDeleteMission(ctx context.Context, missionID model.MissionID, chiefID model.BrawlerID) error

	// Crew operations
	AddCrewMember(ctx context.Context, missionID model.MissionID, brawlerID model.BrawlerID) error
	RemoveCrewMember(ctx context.Context, missionID model.MissionID, brawlerID model.BrawlerID) error
	CountCrew(ctx context.Context, missionID model.MissionID) (int, error)
}
