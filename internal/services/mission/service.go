// Package mission applies lifecycle transitions and ownership checks to
// mission records.
package mission

import (
	"context"

	"github.com/brawlops/brawlsquad/internal/dependencies/clock"
	"github.com/brawlops/brawlsquad/internal/model"
	"github.com/brawlops/brawlsquad/internal/storage"
)

// Service manages the mission state machine and crew membership.
// It is a stateless orchestrator; the storage layer's conditional
// update is what makes transitions safe under concurrency.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
}

// New creates a new mission Service
func New(storage storage.Storage, clock clock.Clock) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
	}
}

// Create starts a new pending mission owned by the given chief
func (s *Service) Create(ctx context.Context, chiefID model.BrawlerID, name, description string) (*model.Mission, error) {
	now := s.clock.Now()
	mission := &model.Mission{
		ChiefID:     chiefID,
		Name:        name,
		Description: description,
		Status:      model.MissionPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := s.storage.CreateMission(ctx, mission)
	if err != nil {
		return nil, err
	}
	mission.ID = id
	return mission, nil
}

// Transition moves a mission to the target status. Only the chief may
// transition a mission; a missing mission and someone else's mission
// fail identically.
func (s *Service) Transition(ctx context.Context, missionID model.MissionID, chiefID model.BrawlerID, target model.MissionStatus) (model.MissionID, error) {
	return s.storage.UpdateMissionStatus(ctx, missionID, chiefID, target)
}

// Delete soft-deletes a mission; chief-only, same merged error
func (s *Service) Delete(ctx context.Context, missionID model.MissionID, chiefID model.BrawlerID) error {
	return s.storage.SoftDeleteMission(ctx, missionID, chiefID)
}

// Detail returns a mission with its crew headcount
func (s *Service) Detail(ctx context.Context, missionID model.MissionID) (*model.MissionView, error) {
	mission, err := s.storage.GetMission(ctx, missionID)
	if err != nil {
		return nil, err
	}
	count, err := s.storage.CountCrew(ctx, missionID)
	if err != nil {
		return nil, err
	}
	return &model.MissionView{Mission: mission, CrewCount: count}, nil
}

// List returns live missions matching the filter
func (s *Service) List(ctx context.Context, filter model.MissionFilter) ([]*model.Mission, error) {
	return s.storage.ListMissions(ctx, filter)
}

// JoinCrew adds a brawler to a mission's crew. The chief already owns
// the mission and cannot also crew on it.
func (s *Service) JoinCrew(ctx context.Context, missionID model.MissionID, brawlerID model.BrawlerID) error {
	mission, err := s.storage.GetMission(ctx, missionID)
	if err != nil {
		return err
	}
	if mission.ChiefID == brawlerID {
		return model.ErrAlreadyCrewMember
	}
	return s.storage.AddCrewMember(ctx, missionID, brawlerID)
}

// LeaveCrew removes a brawler from a mission's crew
func (s *Service) LeaveCrew(ctx context.Context, missionID model.MissionID, brawlerID model.BrawlerID) error {
	return s.storage.RemoveCrewMember(ctx, missionID, brawlerID)
}

// CrewCount returns the mission's crew headcount; zero is common
func (s *Service) CrewCount(ctx context.Context, missionID model.MissionID) (int, error) {
	return s.storage.CountCrew(ctx, missionID)
}
