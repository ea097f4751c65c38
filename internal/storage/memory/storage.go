package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/brawlops/brawlsquad/internal/model"
	"github.com/brawlops/brawlsquad/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	brawlers      map[model.BrawlerID]*model.Brawler
	usernameIndex map[string]model.BrawlerID
	missions      map[model.MissionID]*model.Mission
	crew          map[model.MissionID]map[model.BrawlerID]time.Time
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		brawlers:      make(map[model.BrawlerID]*model.Brawler),
		usernameIndex: make(map[string]model.BrawlerID),
		missions:      make(map[model.MissionID]*model.Mission),
		crew:          make(map[model.MissionID]map[model.BrawlerID]time.Time),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Brawler operations

func (s *Storage) InsertBrawler(ctx context.Context, username, displayName, passwordHash string) (model.BrawlerID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.usernameIndex[username]; taken {
		return "", model.ErrUsernameTaken
	}

	now := time.Now()
	brawler := &model.Brawler{
		ID:           model.BrawlerID(storage.NewID("b_")),
		Username:     username,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	s.brawlers[brawler.ID] = brawler
	s.usernameIndex[username] = brawler.ID
	return brawler.ID, nil
}

func (s *Storage) GetBrawler(ctx context.Context, id model.BrawlerID) (*model.Brawler, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	brawler, ok := s.brawlers[id]
	if !ok {
		return nil, model.ErrBrawlerNotFound
	}
	copied := *brawler
	return &copied, nil
}

func (s *Storage) GetBrawlerByUsername(ctx context.Context, username string) (*model.Brawler, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrBrawlerNotFound
	}
	brawler, ok := s.brawlers[id]
	if !ok {
		return nil, model.ErrBrawlerNotFound
	}
	copied := *brawler
	return &copied, nil
}

func (s *Storage) UpdateAvatar(ctx context.Context, id model.BrawlerID, url string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	brawler, ok := s.brawlers[id]
	if !ok {
		return "", model.ErrBrawlerNotFound
	}
	brawler.AvatarURL = url
	brawler.UpdatedAt = time.Now()
	return url, nil
}

// Mission operations

func (s *Storage) CreateMission(ctx context.Context, mission *model.Mission) (model.MissionID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *mission
	if copied.ID == "" {
		copied.ID = model.MissionID(storage.NewID("m_"))
	}
	s.missions[copied.ID] = &copied
	return copied.ID, nil
}

func (s *Storage) GetMission(ctx context.Context, id model.MissionID) (*model.Mission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	mission, ok := s.missions[id]
	if !ok || mission.Deleted() {
		return nil, model.ErrMissionNotFound
	}
	copied := *mission
	return &copied, nil
}

func (s *Storage) ListMissions(ctx context.Context, filter model.MissionFilter) ([]*model.Mission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var missions []*model.Mission
	for _, mission := range s.missions {
		if mission.Deleted() {
			continue
		}
		if filter.Status != nil && mission.Status != *filter.Status {
			continue
		}
		copied := *mission
		missions = append(missions, &copied)
	}
	sortMissions(missions)
	return missions, nil
}

func (s *Storage) ListMissionsFor(ctx context.Context, brawlerID model.BrawlerID) ([]*model.Mission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var missions []*model.Mission
	for _, mission := range s.missions {
		if mission.Deleted() {
			continue
		}
		if mission.ChiefID != brawlerID {
			if _, member := s.crew[mission.ID][brawlerID]; !member {
				continue
			}
		}
		copied := *mission
		missions = append(missions, &copied)
	}
	sortMissions(missions)
	return missions, nil
}

func (s *Storage) UpdateMissionStatus(ctx context.Context, missionID model.MissionID, chiefID model.BrawlerID, status model.MissionStatus) (model.MissionID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mission, ok := s.missions[missionID]
	if !ok || mission.Deleted() || mission.ChiefID != chiefID || !mission.Status.CanTransitionTo(status) {
		return "", model.ErrMissionNotFound
	}

	mission.Status = status
	mission.UpdatedAt = time.Now()
	return mission.ID, nil
}

func (s *Storage) SoftDeleteMission(ctx context.Context, missionID model.MissionID, chiefID model.BrawlerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	mission, ok := s.missions[missionID]
	if !ok || mission.Deleted() || mission.ChiefID != chiefID {
		return model.ErrMissionNotFound
	}

	now := time.Now()
	mission.DeletedAt = &now
	mission.UpdatedAt = now
	return nil
}

// Crew operations

func (s *Storage) AddCrewMember(ctx context.Context, missionID model.MissionID, brawlerID model.BrawlerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	mission, ok := s.missions[missionID]
	if !ok || mission.Deleted() {
		return model.ErrMissionNotFound
	}

	members, ok := s.crew[missionID]
	if !ok {
		members = make(map[model.BrawlerID]time.Time)
		s.crew[missionID] = members
	}
	if _, exists := members[brawlerID]; exists {
		return model.ErrAlreadyCrewMember
	}
	members[brawlerID] = time.Now()
	return nil
}

func (s *Storage) RemoveCrewMember(ctx context.Context, missionID model.MissionID, brawlerID model.BrawlerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	mission, ok := s.missions[missionID]
	if !ok || mission.Deleted() {
		return model.ErrMissionNotFound
	}
	if _, exists := s.crew[missionID][brawlerID]; !exists {
		return model.ErrNotCrewMember
	}
	delete(s.crew[missionID], brawlerID)
	return nil
}

func (s *Storage) CountCrew(ctx context.Context, missionID model.MissionID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.crew[missionID]), nil
}

// sortMissions orders by creation time, then id for a stable tiebreak
func sortMissions(missions []*model.Mission) {
	sort.Slice(missions, func(i, j int) bool {
		if missions[i].CreatedAt.Equal(missions[j].CreatedAt) {
			return missions[i].ID < missions[j].ID
		}
		return missions[i].CreatedAt.Before(missions[j].CreatedAt)
	})
}
