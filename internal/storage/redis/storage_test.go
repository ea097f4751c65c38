package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/brawlops/brawlsquad/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) insertBrawler(username string) model.BrawlerID {
	id, err := s.storage.InsertBrawler(s.ctx, username, "Display "+username, "hash")
	s.Require().NoError(err)
	return id
}

func (s *StorageSuite) createMission(chiefID model.BrawlerID, status model.MissionStatus) model.MissionID {
	id, err := s.storage.CreateMission(s.ctx, &model.Mission{
		ChiefID:   chiefID,
		Name:      "Heist",
		Status:    status,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	})
	s.Require().NoError(err)
	return id
}

// Brawler tests

func (s *StorageSuite) TestInsertAndGetBrawler() {
	id := s.insertBrawler("menta")

	brawler, err := s.storage.GetBrawler(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("menta", brawler.Username)
	s.Equal("hash", brawler.PasswordHash)
}

func (s *StorageSuite) TestInsertBrawlerRejectsDuplicateUsername() {
	s.insertBrawler("menta")

	_, err := s.storage.InsertBrawler(s.ctx, "menta", "Other", "otherhash")
	s.ErrorIs(err, model.ErrUsernameTaken)
}

func (s *StorageSuite) TestInsertBrawlerReclaimsDanglingUsernameClaim() {
	// An index entry pointing at a record that was never written must
	// not reserve the name
	s.Require().NoError(s.mini.Set(usernameIndexKey("menta"), "b_gone"))

	id, err := s.storage.InsertBrawler(s.ctx, "menta", "Menta", "hash")
	s.Require().NoError(err)

	brawler, err := s.storage.GetBrawlerByUsername(s.ctx, "menta")
	s.Require().NoError(err)
	s.Equal(id, brawler.ID)
}

func (s *StorageSuite) TestGetBrawlerByUsername() {
	id := s.insertBrawler("menta")

	brawler, err := s.storage.GetBrawlerByUsername(s.ctx, "menta")
	s.Require().NoError(err)
	s.Equal(id, brawler.ID)
}

func (s *StorageSuite) TestGetBrawlerByUsernameNotFound() {
	_, err := s.storage.GetBrawlerByUsername(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrBrawlerNotFound)
}

func (s *StorageSuite) TestUpdateAvatarPersists() {
	id := s.insertBrawler("menta")

	url, err := s.storage.UpdateAvatar(s.ctx, id, "/static/avatars/x.png")
	s.Require().NoError(err)
	s.Equal("/static/avatars/x.png", url)

	brawler, err := s.storage.GetBrawler(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("/static/avatars/x.png", brawler.AvatarURL)
}

// Mission tests

func (s *StorageSuite) TestUpdateMissionStatusByChief() {
	chief := s.insertBrawler("chief")
	missionID := s.createMission(chief, model.MissionPending)

	got, err := s.storage.UpdateMissionStatus(s.ctx, missionID, chief, model.MissionInProgress)
	s.Require().NoError(err)
	s.Equal(missionID, got)

	mission, err := s.storage.GetMission(s.ctx, missionID)
	s.Require().NoError(err)
	s.Equal(model.MissionInProgress, mission.Status)
}

func (s *StorageSuite) TestUpdateMissionStatusRejectsNonChief() {
	chief := s.insertBrawler("chief")
	other := s.insertBrawler("other")
	missionID := s.createMission(chief, model.MissionPending)

	_, err := s.storage.UpdateMissionStatus(s.ctx, missionID, other, model.MissionInProgress)
	s.ErrorIs(err, model.ErrMissionNotFound)
}

func (s *StorageSuite) TestUpdateMissionStatusRejectsTerminalMission() {
	chief := s.insertBrawler("chief")
	missionID := s.createMission(chief, model.MissionFailed)

	_, err := s.storage.UpdateMissionStatus(s.ctx, missionID, chief, model.MissionInProgress)
	s.ErrorIs(err, model.ErrMissionNotFound)
}

func (s *StorageSuite) TestSoftDeleteHidesMission() {
	chief := s.insertBrawler("chief")
	missionID := s.createMission(chief, model.MissionPending)

	s.Require().NoError(s.storage.SoftDeleteMission(s.ctx, missionID, chief))

	_, err := s.storage.GetMission(s.ctx, missionID)
	s.ErrorIs(err, model.ErrMissionNotFound)

	missions, err := s.storage.ListMissionsFor(s.ctx, chief)
	s.Require().NoError(err)
	s.Empty(missions)
}

func (s *StorageSuite) TestListMissionsForIncludesChiefAndCrew() {
	chief := s.insertBrawler("chief")
	outsider := s.insertBrawler("outsider")

	owned := s.createMission(chief, model.MissionPending)
	joined := s.createMission(outsider, model.MissionPending)
	s.createMission(outsider, model.MissionPending) // unrelated

	s.Require().NoError(s.storage.AddCrewMember(s.ctx, joined, chief))

	missions, err := s.storage.ListMissionsFor(s.ctx, chief)
	s.Require().NoError(err)

	ids := make([]model.MissionID, len(missions))
	for i, m := range missions {
		ids[i] = m.ID
	}
	s.ElementsMatch([]model.MissionID{owned, joined}, ids)
}

func (s *StorageSuite) TestListMissionsFiltersByStatus() {
	chief := s.insertBrawler("chief")
	s.createMission(chief, model.MissionPending)
	inProgress := s.createMission(chief, model.MissionInProgress)

	status := model.MissionInProgress
	missions, err := s.storage.ListMissions(s.ctx, model.MissionFilter{Status: &status})
	s.Require().NoError(err)
	s.Require().Len(missions, 1)
	s.Equal(inProgress, missions[0].ID)
}

// Crew tests

func (s *StorageSuite) TestCrewCountFollowsMembership() {
	chief := s.insertBrawler("chief")
	missionID := s.createMission(chief, model.MissionPending)

	count, err := s.storage.CountCrew(s.ctx, missionID)
	s.Require().NoError(err)
	s.Equal(0, count)

	a := s.insertBrawler("a")
	b := s.insertBrawler("b")
	s.Require().NoError(s.storage.AddCrewMember(s.ctx, missionID, a))
	s.Require().NoError(s.storage.AddCrewMember(s.ctx, missionID, b))

	count, err = s.storage.CountCrew(s.ctx, missionID)
	s.Require().NoError(err)
	s.Equal(2, count)

	s.Require().NoError(s.storage.RemoveCrewMember(s.ctx, missionID, a))

	count, err = s.storage.CountCrew(s.ctx, missionID)
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *StorageSuite) TestAddCrewMemberRejectsDuplicate() {
	chief := s.insertBrawler("chief")
	member := s.insertBrawler("member")
	missionID := s.createMission(chief, model.MissionPending)

	s.Require().NoError(s.storage.AddCrewMember(s.ctx, missionID, member))
	err := s.storage.AddCrewMember(s.ctx, missionID, member)
	s.ErrorIs(err, model.ErrAlreadyCrewMember)
}

func (s *StorageSuite) TestCrewSetsStayAligned() {
	chief := s.insertBrawler("chief")
	member := s.insertBrawler("member")
	missionID := s.createMission(chief, model.MissionPending)

	s.Require().NoError(s.storage.AddCrewMember(s.ctx, missionID, member))
	s.ErrorIs(s.storage.AddCrewMember(s.ctx, missionID, member), model.ErrAlreadyCrewMember)

	// Headcount and the per-brawler listing agree after the duplicate
	count, err := s.storage.CountCrew(s.ctx, missionID)
	s.Require().NoError(err)
	s.Equal(1, count)

	missions, err := s.storage.ListMissionsFor(s.ctx, member)
	s.Require().NoError(err)
	s.Require().Len(missions, 1)
	s.Equal(missionID, missions[0].ID)

	s.Require().NoError(s.storage.RemoveCrewMember(s.ctx, missionID, member))
	s.ErrorIs(s.storage.RemoveCrewMember(s.ctx, missionID, member), model.ErrNotCrewMember)

	count, err = s.storage.CountCrew(s.ctx, missionID)
	s.Require().NoError(err)
	s.Equal(0, count)

	missions, err = s.storage.ListMissionsFor(s.ctx, member)
	s.Require().NoError(err)
	s.Empty(missions)
}

func (s *StorageSuite) TestRemoveCrewMemberNotMember() {
	chief := s.insertBrawler("chief")
	missionID := s.createMission(chief, model.MissionPending)

	err := s.storage.RemoveCrewMember(s.ctx, missionID, "b_stranger")
	s.ErrorIs(err, model.ErrNotCrewMember)
}
