package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/brawlops/brawlsquad/internal/dependencies/mocks"
	"github.com/brawlops/brawlsquad/internal/model"
	"github.com/brawlops/brawlsquad/internal/storage/memory"
	"github.com/brawlops/brawlsquad/internal/testutil"
	"github.com/brawlops/brawlsquad/internal/token"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	codec   *token.Codec
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.codec = token.NewCodec([]byte("test-secret"), time.Hour, s.clock)
	s.service = New(s.storage, s.codec, testutil.NopLogger())
	s.ctx = context.Background()
}

// Register tests

func (s *ServiceSuite) TestRegisterReturnsPassport() {
	passport, err := s.service.Register(s.ctx, "menta", "P@ssw0rd", "Menta")
	s.Require().NoError(err)

	s.NotEmpty(passport.AccessToken)
	s.Equal("Bearer", passport.TokenType)
	s.Equal(3600, passport.ExpiresIn)
	s.Equal("Menta", passport.DisplayName)
	s.Empty(passport.AvatarURL)
}

func (s *ServiceSuite) TestRegisterTokenIsVerifiable() {
	passport, err := s.service.Register(s.ctx, "menta", "P@ssw0rd", "Menta")
	s.Require().NoError(err)

	claims, err := s.codec.Verify(passport.AccessToken)
	s.Require().NoError(err)
	s.Equal(string(passport.BrawlerID), claims.Subject)
}

func (s *ServiceSuite) TestRegisterNeverStoresPlaintext() {
	_, err := s.service.Register(s.ctx, "menta", "P@ssw0rd", "Menta")
	s.Require().NoError(err)

	brawler, err := s.storage.GetBrawlerByUsername(s.ctx, "menta")
	s.Require().NoError(err)
	s.NotEmpty(brawler.PasswordHash)
	s.NotEqual("P@ssw0rd", brawler.PasswordHash)
	s.True(VerifyPassword("P@ssw0rd", brawler.PasswordHash))
}

func (s *ServiceSuite) TestRegisterFailsIfUsernameExists() {
	_, err := s.service.Register(s.ctx, "menta", "P@ssw0rd", "Menta")
	s.Require().NoError(err)

	// Conflict regardless of password
	_, err = s.service.Register(s.ctx, "menta", "P@ssw0rd", "Other")
	s.ErrorIs(err, ErrUsernameTaken)
	_, err = s.service.Register(s.ctx, "menta", "different", "Other")
	s.ErrorIs(err, ErrUsernameTaken)
}

// Login tests

func (s *ServiceSuite) TestLoginSucceedsWithFreshToken() {
	first, err := s.service.Register(s.ctx, "menta", "P@ssw0rd", "Menta")
	s.Require().NoError(err)

	second, err := s.service.Login(s.ctx, "menta", "P@ssw0rd")
	s.Require().NoError(err)

	s.NotEqual(first.AccessToken, second.AccessToken)
	_, err = s.codec.Verify(second.AccessToken)
	s.NoError(err)
}

func (s *ServiceSuite) TestLoginFailsWithWrongPassword() {
	_, err := s.service.Register(s.ctx, "menta", "P@ssw0rd", "Menta")
	s.Require().NoError(err)

	_, err = s.service.Login(s.ctx, "menta", "wrong")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginFailsWithUnknownUser() {
	// Same error as a wrong password, no enumeration signal
	_, err := s.service.Login(s.ctx, "nobody", "P@ssw0rd")
	s.ErrorIs(err, ErrInvalidCredentials)
}

// UploadAvatar tests

func (s *ServiceSuite) TestUploadAvatarAssociatesReference() {
	passport, err := s.service.Register(s.ctx, "menta", "P@ssw0rd", "Menta")
	s.Require().NoError(err)

	url, err := s.service.UploadAvatar(s.ctx, passport.BrawlerID, "aGVsbG8=")
	s.Require().NoError(err)
	s.Equal("data:image/png;base64,aGVsbG8=", url)

	relogged, err := s.service.Login(s.ctx, "menta", "P@ssw0rd")
	s.Require().NoError(err)
	s.Equal(url, relogged.AvatarURL)
}

// MyMissions tests

func (s *ServiceSuite) TestMyMissionsAttachesCrewCounts() {
	chief, err := s.service.Register(s.ctx, "chief", "P@ssw0rd", "Chief")
	s.Require().NoError(err)
	crew, err := s.service.Register(s.ctx, "crew", "P@ssw0rd", "Crew")
	s.Require().NoError(err)

	missionID, err := s.storage.CreateMission(s.ctx, &model.Mission{
		ChiefID:   chief.BrawlerID,
		Name:      "Heist",
		Status:    model.MissionPending,
		CreatedAt: s.clock.Now(),
		UpdatedAt: s.clock.Now(),
	})
	s.Require().NoError(err)
	s.Require().NoError(s.storage.AddCrewMember(s.ctx, missionID, crew.BrawlerID))

	views, err := s.service.MyMissions(s.ctx, chief.BrawlerID)
	s.Require().NoError(err)
	s.Require().Len(views, 1)
	s.Equal(missionID, views[0].Mission.ID)
	s.Equal(1, views[0].CrewCount)
}

func (s *ServiceSuite) TestMyMissionsExcludesUnrelated() {
	chief, err := s.service.Register(s.ctx, "chief", "P@ssw0rd", "Chief")
	s.Require().NoError(err)
	outsider, err := s.service.Register(s.ctx, "outsider", "P@ssw0rd", "Outsider")
	s.Require().NoError(err)

	_, err = s.storage.CreateMission(s.ctx, &model.Mission{
		ChiefID:   chief.BrawlerID,
		Name:      "Heist",
		Status:    model.MissionPending,
		CreatedAt: s.clock.Now(),
		UpdatedAt: s.clock.Now(),
	})
	s.Require().NoError(err)

	views, err := s.service.MyMissions(s.ctx, outsider.BrawlerID)
	s.Require().NoError(err)
	s.Empty(views)
}
