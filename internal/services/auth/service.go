package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/brawlops/brawlsquad/internal/model"
	"github.com/brawlops/brawlsquad/internal/storage"
	"github.com/brawlops/brawlsquad/internal/token"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already exists")
)

// Passport is the bundle returned on successful authentication
type Passport struct {
	BrawlerID   model.BrawlerID
	AccessToken string
	TokenType   string
	ExpiresIn   int // seconds
	DisplayName string
	AvatarURL   string
}

// Service handles registration, login, and brawler-facing queries
type Service struct {
	storage storage.Storage
	codec   *token.Codec
	logger  *slog.Logger
}

// New creates a new auth Service
func New(storage storage.Storage, codec *token.Codec, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		codec:   codec,
		logger:  logger,
	}
}

// Register creates a brawler account and immediately logs it in, so a
// new brawler is authenticated in the same round trip.
func (s *Service) Register(ctx context.Context, username, password, displayName string) (*Passport, error) {
	// Check uniqueness before paying for a hash. The conflict error
	// already reveals the username exists; this is an optimization,
	// not a secrecy measure.
	_, err := s.storage.GetBrawlerByUsername(ctx, username)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, model.ErrBrawlerNotFound) {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	id, err := s.storage.InsertBrawler(ctx, username, displayName, hash)
	if err != nil {
		if errors.Is(err, model.ErrUsernameTaken) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	s.logger.Info("brawler registered", slog.String("brawler_id", string(id)))

	return s.Login(ctx, username, password)
}

// Login authenticates a brawler and issues a bearer credential. Unknown
// username and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, username, password string) (*Passport, error) {
	brawler, err := s.storage.GetBrawlerByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrBrawlerNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !VerifyPassword(password, brawler.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.codec.Issue(string(brawler.ID))
	if err != nil {
		return nil, err
	}

	return &Passport{
		BrawlerID:   brawler.ID,
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.codec.TTL().Seconds()),
		DisplayName: brawler.DisplayName,
		AvatarURL:   brawler.AvatarURL,
	}, nil
}

// UploadAvatar stores the image inline as a data URL and associates it
// with the brawler. There is no blob store; the avatar travels with the
// brawler record.
func (s *Service) UploadAvatar(ctx context.Context, id model.BrawlerID, imageBase64 string) (string, error) {
	url := fmt.Sprintf("data:image/png;base64,%s", imageBase64)
	return s.storage.UpdateAvatar(ctx, id, url)
}

// MyMissions returns every mission the brawler leads or crews on, each
// with its current crew headcount.
func (s *Service) MyMissions(ctx context.Context, id model.BrawlerID) ([]*model.MissionView, error) {
	missions, err := s.storage.ListMissionsFor(ctx, id)
	if err != nil {
		return nil, err
	}

	views := make([]*model.MissionView, 0, len(missions))
	for _, mission := range missions {
		count, err := s.storage.CountCrew(ctx, mission.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, &model.MissionView{Mission: mission, CrewCount: count})
	}
	return views, nil
}
