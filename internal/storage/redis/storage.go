package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/brawlops/brawlsquad/internal/model"
	"github.com/brawlops/brawlsquad/internal/storage"
)

// maxTxRetries bounds optimistic-lock retries on contended mission updates
const maxTxRetries = 5

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Brawler operations

func (s *Storage) InsertBrawler(ctx context.Context, username, displayName, passwordHash string) (model.BrawlerID, error) {
	now := time.Now()
	brawler := &model.Brawler{
		ID:           model.BrawlerID(storage.NewID("b_")),
		Username:     username,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	data, err := json.Marshal(brawler)
	if err != nil {
		return "", err
	}

	indexKey := usernameIndexKey(username)
	err = s.withTx(ctx, func(tx *redis.Tx) error {
		existing, err := tx.Get(ctx, indexKey).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if err == nil {
			// The name is taken only if a record sits behind the
			// claim; a dangling claim is reclaimed
			recErr := tx.Get(ctx, brawlerKey(model.BrawlerID(existing))).Err()
			if recErr == nil {
				return model.ErrUsernameTaken
			}
			if !errors.Is(recErr, redis.Nil) {
				return recErr
			}
		}

		// Index claim and record land together, so a failed insert
		// cannot reserve the username without an account behind it
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, indexKey, string(brawler.ID), 0)
			pipe.Set(ctx, brawlerKey(brawler.ID), data, 0)
			return nil
		})
		return err
	}, indexKey)
	if err != nil {
		return "", err
	}
	return brawler.ID, nil
}

func (s *Storage) GetBrawler(ctx context.Context, id model.BrawlerID) (*model.Brawler, error) {
	data, err := s.client.Get(ctx, brawlerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrBrawlerNotFound
		}
		return nil, err
	}

	var brawler model.Brawler
	if err := json.Unmarshal(data, &brawler); err != nil {
		return nil, err
	}
	return &brawler, nil
}

func (s *Storage) GetBrawlerByUsername(ctx context.Context, username string) (*model.Brawler, error) {
	id, err := s.client.Get(ctx, usernameIndexKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrBrawlerNotFound
		}
		return nil, err
	}
	return s.GetBrawler(ctx, model.BrawlerID(id))
}

func (s *Storage) UpdateAvatar(ctx context.Context, id model.BrawlerID, url string) (string, error) {
	key := brawlerKey(id)

	err := s.withTx(ctx, func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return model.ErrBrawlerNotFound
			}
			return err
		}

		var brawler model.Brawler
		if err := json.Unmarshal(data, &brawler); err != nil {
			return err
		}
		brawler.AvatarURL = url
		brawler.UpdatedAt = time.Now()

		updated, err := json.Marshal(&brawler)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updated, 0)
			return nil
		})
		return err
	}, key)
	if err != nil {
		return "", err
	}
	return url, nil
}

// Mission operations

func (s *Storage) CreateMission(ctx context.Context, mission *model.Mission) (model.MissionID, error) {
	copied := *mission
	if copied.ID == "" {
		copied.ID = model.MissionID(storage.NewID("m_"))
	}

	data, err := json.Marshal(&copied)
	if err != nil {
		return "", err
	}

	// Pipeline for atomic save + index updates
	pipe := s.client.Pipeline()
	pipe.Set(ctx, missionKey(copied.ID), data, 0)
	pipe.SAdd(ctx, missionSetKey(), string(copied.ID))
	pipe.SAdd(ctx, chiefIndexKey(copied.ChiefID), string(copied.ID))
	if _, err := pipe.Exec(ctx); err != nil {
		return "", err
	}
	return copied.ID, nil
}

func (s *Storage) GetMission(ctx context.Context, id model.MissionID) (*model.Mission, error) {
	mission, err := s.getMission(ctx, id)
	if err != nil {
		return nil, err
	}
	if mission.Deleted() {
		return nil, model.ErrMissionNotFound
	}
	return mission, nil
}

// getMission loads a mission without the soft-delete filter
func (s *Storage) getMission(ctx context.Context, id model.MissionID) (*model.Mission, error) {
	data, err := s.client.Get(ctx, missionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrMissionNotFound
		}
		return nil, err
	}

	var mission model.Mission
	if err := json.Unmarshal(data, &mission); err != nil {
		return nil, err
	}
	return &mission, nil
}

func (s *Storage) ListMissions(ctx context.Context, filter model.MissionFilter) ([]*model.Mission, error) {
	ids, err := s.client.SMembers(ctx, missionSetKey()).Result()
	if err != nil {
		return nil, err
	}

	missions := make([]*model.Mission, 0, len(ids))
	for _, id := range ids {
		mission, err := s.getMission(ctx, model.MissionID(id))
		if err != nil {
			if errors.Is(err, model.ErrMissionNotFound) {
				continue
			}
			return nil, err
		}
		if mission.Deleted() {
			continue
		}
		if filter.Status != nil && mission.Status != *filter.Status {
			continue
		}
		missions = append(missions, mission)
	}
	sortMissions(missions)
	return missions, nil
}

func (s *Storage) ListMissionsFor(ctx context.Context, brawlerID model.BrawlerID) ([]*model.Mission, error) {
	ids, err := s.client.SUnion(ctx, chiefIndexKey(brawlerID), crewForIndexKey(brawlerID)).Result()
	if err != nil {
		return nil, err
	}

	missions := make([]*model.Mission, 0, len(ids))
	for _, id := range ids {
		mission, err := s.getMission(ctx, model.MissionID(id))
		if err != nil {
			if errors.Is(err, model.ErrMissionNotFound) {
				continue
			}
			return nil, err
		}
		if mission.Deleted() {
			continue
		}
		missions = append(missions, mission)
	}
	sortMissions(missions)
	return missions, nil
}

func (s *Storage) UpdateMissionStatus(ctx context.Context, missionID model.MissionID, chiefID model.BrawlerID, status model.MissionStatus) (model.MissionID, error) {
	key := missionKey(missionID)

	err := s.withTx(ctx, func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return model.ErrMissionNotFound
			}
			return err
		}

		var mission model.Mission
		if err := json.Unmarshal(data, &mission); err != nil {
			return err
		}
		if mission.Deleted() || mission.ChiefID != chiefID || !mission.Status.CanTransitionTo(status) {
			return model.ErrMissionNotFound
		}

		mission.Status = status
		mission.UpdatedAt = time.Now()

		updated, err := json.Marshal(&mission)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updated, 0)
			return nil
		})
		return err
	}, key)
	if err != nil {
		return "", err
	}
	return missionID, nil
}

func (s *Storage) SoftDeleteMission(ctx context.Context, missionID model.MissionID, chiefID model.BrawlerID) error {
	key := missionKey(missionID)

	return s.withTx(ctx, func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return model.ErrMissionNotFound
			}
			return err
		}

		var mission model.Mission
		if err := json.Unmarshal(data, &mission); err != nil {
			return err
		}
		if mission.Deleted() || mission.ChiefID != chiefID {
			return model.ErrMissionNotFound
		}

		now := time.Now()
		mission.DeletedAt = &now
		mission.UpdatedAt = now

		updated, err := json.Marshal(&mission)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updated, 0)
			return nil
		})
		return err
	}, key)
}

// Crew operations

func (s *Storage) AddCrewMember(ctx context.Context, missionID model.MissionID, brawlerID model.BrawlerID) error {
	if _, err := s.GetMission(ctx, missionID); err != nil {
		return err
	}

	// Crew set and per-brawler index move in one transaction so
	// SCard never disagrees with the membership listing
	pipe := s.client.TxPipeline()
	added := pipe.SAdd(ctx, crewKey(missionID), string(brawlerID))
	pipe.SAdd(ctx, crewForIndexKey(brawlerID), string(missionID))
	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}
	if added.Val() == 0 {
		return model.ErrAlreadyCrewMember
	}
	return nil
}

func (s *Storage) RemoveCrewMember(ctx context.Context, missionID model.MissionID, brawlerID model.BrawlerID) error {
	if _, err := s.GetMission(ctx, missionID); err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	removed := pipe.SRem(ctx, crewKey(missionID), string(brawlerID))
	pipe.SRem(ctx, crewForIndexKey(brawlerID), string(missionID))
	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}
	if removed.Val() == 0 {
		return model.ErrNotCrewMember
	}
	return nil
}

func (s *Storage) CountCrew(ctx context.Context, missionID model.MissionID) (int, error) {
	count, err := s.client.SCard(ctx, crewKey(missionID)).Result()
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// withTx runs fn under WATCH on the given keys, retrying on optimistic
// lock failure. Single-row conditional updates go through here.
func (s *Storage) withTx(ctx context.Context, fn func(tx *redis.Tx) error, keys ...string) error {
	for i := 0; i < maxTxRetries; i++ {
		err := s.client.Watch(ctx, fn, keys...)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return redis.TxFailedErr
}

// sortMissions orders by creation time; SMembers order is arbitrary
func sortMissions(missions []*model.Mission) {
	sort.Slice(missions, func(i, j int) bool {
		if missions[i].CreatedAt.Equal(missions[j].CreatedAt) {
			return missions[i].ID < missions[j].ID
		}
		return missions[i].CreatedAt.Before(missions[j].CreatedAt)
	})
}
