package storage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/noadjamila/TechStudyFinder-sub000/internal/model"
)

// RedisStore keeps the two slots in redis, one namespace per profile. No
// expiry is set: the slots are durable until explicitly cleared or
// overwritten.
type RedisStore struct {
	client  *redis.Client
	profile string
}

// NewRedisStore creates a slot store scoped to one profile id.
func NewRedisStore(client *redis.Client, profileID string) *RedisStore {
	return &RedisStore{client: client, profile: profileID}
}

func (s *RedisStore) key(slot string) string {
	return "quiz:" + s.profile + ":" + slot
}

func (s *RedisStore) SaveSession(ctx context.Context, session *model.QuizSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(SessionKey), data, 0).Err()
}

func (s *RedisStore) LoadSession(ctx context.Context) (*model.QuizSession, error) {
	data, err := s.client.Get(ctx, s.key(SessionKey)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var session model.QuizSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisStore) ClearSession(ctx context.Context) error {
	return s.client.Del(ctx, s.key(SessionKey)).Err()
}

func (s *RedisStore) SaveResults(ctx context.Context, results []model.RankedResult) error {
	data, err := json.Marshal(results)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(ResultsKey), data, 0).Err()
}

func (s *RedisStore) LoadResults(ctx context.Context) ([]model.RankedResult, error) {
	data, err := s.client.Get(ctx, s.key(ResultsKey)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var results []model.RankedResult
	if err := json.Unmarshal([]byte(data), &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *RedisStore) ClearResults(ctx context.Context) error {
	return s.client.Del(ctx, s.key(ResultsKey)).Err()
}
