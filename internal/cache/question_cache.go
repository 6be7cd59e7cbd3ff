package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/noadjamila/TechStudyFinder-sub000/internal/model"
)

const questionKey = "quiz:level2:questions"

// QuestionCache keeps the level-2 question bank in redis so the catalog
// database is not hit on every session start.
type QuestionCache interface {
	Set(ctx context.Context, questions []model.Question) error
	// Get returns nil (no error) on a cache miss.
	Get(ctx context.Context) ([]model.Question, error)
	Invalidate(ctx context.Context) error
}

type questionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewQuestionCache creates a question cache with the given entry lifetime.
func NewQuestionCache(client *redis.Client, ttl time.Duration) QuestionCache {
	return &questionCache{client: client, ttl: ttl}
}

func (c *questionCache) Set(ctx context.Context, questions []model.Question) error {
	data, err := json.Marshal(questions)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, questionKey, data, c.ttl).Err()
}

func (c *questionCache) Get(ctx context.Context) ([]model.Question, error) {
	data, err := c.client.Get(ctx, questionKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var questions []model.Question
	if err := json.Unmarshal([]byte(data), &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (c *questionCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, questionKey).Err()
}
