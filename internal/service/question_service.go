package service

import (
	"context"
	"log/slog"

	"github.com/noadjamila/TechStudyFinder-sub000/internal/cache"
	"github.com/noadjamila/TechStudyFinder-sub000/internal/model"
	"github.com/noadjamila/TechStudyFinder-sub000/internal/repository"
)

// QuestionService serves the level-2 question bank, reading through the
// redis cache when one is configured. Cache failures degrade to the
// repository; they never fail the request.
type QuestionService struct {
	repo  repository.QuestionRepo
	cache cache.QuestionCache
	log   *slog.Logger
}

// NewQuestionService creates a question service. cache may be nil.
func NewQuestionService(repo repository.QuestionRepo, questionCache cache.QuestionCache, log *slog.Logger) *QuestionService {
	if log == nil {
		log = slog.Default()
	}
	return &QuestionService{repo: repo, cache: questionCache, log: log}
}

// Level2Questions returns the level-2 question bank.
func (s *QuestionService) Level2Questions(ctx context.Context) ([]model.Question, error) {
	if s.cache != nil {
		questions, err := s.cache.Get(ctx)
		if err != nil {
			s.log.Warn("question cache read failed", "error", err)
		} else if len(questions) > 0 {
			return questions, nil
		}
	}

	questions, err := s.repo.ListLevel2(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && len(questions) > 0 {
		if err := s.cache.Set(ctx, questions); err != nil {
			s.log.Warn("question cache write failed", "error", err)
		}
	}
	return questions, nil
}
