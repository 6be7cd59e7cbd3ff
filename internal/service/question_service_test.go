package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noadjamila/TechStudyFinder-sub000/internal/model"
)

type stubQuestionRepo struct {
	questions []model.Question
	err       error
	calls     int
}

func (s *stubQuestionRepo) ListLevel2(_ context.Context) ([]model.Question, error) {
	s.calls++
	return s.questions, s.err
}

type stubCache struct {
	questions []model.Question
	getErr    error
	setErr    error
	sets      int
}

func (s *stubCache) Get(_ context.Context) ([]model.Question, error) {
	return s.questions, s.getErr
}

func (s *stubCache) Set(_ context.Context, questions []model.Question) error {
	s.sets++
	if s.setErr != nil {
		return s.setErr
	}
	s.questions = questions
	return nil
}

func (s *stubCache) Invalidate(_ context.Context) error {
	s.questions = nil
	return nil
}

var questionBank = []model.Question{
	{ID: "q-01", Text: "repariert gerne", RiasecType: model.TypeR},
	{ID: "q-02", Text: "forscht gerne", RiasecType: model.TypeI},
}

func TestLevel2Questions_CacheMissReadsRepoAndFillsCache(t *testing.T) {
	repo := &stubQuestionRepo{questions: questionBank}
	cache := &stubCache{}
	svc := NewQuestionService(repo, cache, nil)

	got, err := svc.Level2Questions(context.Background())
	require.NoError(t, err)
	require.Equal(t, questionBank, got)
	require.Equal(t, 1, repo.calls)
	require.Equal(t, 1, cache.sets)
}

func TestLevel2Questions_CacheHitSkipsRepo(t *testing.T) {
	repo := &stubQuestionRepo{questions: questionBank}
	cache := &stubCache{questions: questionBank}
	svc := NewQuestionService(repo, cache, nil)

	got, err := svc.Level2Questions(context.Background())
	require.NoError(t, err)
	require.Equal(t, questionBank, got)
	require.Zero(t, repo.calls)
}

func TestLevel2Questions_CacheFailureDegradesToRepo(t *testing.T) {
	repo := &stubQuestionRepo{questions: questionBank}
	cache := &stubCache{getErr: errors.New("redis down"), setErr: errors.New("redis down")}
	svc := NewQuestionService(repo, cache, nil)

	got, err := svc.Level2Questions(context.Background())
	require.NoError(t, err, "cache failures must not fail the request")
	require.Equal(t, questionBank, got)
}

func TestLevel2Questions_NilCache(t *testing.T) {
	repo := &stubQuestionRepo{questions: questionBank}
	svc := NewQuestionService(repo, nil, nil)

	got, err := svc.Level2Questions(context.Background())
	require.NoError(t, err)
	require.Equal(t, questionBank, got)
}

func TestLevel2Questions_RepoErrorPropagates(t *testing.T) {
	repo := &stubQuestionRepo{err: errors.New("mongo down")}
	svc := NewQuestionService(repo, nil, nil)

	_, err := svc.Level2Questions(context.Background())
	require.Error(t, err)
}
