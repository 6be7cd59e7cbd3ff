package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubResultRepo struct {
	byUser map[string][]string
}

func (s *stubResultRepo) Save(_ context.Context, userID string, resultIDs []string) error {
	s.byUser[userID] = resultIDs
	return nil
}

func (s *stubResultRepo) Get(_ context.Context, userID string) ([]string, error) {
	return s.byUser[userID], nil
}

func newResultService() (*ResultService, *stubResultRepo) {
	repo := &stubResultRepo{byUser: map[string][]string{}}
	return NewResultService(repo), repo
}

func TestResultService_SaveAndGet(t *testing.T) {
	svc, _ := newResultService()
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, "user-7", []string{"sg-001", "sg-003"}))

	got, err := svc.Get(ctx, "user-7")
	require.NoError(t, err)
	require.Equal(t, []string{"sg-001", "sg-003"}, got)
}

func TestResultService_SaveReplacesPreviousRun(t *testing.T) {
	svc, repo := newResultService()
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, "user-7", []string{"sg-001"}))
	require.NoError(t, svc.Save(ctx, "user-7", []string{"sg-002"}))

	require.Equal(t, []string{"sg-002"}, repo.byUser["user-7"])
}

func TestResultService_SaveValidation(t *testing.T) {
	svc, repo := newResultService()
	ctx := context.Background()

	require.ErrorIs(t, svc.Save(ctx, "user-7", nil), ErrEmptyResults)
	require.ErrorIs(t, svc.Save(ctx, "user-7", []string{}), ErrEmptyResults)
	require.ErrorIs(t, svc.Save(ctx, "user-7", []string{"sg-001", ""}), ErrInvalidResultIDs)
	require.Empty(t, repo.byUser, "invalid saves must not reach the repository")
}

func TestResultService_GetWithoutSavedRun(t *testing.T) {
	svc, _ := newResultService()

	_, err := svc.Get(context.Background(), "user-new")
	require.ErrorIs(t, err, ErrNoResults)
}
