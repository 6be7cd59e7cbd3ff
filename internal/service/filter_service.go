package service

import (
	"context"
	"math"
	"sort"

	"github.com/noadjamila/TechStudyFinder-sub000/internal/model"
	"github.com/noadjamila/TechStudyFinder-sub000/internal/repository"
	"github.com/noadjamila/TechStudyFinder-sub000/internal/riasec"
)

// DefaultMinMatches is the level-2 trait-tag overlap threshold.
const DefaultMinMatches = 2

// FilterService narrows the programme candidate set once per quiz level.
// Every level is a stateless read against the catalog: re-invoking with the
// same inputs yields the same output, and each level's output is a subset of
// its input.
type FilterService struct {
	catalog    repository.CatalogRepo
	minMatches int
}

// NewFilterService creates the filtering pipeline. minMatches <= 0 falls
// back to DefaultMinMatches.
func NewFilterService(catalog repository.CatalogRepo, minMatches int) *FilterService {
	if minMatches <= 0 {
		minMatches = DefaultMinMatches
	}
	return &FilterService{catalog: catalog, minMatches: minMatches}
}

// FilterLevel1 resolves the categorical study-type preference. "all" or an
// empty preference keeps the entire catalog.
func (s *FilterService) FilterLevel1(ctx context.Context, studyType string) ([]string, error) {
	if studyType == "" || studyType == model.StudyTypeAll {
		return s.catalog.AllIDs(ctx)
	}
	return s.catalog.IDsByStudyType(ctx, studyType)
}

// FilterLevel2 keeps the candidates whose trait tags overlap the user's
// dominant traits in at least minMatches positions. An empty candidate set
// short-circuits to empty without a catalog read.
func (s *FilterService) FilterLevel2(ctx context.Context, candidateIDs []string, scores model.ScoreVector) ([]string, error) {
	if len(candidateIDs) == 0 {
		return []string{}, nil
	}

	dominant := riasec.DominantTypes(scores, riasec.DefaultDominantCount)
	wanted := make(map[model.RiasecType]bool, len(dominant))
	for _, t := range dominant {
		wanted[t] = true
	}

	tagged, err := s.catalog.TraitTagsByIDs(ctx, candidateIDs)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(candidateIDs))
	for _, id := range candidateIDs {
		matches := 0
		for _, t := range tagged[id] {
			if wanted[t] {
				matches++
			}
		}
		if matches >= s.minMatches {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// FilterLevel3 ranks the candidates by cosine similarity between the user's
// normalized vector and each programme's catalog vector. Descending
// similarity; ties break by ascending id. Candidates without a catalog
// vector are dropped.
func (s *FilterService) FilterLevel3(ctx context.Context, candidateIDs []string, scores model.ScoreVector) ([]model.RankedResult, error) {
	if len(candidateIDs) == 0 {
		return []model.RankedResult{}, nil
	}

	vectors, err := s.catalog.VectorsByIDs(ctx, candidateIDs)
	if err != nil {
		return nil, err
	}

	results := make([]model.RankedResult, 0, len(candidateIDs))
	for _, id := range candidateIDs {
		vec, ok := vectors[id]
		if !ok {
			continue
		}
		results = append(results, model.RankedResult{ID: id, Similarity: cosine(scores, vec)})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Similarity != results[j].Similarity {
			return results[i].Similarity > results[j].Similarity
		}
		return results[i].ID < results[j].ID
	})
	return results, nil
}

// cosine computes cosine similarity over the six RIASEC components. A zero
// vector on either side yields 0.
func cosine(a, b model.ScoreVector) float64 {
	var dot, na, nb float64
	for _, t := range model.RiasecTypes {
		dot += a[t] * b[t]
		na += a[t] * a[t]
		nb += b[t] * b[t]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
