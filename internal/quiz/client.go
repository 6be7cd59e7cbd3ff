package quiz

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/noadjamila/TechStudyFinder-sub000/internal/model"
)

// ErrNoQuestions reports that the server answered but had no level-2
// questions. Distinct from transport failure: the content is missing, the
// network is fine.
var ErrNoQuestions = errors.New("quiz: no level 2 questions available")

// FilterClient is the machine's view of the quiz API.
type FilterClient interface {
	FilterLevel(ctx context.Context, req model.FilterRequest) (*model.FilterResponse, error)
	Level2Questions(ctx context.Context) ([]model.Question, error)
}

// APIClient talks to the quiz HTTP API.
type APIClient struct {
	baseURL string
	http    *http.Client
}

// NewAPIClient creates a client for the API at baseURL (e.g. "https://host/api").
func NewAPIClient(baseURL string, httpClient *http.Client) *APIClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &APIClient{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// FilterLevel posts one level's answers to POST /quiz/filter.
func (c *APIClient) FilterLevel(ctx context.Context, req model.FilterRequest) (*model.FilterResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/quiz/filter", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("quiz: filter request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quiz: filter request failed with status %d", res.StatusCode)
	}

	var out model.FilterResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("quiz: decode filter response: %w", err)
	}
	return &out, nil
}

// Level2Questions fetches the trait question bank from
// GET /quiz/level/2/questions.
func (c *APIClient) Level2Questions(ctx context.Context) ([]model.Question, error) {
	url := fmt.Sprintf("%s/quiz/level/%d/questions", c.baseURL, model.Level2)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("quiz: questions request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quiz: questions request failed with status %d", res.StatusCode)
	}

	var out model.QuestionsResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("quiz: decode questions response: %w", err)
	}
	if len(out.Questions) == 0 {
		return nil, ErrNoQuestions
	}
	return out.Questions, nil
}

type attachResultsRequest struct {
	ResultIDs []string `json:"resultIds"`
}

// AttachResults posts a completed result set to the authenticated user's
// account via POST /quiz/results.
func (c *APIClient) AttachResults(ctx context.Context, userID string, results []model.RankedResult) error {
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.ID
	}
	body, err := json.Marshal(attachResultsRequest{ResultIDs: ids})
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/quiz/results", bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-User-ID", userID)

	res, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("quiz: attach results: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("quiz: attach results failed with status %d", res.StatusCode)
	}
	return nil
}
