package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"time"
)

const migrateTargetsQuery = `query getMigrateTargets { hogTokens(where: { migrated: false }) { id deadline priorMilestones { unitAmount unitFilledAmount } } }`

type graphQLRequest struct {
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables"`
	OperationName string         `json:"operationName"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type migrateTargetsResponse struct {
	Data struct {
		HogTokens []TokenState `json:"hogTokens"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

// TokenState is an unmigrated token as indexed by the subgraph. Numbers are
// decimal strings.
type TokenState struct {
	ID              string      `json:"id"`
	Deadline        string      `json:"deadline"`
	PriorMilestones []Milestone `json:"priorMilestones"`
}

type Milestone struct {
	UnitAmount       string `json:"unitAmount"`
	UnitFilledAmount string `json:"unitFilledAmount"`
}

// Subgraph queries the factory's subgraph for migration candidates.
type Subgraph struct {
	httpClient      *http.Client
	url             string
	milestoneLength int
	now             func() time.Time
}

func NewSubgraph(url string, timeout time.Duration, milestoneLength int) *Subgraph {
	return &Subgraph{
		httpClient:      &http.Client{Timeout: timeout},
		url:             url,
		milestoneLength: milestoneLength,
		now:             time.Now,
	}
}

func (s *Subgraph) ListMigrationCandidates(ctx context.Context) ([]string, error) {
	tokens, err := s.fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch migrate targets: %w", err)
	}
	return MigrationTargets(tokens, s.now(), s.milestoneLength), nil
}

func (s *Subgraph) fetch(ctx context.Context) ([]TokenState, error) {
	body, err := json.Marshal(graphQLRequest{
		Query:         migrateTargetsQuery,
		Variables:     map[string]any{},
		OperationName: "getMigrateTargets",
	})
	if err != nil {
		return nil, fmt.Errorf("marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("unexpected status: %d: %s", resp.StatusCode, msg)
	}

	var out migrateTargetsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(out.Errors) > 0 {
		return nil, fmt.Errorf("graphql: %s", out.Errors[0].Message)
	}

	return out.Data.HogTokens, nil
}

// MigrationTargets keeps tokens whose deadline has passed, or whose
// milestones number exactly milestoneLength and are all filled. Order is
// preserved.
func MigrationTargets(tokens []TokenState, now time.Time, milestoneLength int) []string {
	nowSec := big.NewInt(now.Unix())

	var targets []string
	for _, t := range tokens {
		if deadline, ok := new(big.Int).SetString(t.Deadline, 10); ok && deadline.Cmp(nowSec) < 0 {
			targets = append(targets, t.ID)
			continue
		}
		if len(t.PriorMilestones) == milestoneLength && allFilled(t.PriorMilestones) {
			targets = append(targets, t.ID)
		}
	}
	return targets
}

func allFilled(milestones []Milestone) bool {
	for _, m := range milestones {
		amount, ok1 := new(big.Int).SetString(m.UnitAmount, 10)
		filled, ok2 := new(big.Int).SetString(m.UnitFilledAmount, 10)
		if !ok1 || !ok2 || amount.Cmp(filled) != 0 {
			return false
		}
	}
	return true
}
