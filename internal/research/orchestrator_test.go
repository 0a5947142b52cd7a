package research

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAgent is a configurable fake used across orchestrator tests.
type stubAgent struct {
	category Category
	delay    time.Duration
	hang     bool
	panicMsg string
	result   *Result
	onStart  func()
}

func (s *stubAgent) Describe() AgentInfo {
	return AgentInfo{Category: s.category, Name: "stub " + string(s.category)}
}

func (s *stubAgent) Research(ctx context.Context, input Input) Result {
	if s.onStart != nil {
		s.onStart()
	}
	if s.panicMsg != "" {
		panic(s.panicMsg)
	}
	if s.hang {
		// Simulated hang: ignore the context entirely.
		<-make(chan struct{})
	}
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	if s.result != nil {
		return *s.result
	}
	return Result{
		Category:   s.category,
		Status:     StatusCompleted,
		Analysis:   map[string]any{"ok": true},
		Summary:    "findings for " + string(s.category),
		Sources:    []Source{{URL: "https://example.com", Title: "Example", Kind: "web"}},
		Confidence: 0.9,
		Duration:   s.delay,
	}
}

func registryOf(agents ...*stubAgent) map[Category]Agent {
	m := make(map[Category]Agent, len(agents))
	for _, a := range agents {
		m[a.category] = a
	}
	return m
}

func TestExecuteResearchReturnsOneResultPerCategory(t *testing.T) {
	orch := New(registryOf(
		&stubAgent{category: CategoryCompetitor},
		&stubAgent{category: CategoryMarket},
		&stubAgent{category: CategoryTrend},
	), nil, Options{})

	requested := []Category{CategoryCompetitor, CategoryMarket, CategoryTrend}
	results, err := orch.ExecuteResearch(context.Background(), Request{
		Categories: requested,
		Query:      "Nike",
	})
	require.NoError(t, err)

	assert.Len(t, results, len(requested))
	for _, cat := range requested {
		res, ok := results[cat]
		require.True(t, ok, "missing result for %s", cat)
		assert.Equal(t, cat, res.Category)
		assert.Equal(t, StatusCompleted, res.Status)
		assert.GreaterOrEqual(t, res.Confidence, 0.0)
		assert.LessOrEqual(t, res.Confidence, 1.0)
	}
}

func TestExecuteResearchCollapsesDuplicateCategories(t *testing.T) {
	calls := 0
	var mu sync.Mutex
	agent := &stubAgent{category: CategoryMarket, onStart: func() {
		mu.Lock()
		calls++
		mu.Unlock()
	}}
	orch := New(registryOf(agent), nil, Options{})

	results, err := orch.ExecuteResearch(context.Background(), Request{
		Categories: []Category{CategoryMarket, CategoryMarket, CategoryMarket},
		Query:      "Nike",
	})
	require.NoError(t, err)

	assert.Len(t, results, 1)
	assert.Equal(t, 1, calls)
}

func TestExecuteResearchRejectsEmptyCategories(t *testing.T) {
	orch := New(registryOf(&stubAgent{category: CategoryMarket}), nil, Options{})

	_, err := orch.ExecuteResearch(context.Background(), Request{Query: "Nike"})
	assert.Error(t, err)
}

func TestExecuteResearchUnknownCategory(t *testing.T) {
	orch := New(registryOf(&stubAgent{category: CategoryMarket}), nil, Options{})

	results, err := orch.ExecuteResearch(context.Background(), Request{
		Categories: []Category{CategoryMarket, CategoryAudience},
		Query:      "Nike",
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	missing := results[CategoryAudience]
	assert.Equal(t, StatusFailed, missing.Status)
	assert.Equal(t, "unknown category", missing.Err)

	// The sibling is unaffected.
	assert.Equal(t, StatusCompleted, results[CategoryMarket].Status)
}

func TestExecuteResearchTimeoutIsolatedToOneCategory(t *testing.T) {
	orch := New(registryOf(
		&stubAgent{category: CategoryCompetitor, hang: true},
		&stubAgent{category: CategoryMarket},
	), nil, Options{Timeout: 100 * time.Millisecond})

	start := time.Now()
	results, err := orch.ExecuteResearch(context.Background(), Request{
		Categories: []Category{CategoryCompetitor, CategoryMarket},
		Query:      "Nike",
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	hung := results[CategoryCompetitor]
	assert.Equal(t, StatusFailed, hung.Status)
	assert.Equal(t, "timed out", hung.Err)
	assert.Equal(t, StatusCompleted, results[CategoryMarket].Status)

	// The batch settles near the deadline, not at test-timeout scale.
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestExecuteResearchTimeoutOverridePerRequest(t *testing.T) {
	orch := New(registryOf(
		&stubAgent{category: CategoryMarket, hang: true},
	), nil, Options{Timeout: time.Hour})

	results, err := orch.ExecuteResearch(context.Background(), Request{
		Categories: []Category{CategoryMarket},
		Query:      "Nike",
		Timeout:    50 * time.Millisecond,
	})
	require.NoError(t, err)
	assert.Equal(t, "timed out", results[CategoryMarket].Err)
}

func TestExecuteResearchRecoversAgentPanic(t *testing.T) {
	orch := New(registryOf(
		&stubAgent{category: CategoryTrend, panicMsg: "boom"},
		&stubAgent{category: CategoryMarket},
	), nil, Options{})

	results, err := orch.ExecuteResearch(context.Background(), Request{
		Categories: []Category{CategoryTrend, CategoryMarket},
		Query:      "Nike",
	})
	require.NoError(t, err)

	crashed := results[CategoryTrend]
	assert.Equal(t, StatusFailed, crashed.Status)
	assert.Contains(t, crashed.Err, "boom")
	assert.Equal(t, StatusCompleted, results[CategoryMarket].Status)
}

func TestExecuteResearchBoundsConcurrency(t *testing.T) {
	const limit = 2

	var mu sync.Mutex
	inFlight, maxInFlight := 0, 0
	enter := func() {
		mu.Lock()
		inFlight++
		if inFlight > maxInFlight {
			maxInFlight = inFlight
		}
		mu.Unlock()
	}
	leave := func() {
		mu.Lock()
		inFlight--
		mu.Unlock()
	}

	registry := make(map[Category]Agent)
	var categories []Category
	for _, cat := range Categories() {
		categories = append(categories, cat)
		registry[cat] = &slowAgent{category: cat, enter: enter, leave: leave}
	}

	orch := New(registry, nil, Options{MaxConcurrent: limit})
	results, err := orch.ExecuteResearch(context.Background(), Request{
		Categories: categories,
		Query:      "Nike",
	})
	require.NoError(t, err)

	assert.Len(t, results, len(categories))
	assert.LessOrEqual(t, maxInFlight, limit)
	assert.Greater(t, maxInFlight, 0)
}

// slowAgent reports entry and exit so tests can observe in-flight counts.
type slowAgent struct {
	category Category
	enter    func()
	leave    func()
}

func (s *slowAgent) Describe() AgentInfo { return AgentInfo{Category: s.category} }

func (s *slowAgent) Research(ctx context.Context, input Input) Result {
	s.enter()
	defer s.leave()
	time.Sleep(30 * time.Millisecond)
	return Result{Category: s.category, Status: StatusCompleted, Analysis: map[string]any{}}
}

// flakyRepo always fails Create and counts attempts.
type flakyRepo struct {
	mu      sync.Mutex
	entries []*Entry
	err     error
}

func (r *flakyRepo) Create(ctx context.Context, entry *Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return r.err
}

func TestExecuteResearchPersistsEachResult(t *testing.T) {
	repo := &flakyRepo{}
	orch := New(registryOf(
		&stubAgent{category: CategoryCompetitor},
		&stubAgent{category: CategoryMarket},
	), repo, Options{})

	_, err := orch.ExecuteResearch(context.Background(), Request{
		ProjectID:  "p1",
		UserID:     "u1",
		Categories: []Category{CategoryCompetitor, CategoryMarket},
		Query:      "Nike",
	})
	require.NoError(t, err)

	require.Len(t, repo.entries, 2)
	for _, entry := range repo.entries {
		assert.Equal(t, "p1", entry.ProjectID)
		assert.Equal(t, "u1", entry.UserID)
		assert.NotEmpty(t, entry.ID)
	}
}

func TestExecuteResearchIgnoresPersistenceFailures(t *testing.T) {
	repo := &flakyRepo{err: errors.New("store unavailable")}
	orch := New(registryOf(
		&stubAgent{category: CategoryCompetitor},
		&stubAgent{category: CategoryMarket},
	), repo, Options{})

	results, err := orch.ExecuteResearch(context.Background(), Request{
		Categories: []Category{CategoryCompetitor, CategoryMarket},
		Query:      "Nike",
	})
	require.NoError(t, err)

	assert.Len(t, results, 2)
	for _, res := range results {
		assert.Equal(t, StatusCompleted, res.Status)
	}
}

func TestExecuteSingleMatchesBatchSemantics(t *testing.T) {
	orch := New(registryOf(&stubAgent{category: CategoryAudience}), nil, Options{})

	res := orch.ExecuteSingle(context.Background(), CategoryAudience, Request{Query: "Nike"})
	assert.Equal(t, StatusCompleted, res.Status)
	assert.Equal(t, CategoryAudience, res.Category)

	missing := orch.ExecuteSingle(context.Background(), CategoryTrend, Request{Query: "Nike"})
	assert.Equal(t, StatusFailed, missing.Status)
	assert.Equal(t, "unknown category", missing.Err)
}

func TestExecuteSingleTimesOut(t *testing.T) {
	orch := New(registryOf(&stubAgent{category: CategoryMarket, hang: true}), nil, Options{})

	res := orch.ExecuteSingle(context.Background(), CategoryMarket, Request{
		Query:   "Nike",
		Timeout: 50 * time.Millisecond,
	})
	assert.Equal(t, StatusFailed, res.Status)
	assert.Equal(t, "timed out", res.Err)
}

func TestExecuteResearchDetectsInputType(t *testing.T) {
	var mu sync.Mutex
	var seen InputType
	agent := &recordingAgent{category: CategoryMarket, record: func(in Input) {
		mu.Lock()
		seen = in.InputType
		mu.Unlock()
	}}
	orch := New(map[Category]Agent{CategoryMarket: agent}, nil, Options{})

	_, err := orch.ExecuteResearch(context.Background(), Request{
		Categories: []Category{CategoryMarket},
		Query:      "https://example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, InputTypeURL, seen)
}

type recordingAgent struct {
	category Category
	record   func(Input)
}

func (r *recordingAgent) Describe() AgentInfo { return AgentInfo{Category: r.category} }

func (r *recordingAgent) Research(ctx context.Context, input Input) Result {
	r.record(input)
	return Result{Category: r.category, Status: StatusCompleted, Analysis: map[string]any{}}
}

func TestAvailableAgentsOrderedByCategory(t *testing.T) {
	orch := New(registryOf(
		&stubAgent{category: CategoryTrend},
		&stubAgent{category: CategoryCompetitor},
		&stubAgent{category: CategoryAudience},
	), nil, Options{})

	infos := orch.AvailableAgents()
	require.Len(t, infos, 3)
	assert.Equal(t, CategoryCompetitor, infos[0].Category)
	assert.Equal(t, CategoryAudience, infos[1].Category)
	assert.Equal(t, CategoryTrend, infos[2].Category)
}

func TestSortedCategoriesUsesOrdinalOrder(t *testing.T) {
	results := map[Category]Result{
		CategoryTrend:       {},
		CategoryCompetitor:  {},
		CategorySocialMedia: {},
	}
	sorted := SortedCategories(results)
	assert.Equal(t, []Category{CategoryCompetitor, CategorySocialMedia, CategoryTrend}, sorted)
}

func TestSharedGateAcrossConcurrentBatches(t *testing.T) {
	const limit = 2

	var mu sync.Mutex
	inFlight, maxInFlight := 0, 0
	registry := make(map[Category]Agent)
	for _, cat := range Categories() {
		registry[cat] = &slowAgent{
			category: cat,
			enter: func() {
				mu.Lock()
				inFlight++
				if inFlight > maxInFlight {
					maxInFlight = inFlight
				}
				mu.Unlock()
			},
			leave: func() {
				mu.Lock()
				inFlight--
				mu.Unlock()
			},
		}
	}

	orch := New(registry, nil, Options{MaxConcurrent: limit})

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := orch.ExecuteResearch(context.Background(), Request{
				Categories: Categories()[:3],
				Query:      fmt.Sprintf("batch %d", i),
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, maxInFlight, limit)
}
