package research

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultMaxConcurrent bounds how many agents may be in flight at once.
	DefaultMaxConcurrent = 3

	// DefaultTimeout is the per-agent deadline.
	DefaultTimeout = 60 * time.Second
)

// Failure reasons surfaced in Result.Err. Persistence failures are logged
// only and never appear in a result.
const (
	reasonUnknownCategory = "unknown category"
	reasonTimedOut        = "timed out"
)

var errNoCategories = errors.New("at least one research category is required")

// Repository is the append-mostly store the orchestrator writes to,
// fire-and-forget, after a batch settles.
type Repository interface {
	Create(ctx context.Context, entry *Entry) error
}

// Options configures an Orchestrator.
type Options struct {
	// MaxConcurrent is the size of the concurrency gate shared by all
	// batches running against this orchestrator.
	MaxConcurrent int

	// Timeout is the per-agent deadline, overridable per request.
	Timeout time.Duration
}

// Request describes one orchestration call.
type Request struct {
	ProjectID  string
	UserID     string
	Categories []Category
	Query      string

	// InputType is auto-detected from the query when empty.
	InputType InputType

	Context map[string]any

	// Timeout overrides the orchestrator's per-agent deadline when positive.
	Timeout time.Duration
}

// Orchestrator fans a research request out to one agent per requested
// category, bounded by a shared concurrency gate, and joins the results.
// All state is constructor-injected; a process may run several independently
// configured orchestrators.
type Orchestrator struct {
	agents  map[Category]Agent
	repo    Repository
	timeout time.Duration

	// gate bounds in-flight agents across every batch run against this
	// orchestrator, not per call.
	gate chan struct{}
}

// New builds an Orchestrator over a fixed agent registry. The registry is
// never mutated after construction, so no synchronization guards it. repo may
// be nil to disable persistence.
func New(agents map[Category]Agent, repo Repository, opts Options) *Orchestrator {
	limit := opts.MaxConcurrent
	if limit <= 0 {
		limit = DefaultMaxConcurrent
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Orchestrator{
		agents:  agents,
		repo:    repo,
		timeout: timeout,
		gate:    make(chan struct{}, limit),
	}
}

// AvailableAgents returns the metadata of every registered agent in category
// ordinal order.
func (o *Orchestrator) AvailableAgents() []AgentInfo {
	infos := make([]AgentInfo, 0, len(o.agents))
	for _, cat := range categoryOrder {
		if agent, ok := o.agents[cat]; ok {
			infos = append(infos, agent.Describe())
		}
	}
	return infos
}

// ExecuteResearch runs one agent per requested category, with duplicates
// collapsed, and returns exactly one Result per category regardless of
// individual failures or timeouts. It does not return until every task has
// settled; a failure in one category never aborts its siblings.
func (o *Orchestrator) ExecuteResearch(ctx context.Context, req Request) (map[Category]Result, error) {
	categories := dedupe(req.Categories)
	if len(categories) == 0 {
		return nil, errNoCategories
	}

	input := o.buildInput(req)
	timeout := o.timeout
	if req.Timeout > 0 {
		timeout = req.Timeout
	}

	slog.Info("starting research batch",
		"categories", len(categories),
		"input_type", input.InputType,
		"timeout", timeout,
	)

	results := make(map[Category]Result, len(categories))
	var mu sync.Mutex

	var g errgroup.Group
	for _, cat := range categories {
		cat := cat
		g.Go(func() error {
			o.gate <- struct{}{}
			defer func() { <-o.gate }()

			res := o.runOne(ctx, cat, input, timeout)
			mu.Lock()
			results[cat] = res
			mu.Unlock()
			return nil
		})
	}
	// Join barrier: tasks never return errors, so Wait only blocks.
	_ = g.Wait()

	o.persist(ctx, req, input, results)

	return results, nil
}

// ExecuteSingle runs one category synchronously, sharing the batch path's
// timeout and failure-capture logic but skipping the gate and join machinery.
func (o *Orchestrator) ExecuteSingle(ctx context.Context, category Category, req Request) Result {
	input := o.buildInput(req)
	timeout := o.timeout
	if req.Timeout > 0 {
		timeout = req.Timeout
	}
	return o.runOne(ctx, category, input, timeout)
}

func (o *Orchestrator) buildInput(req Request) Input {
	inputType := req.InputType
	if inputType == "" {
		inputType = DetectInputType(req.Query)
	}
	return Input{
		Query:     req.Query,
		InputType: inputType,
		Context:   req.Context,
	}
}

// runOne executes a single category under the per-task deadline. Every
// failure kind is converted into a failed Result: an absent agent, deadline
// expiry, and agent panics all settle the category without touching siblings.
func (o *Orchestrator) runOne(ctx context.Context, category Category, input Input, timeout time.Duration) Result {
	agent, ok := o.agents[category]
	if !ok {
		slog.Warn("no agent registered", "category", category)
		return FailedResult(category, reasonUnknownCategory, 0)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	done := make(chan Result, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- FailedResult(category, fmt.Sprintf("agent panic: %v", r), time.Since(start))
			}
		}()
		done <- agent.Research(ctx, input)
	}()

	select {
	case res := <-done:
		return res
	case <-ctx.Done():
		// Only this task's wait is cancelled; the agent goroutine may
		// still be draining and siblings are unaffected.
		slog.Warn("research timed out", "category", category, "timeout", timeout)
		return FailedResult(category, reasonTimedOut, time.Since(start))
	}
}

// persist saves each result best-effort. A storage failure is logged and
// never alters a result or fails the batch.
func (o *Orchestrator) persist(ctx context.Context, req Request, input Input, results map[Category]Result) {
	if o.repo == nil {
		return
	}
	for _, cat := range SortedCategories(results) {
		res := results[cat]
		entry := NewEntry(req.ProjectID, req.UserID, input, res)
		if err := o.repo.Create(ctx, entry); err != nil {
			slog.Warn("failed to persist research result",
				"category", cat,
				"entry_id", entry.ID,
				"error", err,
			)
		}
	}
}

func dedupe(categories []Category) []Category {
	seen := make(map[Category]struct{}, len(categories))
	out := make([]Category, 0, len(categories))
	for _, c := range categories {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// SortedCategories returns the keys of a result map in category ordinal
// order, for callers that need a deterministic re-serialization order.
func SortedCategories(results map[Category]Result) []Category {
	out := make([]Category, 0, len(results))
	for c := range results {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return ordinal(out[i]) < ordinal(out[j]) })
	return out
}
