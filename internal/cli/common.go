package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/addchain/chain"
	"github.com/katalvlaran/addchain/internal/config"
	"github.com/katalvlaran/addchain/internal/store"
	"github.com/katalvlaran/addchain/search"
)

// app carries state shared by every command of one invocation.
type app struct {
	// Global flags
	configPath string
	jsonOutput bool
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
	cache  *store.Store
}

// outcome is the printable form of one answered target.
type outcome struct {
	Length    int    `json:"length"`
	Sum       int    `json:"sum"`
	Found     bool   `json:"found"`
	Values    []int  `json:"values,omitempty"`
	Cached    bool   `json:"cached"`
	Nodes     int64  `json:"nodes,omitempty"`
	Pruned    int64  `json:"pruned,omitempty"`
	ElapsedMS int64  `json:"elapsed_ms,omitempty"`
	Error     string `json:"error,omitempty"`
}

func newOutcome(t search.Target, res *search.Result, cached bool) outcome {
	return outcome{
		Length:    t.Length,
		Sum:       t.Sum,
		Found:     res.Found,
		Values:    res.Values,
		Cached:    cached,
		Nodes:     res.Nodes,
		Pruned:    res.Pruned,
		ElapsedMS: res.Elapsed.Milliseconds(),
	}
}

// String renders the outcome the way the interactive program always has.
func (o outcome) String() string {
	if o.Error != "" {
		return "error: " + o.Error
	}
	if !o.Found {
		return "No solution."
	}

	return chain.FormatValues(o.Values)
}

// openCache opens the result cache on first use. It returns nil when the
// cache is disabled or cannot be opened; the failure is logged, not fatal.
func (a *app) openCache(useCache bool) *store.Store {
	if !useCache || !a.cfg.Cache.Enabled {
		return nil
	}
	if a.cache != nil {
		return a.cache
	}
	st, err := store.Open(a.cfg.Cache.Path)
	if err != nil {
		a.logger.Warn("result cache unavailable", zap.String("path", a.cfg.Cache.Path), zap.Error(err))
		return nil
	}
	a.cache = st

	return st
}

func (a *app) closeCache() {
	if a.cache == nil {
		return
	}
	if err := a.cache.Close(); err != nil {
		a.logger.Warn("failed to close result cache", zap.Error(err))
	}
	a.cache = nil
}

// lookup returns a cached result for t, if any.
func (a *app) lookup(ctx context.Context, st *store.Store, t search.Target) (*search.Result, bool) {
	if st == nil {
		return nil, false
	}
	e, ok, err := st.Get(ctx, t.Length, t.Sum)
	if err != nil {
		a.logger.Warn("cache lookup failed", zap.Int("length", t.Length), zap.Int("sum", t.Sum), zap.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}
	a.logger.Debug("cache hit", zap.Int("length", t.Length), zap.Int("sum", t.Sum))

	res := &search.Result{Values: e.Values, Found: e.Found}
	if e.Found {
		res.Sum = t.Sum
	}

	return res, true
}

// remember stores a fresh result.
func (a *app) remember(ctx context.Context, st *store.Store, t search.Target, res *search.Result) {
	if st == nil || res == nil {
		return
	}
	err := st.Put(ctx, store.Entry{Length: t.Length, Sum: t.Sum, Found: res.Found, Values: res.Values})
	if err != nil {
		a.logger.Warn("cache store failed", zap.Int("length", t.Length), zap.Int("sum", t.Sum), zap.Error(err))
	}
}

// searchOptions are the options every search of this invocation shares.
func (a *app) searchOptions(ctx context.Context, timeout time.Duration) []search.Option {
	return []search.Option{
		search.WithContext(ctx),
		search.WithTimeLimit(timeout),
		search.WithLogger(a.logger),
	}
}

// solveOne answers a single target from the cache or by searching.
func (a *app) solveOne(ctx context.Context, t search.Target, timeout time.Duration, useCache bool) (outcome, error) {
	st := a.openCache(useCache)
	if res, ok := a.lookup(ctx, st, t); ok {
		return newOutcome(t, res, true), nil
	}

	res, err := search.Solve(t.Length, t.Sum, a.searchOptions(ctx, timeout)...)
	if err != nil {
		return outcome{}, err
	}
	a.remember(ctx, st, t, res)

	return newOutcome(t, res, false), nil
}

// parseInt parses a positional integer argument named name.
func parseInt(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}

	return v, nil
}

// parseValues parses chain elements given as separate arguments.
func parseValues(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, s := range args {
		v, err := parseInt("chain value", s)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}
