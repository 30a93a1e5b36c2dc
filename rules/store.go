package rules

import (
	"fmt"
	"regexp"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Store holds the four independently-indexed rule collections plus the
// lazily-compiled regex cache. Built once at process startup via Load
// and treated as immutable thereafter; safe for concurrent reads. The
// regex cache is the only mutable shared state, and golang-lru's Cache
// already serializes its own Add/Get — the "concurrent map" the design
// notes ask for, reused for its intended purpose rather than hand-rolled.
type Store struct {
	Primary  map[string]Rule
	Combined []Rule
	Branch   []Rule

	// auxiliary buckets, held but not consulted by the core matcher
	Input   map[string]Rule
	Prefix  []Rule
	Pair    []Rule
	Dialect map[string][]Rule

	patternCache *lru.Cache[string, *regexp.Regexp]
}

// DefaultPatternCacheSize bounds the regex cache. The catalog is a few
// hundred rules at most, so this is sized generously rather than tight;
// there is no eviction requirement per the spec, only a cap to keep the
// cache from growing unbounded if callers probe many ad-hoc patterns.
const DefaultPatternCacheSize = 4096

func newStore() *Store {
	cache, err := lru.New[string, *regexp.Regexp](DefaultPatternCacheSize)
	if err != nil {
		// DefaultPatternCacheSize is a positive constant; lru.New only
		// errors on size <= 0.
		panic(fmt.Sprintf("rules: could not allocate pattern cache: %v", err))
	}
	return &Store{
		Primary:      make(map[string]Rule),
		Input:        make(map[string]Rule),
		Dialect:      make(map[string][]Rule),
		patternCache: cache,
	}
}

// compiledPattern compiles (or returns the cached compilation of) the
// disjunction regex for pattern. Readers that race to compile the same
// pattern are fine: compilation is pure and idempotent, so the last
// writer simply overwrites an equivalent entry.
func (s *Store) compiledPattern(pattern string) (*regexp.Regexp, error) {
	if re, ok := s.patternCache.Get(pattern); ok {
		return re, nil
	}
	re, err := compileDisjunction(pattern)
	if err != nil {
		return nil, err
	}
	s.patternCache.Add(pattern, re)
	return re, nil
}
