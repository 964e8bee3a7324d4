package calculation

import (
	"sync"

	"github.com/fipath/fi-calculator/internal/domain"
)

// DefaultCacheSize is the number of recent results a MemoizingProjector keeps.
const DefaultCacheSize = 32

type cacheEntry struct {
	key    string
	result *domain.ProjectionResult
}

// MemoizingProjector caches the most recent projections keyed by input equality.
// Results are shared between callers and must be treated as read-only.
// Errors are never cached.
type MemoizingProjector struct {
	next     Projector
	size     int
	OnLookup func(hit bool)

	mu      sync.Mutex
	entries []cacheEntry // most recent first
}

// NewMemoizingProjector wraps next with a cache of up to size results.
func NewMemoizingProjector(next Projector, size int) *MemoizingProjector {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &MemoizingProjector{next: next, size: size}
}

// Project returns a cached result for an equal input or computes a fresh one.
func (mp *MemoizingProjector) Project(in domain.ProjectionInput) (*domain.ProjectionResult, error) {
	key := in.Key()

	if res, ok := mp.lookup(key); ok {
		mp.report(true)
		return res, nil
	}
	mp.report(false)

	res, err := mp.next.Project(in)
	if err != nil {
		return nil, err
	}
	mp.store(key, res)
	return res, nil
}

// Len returns the number of cached results.
func (mp *MemoizingProjector) Len() int {
	mp.mu.Lock()
	defer mp.mu.Unlock()
	return len(mp.entries)
}

func (mp *MemoizingProjector) lookup(key string) (*domain.ProjectionResult, bool) {
	mp.mu.Lock()
	defer mp.mu.Unlock()
	for i, e := range mp.entries {
		if e.key == key {
			copy(mp.entries[1:i+1], mp.entries[:i])
			mp.entries[0] = e
			return e.result, true
		}
	}
	return nil, false
}

func (mp *MemoizingProjector) store(key string, res *domain.ProjectionResult) {
	mp.mu.Lock()
	defer mp.mu.Unlock()
	for _, e := range mp.entries {
		if e.key == key {
			return
		}
	}
	mp.entries = append([]cacheEntry{{key: key, result: res}}, mp.entries...)
	if len(mp.entries) > mp.size {
		mp.entries = mp.entries[:mp.size]
	}
}

func (mp *MemoizingProjector) report(hit bool) {
	if mp.OnLookup != nil {
		mp.OnLookup(hit)
	}
}
