package services

import "sync"

// Fetcher serializes overlapping fetches for one piece of displayed
// state: the result of a fetch commits only if no newer fetch began in
// the meantime, so rapid filter/range changes cannot leave a stale
// response on screen regardless of which round-trip finishes last.
type Fetcher struct {
	mu  sync.Mutex
	gen uint64
}

// Begin marks the start of a fetch and returns its generation
func (f *Fetcher) Begin() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gen++
	return f.gen
}

// Commit runs apply only if gen still is the latest generation. Returns
// whether the result was applied.
func (f *Fetcher) Commit(gen uint64, apply func()) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.gen {
		return false
	}
	apply()
	return true
}
