package workers

import (
	"context"
	"sync"
	"time"

	"frontend-go/config"
	"frontend-go/models"
	"frontend-go/services"
)

// StatsRefresher keeps a warm snapshot of the dashboard aggregation so
// the admin dashboard renders without waiting on the API, refreshing it
// on a ticker and on demand when an admin switches range. Commits go
// through a generation guard: when range switches overlap, the snapshot
// always ends up holding the last-requested range.
type StatsRefresher struct {
	Interval time.Duration

	mu       sync.RWMutex
	token    string
	rng      string
	snapshot *models.DashboardStats
	fetcher  services.Fetcher
	stop     chan struct{}
}

func NewStatsRefresher(interval time.Duration) *StatsRefresher {
	return &StatsRefresher{
		Interval: interval,
		rng:      "month",
		stop:     make(chan struct{}),
	}
}

func (s *StatsRefresher) Start() {
	ticker := time.NewTicker(s.Interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.refresh()
			case <-s.stop:
				return
			}
		}
	}()
}

func (s *StatsRefresher) Stop() {
	close(s.stop)
}

// Refresh switches the refresher to the given range/token and fetches
// immediately. Called from the dashboard when the range picker changes.
func (s *StatsRefresher) Refresh(token, statsRange string) {
	s.mu.Lock()
	s.token = token
	s.rng = statsRange
	s.mu.Unlock()
	s.refresh()
}

// Snapshot returns the last committed stats, nil before the first fetch
func (s *StatsRefresher) Snapshot() (*models.DashboardStats, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot, s.rng
}

func (s *StatsRefresher) refresh() {
	s.mu.RLock()
	token, rng := s.token, s.rng
	s.mu.RUnlock()

	if token == "" {
		// no admin has visited the dashboard yet
		return
	}

	gen := s.fetcher.Begin()

	ctx, cancel := context.WithTimeout(context.Background(), config.APITimeout)
	defer cancel()

	stats, err := services.GetStats(ctx, token, rng)
	if err != nil {
		config.Log.WithError(err).WithField("range", rng).Warn("Refresh statistik dashboard gagal")
		return
	}

	applied := s.fetcher.Commit(gen, func() {
		s.mu.Lock()
		s.snapshot = &stats
		s.mu.Unlock()
	})
	if !applied {
		config.Log.WithField("range", rng).Debug("Respons statistik basi dibuang")
	}
}
