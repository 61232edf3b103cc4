package security

import (
	"context"
	"sync"
	"time"
)

const limiterSweepInterval = 5 * time.Minute

// Limiter counts hits per key over a sliding window.
type Limiter interface {
	// Allow records a hit for key and reports whether it is within limit.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
	Close() error
}

// MemoryLimiter keeps hit timestamps in process memory.
// Limits are per instance; use RedisLimiter when running more than one replica.
type MemoryLimiter struct {
	mu      sync.Mutex
	entries map[string]*hitLog
	now     func() time.Time
	stopCh  chan struct{}
	once    sync.Once
}

type hitLog struct {
	hits   []time.Time
	window time.Duration
}

func NewMemoryLimiter() *MemoryLimiter {
	l := &MemoryLimiter{
		entries: make(map[string]*hitLog),
		now:     time.Now,
		stopCh:  make(chan struct{}),
	}
	go l.sweepLoop()
	return l
}

func (l *MemoryLimiter) Allow(_ context.Context, key string, limit int, window time.Duration) (bool, error) {
	if limit <= 0 {
		return true, nil
	}
	if window <= 0 {
		window = time.Minute
	}
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.entries[key]
	if !ok {
		entry = &hitLog{}
		l.entries[key] = entry
	}
	entry.window = window
	entry.hits = trimBefore(entry.hits, now.Add(-window))

	if len(entry.hits) >= limit {
		return false, nil
	}
	entry.hits = append(entry.hits, now)
	return true, nil
}

// trimBefore drops hits at or before cutoff. hits is sorted ascending.
func trimBefore(hits []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(hits) && !hits[i].After(cutoff) {
		i++
	}
	if i == 0 {
		return hits
	}
	return append(hits[:0], hits[i:]...)
}

func (l *MemoryLimiter) sweepLoop() {
	ticker := time.NewTicker(limiterSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.sweep(l.now())
		case <-l.stopCh:
			return
		}
	}
}

func (l *MemoryLimiter) sweep(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, entry := range l.entries {
		entry.hits = trimBefore(entry.hits, now.Add(-entry.window))
		if len(entry.hits) == 0 {
			delete(l.entries, key)
		}
	}
}

func (l *MemoryLimiter) Close() error {
	l.once.Do(func() {
		close(l.stopCh)
	})
	return nil
}
