package sensing

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/config"
	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/contracts"
)

// Aggregator collects batches from all agents into one buffer,
// deduplicating near-identical detections inside a sliding window and
// capping memory at a fixed buffer size. Safe for concurrent agents.
type Aggregator struct {
	window    time.Duration
	maxBuffer int

	mu     sync.Mutex
	buffer []Event
	seen   map[string]time.Time
}

func NewAggregator(cfg config.SensingConfig) *Aggregator {
	return &Aggregator{
		window:    time.Duration(cfg.DedupWindowSeconds) * time.Second,
		maxBuffer: cfg.MaxEventBuffer,
		seen:      make(map[string]time.Time),
	}
}

// AddBatch merges a batch into the buffer and reports how many events
// survived deduplication.
func (a *Aggregator) AddBatch(batch Batch) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	added := 0
	for _, ev := range batch.Events {
		if a.addLocked(ev) {
			added++
		}
	}
	if added > 0 {
		slog.Info("events aggregated", "agent", batch.Agent, "added", added, "buffer", len(a.buffer))
	}
	return added
}

func (a *Aggregator) addLocked(ev Event) bool {
	sig := ev.Signature()
	if last, ok := a.seen[sig]; ok && time.Since(last) < a.window {
		slog.Debug("duplicate event dropped", "title", ev.Title)
		return false
	}

	a.buffer = append(a.buffer, ev)
	a.seen[sig] = ev.DetectedAt

	if len(a.buffer) > a.maxBuffer {
		a.pruneLocked()
	}
	return true
}

// pruneLocked keeps the newest maxBuffer events.
func (a *Aggregator) pruneLocked() {
	sort.Slice(a.buffer, func(i, j int) bool {
		return a.buffer[i].Timestamp.After(a.buffer[j].Timestamp)
	})
	a.buffer = a.buffer[:a.maxBuffer]
}

// Events returns the buffered events ordered most severe first, newest
// first within the same severity.
func (a *Aggregator) Events() []Event {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]Event, len(a.buffer))
	copy(out, a.buffer)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Severity.Rank() != out[j].Severity.Rank() {
			return out[i].Severity.Rank() > out[j].Severity.Rank()
		}
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

func (a *Aggregator) EventsBySeverity(sev contracts.Severity) []Event {
	a.mu.Lock()
	defer a.mu.Unlock()

	var out []Event
	for _, ev := range a.buffer {
		if ev.Severity == sev {
			out = append(out, ev)
		}
	}
	return out
}

func (a *Aggregator) EventsByCategory(cat contracts.Category) []Event {
	a.mu.Lock()
	defer a.mu.Unlock()

	var out []Event
	for _, ev := range a.buffer {
		if ev.Category == cat {
			out = append(out, ev)
		}
	}
	return out
}

// CriticalEvents returns the high and critical severity slice of the
// buffer, unordered.
func (a *Aggregator) CriticalEvents() []Event {
	a.mu.Lock()
	defer a.mu.Unlock()

	var out []Event
	for _, ev := range a.buffer {
		if ev.Severity == contracts.SeverityCritical || ev.Severity == contracts.SeverityHigh {
			out = append(out, ev)
		}
	}
	return out
}

func (a *Aggregator) RecentEvents(within time.Duration) []Event {
	a.mu.Lock()
	defer a.mu.Unlock()

	cutoff := time.Now().Add(-within)
	var out []Event
	for _, ev := range a.buffer {
		if !ev.DetectedAt.Before(cutoff) {
			out = append(out, ev)
		}
	}
	return out
}

func (a *Aggregator) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.buffer = nil
	a.seen = make(map[string]time.Time)
}

func (a *Aggregator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.buffer)
}

type AggregatorStats struct {
	TotalEvents    int            `json:"total_events"`
	BufferCapacity int            `json:"buffer_capacity"`
	BySeverity     map[string]int `json:"events_by_severity"`
	ByCategory     map[string]int `json:"events_by_category"`
}

func (a *Aggregator) Stats() AggregatorStats {
	a.mu.Lock()
	defer a.mu.Unlock()

	stats := AggregatorStats{
		TotalEvents:    len(a.buffer),
		BufferCapacity: a.maxBuffer,
		BySeverity:     make(map[string]int),
		ByCategory:     make(map[string]int),
	}
	for _, ev := range a.buffer {
		stats.BySeverity[string(ev.Severity)]++
		stats.ByCategory[string(ev.Category)]++
	}
	return stats
}
