package sensing

import (
	"context"
	"log/slog"
	"time"
)

// Agent is a source of raw disruption events. Implementations must be
// safe to call repeatedly; each Sense call is one detection cycle.
type Agent interface {
	Name() string
	Enabled() bool
	Sense(ctx context.Context) ([]Event, error)
}

// RunCycle executes one sensing cycle for an agent. Disabled agents and
// failed cycles both produce an empty batch so one broken source never
// stalls the rest of the pipeline.
func RunCycle(ctx context.Context, agent Agent) Batch {
	batch := Batch{Agent: agent.Name(), CollectedAt: time.Now()}

	if !agent.Enabled() {
		slog.Debug("agent disabled, skipping cycle", "agent", agent.Name())
		return batch
	}

	events, err := agent.Sense(ctx)
	if err != nil {
		slog.Error("sensing cycle failed", "agent", agent.Name(), "error", err)
		return batch
	}

	if len(events) > 0 {
		slog.Info("sensing cycle detected events", "agent", agent.Name(), "count", len(events))
	}
	batch.Events = events
	return batch
}
