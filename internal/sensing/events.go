package sensing

import (
	"strings"
	"time"

	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/contracts"
)

// Event is a raw detection produced by a sensing agent, before
// normalization and enrichment.
type Event struct {
	EventID     string
	Title       string
	Description string
	SourceType  contracts.SourceType
	Category    contracts.Category
	Severity    contracts.Severity
	Location    contracts.Location
	Confidence  float64
	Keywords    []string
	SourceURL   string
	Timestamp   time.Time
	DetectedAt  time.Time
}

// Signature identifies near-identical detections for deduplication:
// same leading title, same country/city, same category.
func (e Event) Signature() string {
	title := strings.ToLower(e.Title)
	if len(title) > 50 {
		title = title[:50]
	}
	return title + "_" + e.Location.Country + "_" + e.Location.City + "_" + string(e.Category)
}

// Batch is the outcome of one sensing cycle for a single agent. A
// failed or skipped cycle yields a batch with no events.
type Batch struct {
	Agent       string
	Events      []Event
	CollectedAt time.Time
}
