package risk

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/config"
	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/contracts"
)

type Priority string

const (
	PriorityP1 Priority = "P1"
	PriorityP2 Priority = "P2"
	PriorityP3 Priority = "P3"
	PriorityP4 Priority = "P4"
)

type Channel string

const (
	ChannelDashboard Channel = "dashboard"
	ChannelEmail     Channel = "email"
	ChannelSMS       Channel = "sms"
	ChannelSlack     Channel = "slack"
)

var alertRecipients = map[Priority][]string{
	PriorityP1: {"exec-team", "supply-chain-vp", "risk-management"},
	PriorityP2: {"supply-chain-director", "procurement-lead"},
	PriorityP3: {"supply-chain-manager", "category-manager"},
	PriorityP4: {"supply-chain-analyst"},
}

var alertChannels = map[Priority][]Channel{
	PriorityP1: {ChannelDashboard, ChannelEmail, ChannelSMS},
	PriorityP2: {ChannelDashboard, ChannelEmail},
	PriorityP3: {ChannelDashboard, ChannelEmail},
	PriorityP4: {ChannelDashboard},
}

// Alert is a routed notification for one risk. Acknowledgement is the
// only mutation after creation.
type Alert struct {
	AlertID        string
	RiskID         string
	Priority       Priority
	Title          string
	Message        string
	Channels       []Channel
	Recipients     []string
	ActionRequired string
	CreatedAt      time.Time
	ExpiresAt      *time.Time
	Acknowledged   bool
	AcknowledgedBy string
	AcknowledgedAt *time.Time
}

func (a *Alert) Acknowledge(user string) {
	now := time.Now()
	a.Acknowledged = true
	a.AcknowledgedBy = user
	a.AcknowledgedAt = &now
}

func (a Alert) Record() contracts.AlertRecord {
	channels := make([]string, 0, len(a.Channels))
	for _, c := range a.Channels {
		channels = append(channels, string(c))
	}

	return contracts.AlertRecord{
		AlertID:        a.AlertID,
		RiskID:         a.RiskID,
		Priority:       string(a.Priority),
		Title:          a.Title,
		Message:        a.Message,
		Channels:       channels,
		Recipients:     a.Recipients,
		ActionRequired: a.ActionRequired,
		CreatedAt:      a.CreatedAt,
		ExpiresAt:      a.ExpiresAt,
		Acknowledged:   a.Acknowledged,
		AcknowledgedBy: a.AcknowledgedBy,
		AcknowledgedAt: a.AcknowledgedAt,
	}
}

// AlertGenerator applies score and level thresholds to decide which
// risks notify whom over which channels.
type AlertGenerator struct {
	criticalThreshold float64
	highThreshold     float64
	mediumThreshold   float64
}

func NewAlertGenerator(cfg config.AlertConfig) *AlertGenerator {
	return &AlertGenerator{
		criticalThreshold: cfg.CriticalThreshold,
		highThreshold:     cfg.HighThreshold,
		mediumThreshold:   cfg.MediumThreshold,
	}
}

// Generate returns nil when a risk clears no alert tier. With every
// level mapped to a tier that path is unreachable today; it is kept so
// the threshold rules stay explicit.
func (g *AlertGenerator) Generate(r Risk) *Alert {
	priority, ok := g.priorityFor(r)
	if !ok {
		slog.Debug("risk below alert threshold", "risk_id", r.RiskID)
		return nil
	}

	alert := &Alert{
		AlertID:        uuid.NewString(),
		RiskID:         r.RiskID,
		Priority:       priority,
		Title:          alertTitle(r, priority),
		Message:        alertMessage(r),
		Channels:       alertChannels[priority],
		Recipients:     alertRecipients[priority],
		ActionRequired: actionRequired(r.Urgency),
		CreatedAt:      time.Now(),
	}

	slog.Info("alert generated", "priority", priority, "title", alert.Title)
	return alert
}

// GenerateAll evaluates every risk and returns the resulting alerts
// ordered P1 first.
func (g *AlertGenerator) GenerateAll(risks []Risk) []Alert {
	var alerts []Alert
	for _, r := range risks {
		if alert := g.Generate(r); alert != nil {
			alerts = append(alerts, *alert)
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Priority < alerts[j].Priority
	})

	slog.Info("alerts generated", "alerts", len(alerts), "risks", len(risks))
	return alerts
}

// priorityFor walks the tiers top down; the first match wins. High
// risks touching a critical supplier escalate to P1.
func (g *AlertGenerator) priorityFor(r Risk) (Priority, bool) {
	score := r.Score.Composite

	if r.Level == LevelCritical || score >= g.criticalThreshold {
		return PriorityP1, true
	}

	if r.Level == LevelHigh || score >= g.highThreshold {
		if r.HasCriticalSuppliers() {
			return PriorityP1, true
		}
		return PriorityP2, true
	}

	if r.Level == LevelMedium || score >= g.mediumThreshold {
		return PriorityP3, true
	}

	if r.Level == LevelLow {
		return PriorityP4, true
	}

	return "", false
}

func alertTitle(r Risk, priority Priority) string {
	prefix := map[Priority]string{
		PriorityP1: "CRITICAL",
		PriorityP2: "HIGH",
		PriorityP3: "MEDIUM",
		PriorityP4: "LOW",
	}[priority]

	return prefix + " | " + r.Title
}

func alertMessage(r Risk) string {
	scope := r.GeographicScope
	if scope == "" {
		scope = "Not specified"
	}

	lines := []string{
		fmt.Sprintf("Risk Score: %.2f (%s)", r.Score.Composite, strings.ToUpper(string(r.Level))),
		fmt.Sprintf("Type: %s", capitalize(string(r.Type))),
		"",
		fmt.Sprintf("Description: %s", r.Description),
		"",
		fmt.Sprintf("Geographic Scope: %s", scope),
		fmt.Sprintf("Affected Suppliers: %d", r.AffectedSupplierCount()),
	}

	if count := r.AffectedSupplierCount(); count > 0 {
		names := r.SupplierNames()
		if len(names) > 3 {
			names = names[:3]
		}
		suppliers := strings.Join(names, ", ")
		if count > 3 {
			suppliers += fmt.Sprintf(" (+%d more)", count-3)
		}
		lines = append(lines, fmt.Sprintf("Suppliers: %s", suppliers))
	}

	if r.EstimatedFinancialImpact > 0 {
		lines = append(lines, fmt.Sprintf("Est. Financial Impact: $%s", formatDollars(r.EstimatedFinancialImpact)))
	}
	if r.EstimatedDelayDays > 0 {
		lines = append(lines, fmt.Sprintf("Est. Delay: %d days", r.EstimatedDelayDays))
	}

	return strings.Join(lines, "\n")
}

func actionRequired(u Urgency) string {
	switch u {
	case UrgencyImmediate:
		return "Immediate action required within 24 hours"
	case UrgencyShortTerm:
		return "Action required within 1 week"
	case UrgencyMediumTerm:
		return "Plan mitigation within 1 month"
	case UrgencyLongTerm:
		return "Add to risk register for monitoring"
	default:
		return "Review and assess appropriate response"
	}
}

type AlertSummary struct {
	TotalAlerts              int            `json:"total_alerts"`
	ByPriority               map[string]int `json:"by_priority"`
	P1Count                  int            `json:"p1_count"`
	P2Count                  int            `json:"p2_count"`
	RequiringImmediateAction int            `json:"requiring_immediate_action"`
}

func SummarizeAlerts(alerts []Alert) AlertSummary {
	summary := AlertSummary{
		TotalAlerts: len(alerts),
		ByPriority:  make(map[string]int),
	}
	for _, a := range alerts {
		summary.ByPriority[string(a.Priority)]++
		if a.Priority == PriorityP1 || a.Priority == PriorityP2 {
			summary.RequiringImmediateAction++
		}
	}
	summary.P1Count = summary.ByPriority["P1"]
	summary.P2Count = summary.ByPriority["P2"]
	return summary
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func formatDollars(v float64) string {
	s := strconv.FormatInt(int64(math.Round(v)), 10)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return s
}
