package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const configPathEnv = "SUPPLYCHAIN_CONFIG"

type Config struct {
	HTTPAddr string         `yaml:"http_addr"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Alerts   AlertConfig    `yaml:"alerts"`
	Sensing  SensingConfig  `yaml:"sensing"`
	Recovery RecoveryConfig `yaml:"recovery"`
	Drafting DraftingConfig `yaml:"drafting"`
	Pipeline PipelineConfig `yaml:"pipeline"`
}

// ScoringConfig holds the composite weights. They should sum to 1.0;
// the scorer does not renormalize.
type ScoringConfig struct {
	SeverityWeight    float64 `yaml:"severity_weight"`
	CriticalityWeight float64 `yaml:"criticality_weight"`
	FinancialWeight   float64 `yaml:"financial_weight"`
	GeographicWeight  float64 `yaml:"geographic_weight"`
}

type AlertConfig struct {
	CriticalThreshold float64 `yaml:"critical_threshold"`
	HighThreshold     float64 `yaml:"high_threshold"`
	MediumThreshold   float64 `yaml:"medium_threshold"`
}

type SensingConfig struct {
	DedupWindowSeconds  int                `yaml:"dedup_window_seconds"`
	MaxEventBuffer      int                `yaml:"max_event_buffer"`
	ConfidenceThreshold float64            `yaml:"confidence_threshold"`
	News                NewsAgentConfig    `yaml:"news"`
	Weather             WeatherAgentConfig `yaml:"weather"`
}

type NewsAgentConfig struct {
	Enabled bool `yaml:"enabled"`
}

type WeatherAgentConfig struct {
	Enabled           bool     `yaml:"enabled"`
	MonitoredTypes    []string `yaml:"monitored_types"`
	SeverityThreshold string   `yaml:"severity_threshold"`
}

type RecoveryConfig struct {
	MaxLeadTimeDays int     `yaml:"max_lead_time_days"`
	MinQualityScore float64 `yaml:"min_quality_score"`
	MaxCandidates   int     `yaml:"max_candidates"`
}

type DraftingConfig struct {
	BaseOrderValue float64 `yaml:"base_order_value"`
	BuyerName      string  `yaml:"buyer_name"`
	BuyerAddress   string  `yaml:"buyer_address"`
	ReviewNotes    bool    `yaml:"review_notes"`
}

type PipelineConfig struct {
	MaxEventsPerCycle   int `yaml:"max_events_per_cycle"`
	MaxRisksForPlanning int `yaml:"max_risks_for_planning"`
	MaxContracts        int `yaml:"max_contracts"`
}

func Default() Config {
	return Config{
		HTTPAddr: ":8080",
		Scoring: ScoringConfig{
			SeverityWeight:    0.30,
			CriticalityWeight: 0.30,
			FinancialWeight:   0.20,
			GeographicWeight:  0.20,
		},
		Alerts: AlertConfig{
			CriticalThreshold: 0.8,
			HighThreshold:     0.6,
			MediumThreshold:   0.4,
		},
		Sensing: SensingConfig{
			DedupWindowSeconds:  300,
			MaxEventBuffer:      100,
			ConfidenceThreshold: 0.5,
			News:                NewsAgentConfig{Enabled: true},
			Weather: WeatherAgentConfig{
				Enabled:           true,
				MonitoredTypes:    []string{"cyclone", "flood", "earthquake", "storm", "hurricane"},
				SeverityThreshold: "medium",
			},
		},
		Recovery: RecoveryConfig{
			MaxLeadTimeDays: 30,
			MinQualityScore: 0.7,
			MaxCandidates:   5,
		},
		Drafting: DraftingConfig{
			BaseOrderValue: 50_000,
			BuyerName:      "ACME Corporation",
			BuyerAddress:   "123 Industrial Way, Chicago, IL 60601",
			ReviewNotes:    true,
		},
		Pipeline: PipelineConfig{
			MaxEventsPerCycle:   5,
			MaxRisksForPlanning: 3,
			MaxContracts:        2,
		},
	}
}

// Load layers an optional YAML file (path in SUPPLYCHAIN_CONFIG) and
// environment overrides on top of the defaults.
func Load() Config {
	cfg := Default()

	if path := os.Getenv(configPathEnv); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			slog.Warn("config file unreadable, using defaults", "path", path, "error", err)
		} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
			slog.Warn("config file invalid, using defaults", "path", path, "error", err)
			cfg = Default()
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	c.HTTPAddr = getEnv("HTTP_ADDR", c.HTTPAddr)

	c.Alerts.CriticalThreshold = getEnvFloat("ALERT_CRITICAL_THRESHOLD", c.Alerts.CriticalThreshold)
	c.Alerts.HighThreshold = getEnvFloat("ALERT_HIGH_THRESHOLD", c.Alerts.HighThreshold)
	c.Alerts.MediumThreshold = getEnvFloat("ALERT_MEDIUM_THRESHOLD", c.Alerts.MediumThreshold)

	c.Sensing.DedupWindowSeconds = getEnvInt("SENSING_DEDUP_WINDOW_SECONDS", c.Sensing.DedupWindowSeconds)
	c.Sensing.MaxEventBuffer = getEnvInt("SENSING_MAX_EVENT_BUFFER", c.Sensing.MaxEventBuffer)
	c.Sensing.ConfidenceThreshold = getEnvFloat("SENSING_CONFIDENCE_THRESHOLD", c.Sensing.ConfidenceThreshold)

	c.Recovery.MaxLeadTimeDays = getEnvInt("RECOVERY_MAX_LEAD_TIME_DAYS", c.Recovery.MaxLeadTimeDays)
	c.Recovery.MinQualityScore = getEnvFloat("RECOVERY_MIN_QUALITY_SCORE", c.Recovery.MinQualityScore)
	c.Recovery.MaxCandidates = getEnvInt("RECOVERY_MAX_CANDIDATES", c.Recovery.MaxCandidates)

	c.Drafting.BaseOrderValue = getEnvFloat("DRAFTING_BASE_ORDER_VALUE", c.Drafting.BaseOrderValue)
	c.Drafting.BuyerName = getEnv("DRAFTING_BUYER_NAME", c.Drafting.BuyerName)

	c.Pipeline.MaxEventsPerCycle = getEnvInt("PIPELINE_MAX_EVENTS", c.Pipeline.MaxEventsPerCycle)
	c.Pipeline.MaxRisksForPlanning = getEnvInt("PIPELINE_MAX_PLANS", c.Pipeline.MaxRisksForPlanning)
	c.Pipeline.MaxContracts = getEnvInt("PIPELINE_MAX_CONTRACTS", c.Pipeline.MaxContracts)
}

func getEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func getEnvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
