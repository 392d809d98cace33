package sensing

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/config"
	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/contracts"
)

type newsScenario struct {
	title       string
	description string
	category    contracts.Category
	severity    contracts.Severity
	location    contracts.Location
	keywords    []string
}

var newsScenarios = []newsScenario{
	{
		title:       "Major Port Congestion at Singapore",
		description: "Container ship backlog at Port of Singapore reaches 3-day delays. Shipping companies report significant disruptions to Asia-Pacific routes.",
		category:    contracts.CategoryLogistics,
		severity:    contracts.SeverityHigh,
		location:    contracts.Location{Country: "Singapore", City: "Singapore", Coordinates: &contracts.Coordinates{Latitude: 1.29, Longitude: 103.85}},
		keywords:    []string{"port congestion", "shipping delay", "container backlog", "singapore"},
	},
	{
		title:       "Rotterdam Port Workers Announce Strike",
		description: "Dock workers at Europe's largest port announce 48-hour strike starting Monday. Expected to impact EU supply chains significantly.",
		category:    contracts.CategoryLabor,
		severity:    contracts.SeverityHigh,
		location:    contracts.Location{Country: "Netherlands", City: "Rotterdam", Coordinates: &contracts.Coordinates{Latitude: 51.92, Longitude: 4.48}},
		keywords:    []string{"port strike", "labor dispute", "rotterdam", "supply chain disruption"},
	},
	{
		title:       "Suez Canal Traffic Resumes After Vessel Breakdown",
		description: "Container vessel engine failure caused 12-hour blockage. Traffic now flowing but delays expected for 48 hours.",
		category:    contracts.CategoryLogistics,
		severity:    contracts.SeverityMedium,
		location:    contracts.Location{Country: "Egypt", Region: "Suez", Coordinates: &contracts.Coordinates{Latitude: 30.45, Longitude: 32.35}},
		keywords:    []string{"suez canal", "shipping route", "vessel breakdown", "maritime"},
	},
	{
		title:       "Los Angeles Port Reports Record Container Backlog",
		description: "Over 40 container ships anchored outside LA/Long Beach ports. Average wait time exceeds 7 days.",
		category:    contracts.CategoryLogistics,
		severity:    contracts.SeverityCritical,
		location:    contracts.Location{Country: "USA", Region: "California", City: "Los Angeles", Coordinates: &contracts.Coordinates{Latitude: 33.74, Longitude: -118.27}},
		keywords:    []string{"port congestion", "container backlog", "los angeles", "shipping crisis"},
	},
	{
		title:       "Rail Freight Disruption in Northern China",
		description: "Heavy snowfall halts rail freight operations across Heilongjiang province. Recovery expected in 3-4 days.",
		category:    contracts.CategoryLogistics,
		severity:    contracts.SeverityMedium,
		location:    contracts.Location{Country: "China", Region: "Heilongjiang", Coordinates: &contracts.Coordinates{Latitude: 45.75, Longitude: 126.65}},
		keywords:    []string{"rail disruption", "freight", "china", "weather impact"},
	},
	{
		title:       "Panama Canal Implements Water Restrictions",
		description: "Drought conditions force Panama Canal to reduce daily transits by 25%. Shipping companies rerouting vessels.",
		category:    contracts.CategoryInfrastructure,
		severity:    contracts.SeverityHigh,
		location:    contracts.Location{Country: "Panama", Region: "Panama Canal", Coordinates: &contracts.Coordinates{Latitude: 9.08, Longitude: -79.68}},
		keywords:    []string{"panama canal", "water restrictions", "shipping route", "transit limits"},
	},
	{
		title:       "Truck Driver Shortage Worsens in UK",
		description: "Industry reports 15% driver vacancy rate affecting retail supply chains. Delivery delays spreading nationwide.",
		category:    contracts.CategoryLabor,
		severity:    contracts.SeverityMedium,
		location:    contracts.Location{Country: "United Kingdom", Coordinates: &contracts.Coordinates{Latitude: 51.51, Longitude: -0.13}},
		keywords:    []string{"truck driver shortage", "logistics", "uk", "delivery delays"},
	},
	{
		title:       "Mumbai Port Operations Suspended Due to Cyclone Warning",
		description: "Jawaharlal Nehru Port suspends operations ahead of approaching cyclone. Container handling halted for 48 hours.",
		category:    contracts.CategoryNaturalDisaster,
		severity:    contracts.SeverityHigh,
		location:    contracts.Location{Country: "India", Region: "Maharashtra", City: "Mumbai", Coordinates: &contracts.Coordinates{Latitude: 18.95, Longitude: 72.95}},
		keywords:    []string{"port closure", "cyclone", "mumbai", "jnpt"},
	},
}

// cycleCounts skews cycles toward one detection, with occasional quiet
// cycles and occasional pairs.
var cycleCounts = []int{0, 0, 1, 1, 1, 2}

// NewsAgent simulates a news feed watcher for logistics disruptions:
// port congestion, strikes, route closures, infrastructure problems.
type NewsAgent struct {
	enabled bool
	rng     *rand.Rand
}

func NewNewsAgent(cfg config.NewsAgentConfig, rng *rand.Rand) *NewsAgent {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &NewsAgent{enabled: cfg.Enabled, rng: rng}
}

func (a *NewsAgent) Name() string  { return "news" }
func (a *NewsAgent) Enabled() bool { return a.enabled }

func (a *NewsAgent) Sense(ctx context.Context) ([]Event, error) {
	count := cycleCounts[a.rng.Intn(len(cycleCounts))]
	if count == 0 {
		return nil, nil
	}

	now := time.Now()
	events := make([]Event, 0, count)
	for _, idx := range a.rng.Perm(len(newsScenarios))[:count] {
		sc := newsScenarios[idx]
		offset := time.Duration(a.rng.Intn(31)) * time.Minute
		events = append(events, Event{
			EventID:     uuid.NewString(),
			Title:       sc.title,
			Description: sc.description,
			SourceType:  contracts.SourceNews,
			Category:    sc.category,
			Severity:    sc.severity,
			Location:    sc.location,
			Confidence:  0.70 + a.rng.Float64()*0.25,
			Keywords:    sc.keywords,
			SourceURL:   fmt.Sprintf("https://news.example.com/article/%d", 1000+a.rng.Intn(9000)),
			Timestamp:   now.Add(-offset),
			DetectedAt:  now,
		})
	}
	return events, nil
}
