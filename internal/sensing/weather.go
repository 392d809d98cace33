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

type weatherScenario struct {
	title       string
	description string
	severity    contracts.Severity
	weatherType string
	location    contracts.Location
	keywords    []string
}

var weatherScenarios = []weatherScenario{
	{
		title:       "Typhoon Approaching Taiwan Strait",
		description: "Category 4 typhoon expected to impact shipping lanes in Taiwan Strait within 48 hours. Wind speeds exceeding 200 km/h.",
		severity:    contracts.SeverityCritical,
		weatherType: "cyclone",
		location:    contracts.Location{Country: "Taiwan", Region: "Taiwan Strait", Coordinates: &contracts.Coordinates{Latitude: 24.5, Longitude: 121.0}},
		keywords:    []string{"typhoon", "taiwan", "shipping lane", "severe weather"},
	},
	{
		title:       "Severe Flooding in Bangkok Industrial Zone",
		description: "Monsoon rains cause widespread flooding in eastern Bangkok. Multiple manufacturing facilities report operations suspended.",
		severity:    contracts.SeverityHigh,
		weatherType: "flood",
		location:    contracts.Location{Country: "Thailand", City: "Bangkok", Coordinates: &contracts.Coordinates{Latitude: 13.75, Longitude: 100.52}},
		keywords:    []string{"flood", "manufacturing", "thailand", "monsoon"},
	},
	{
		title:       "Earthquake Disrupts Japan Supply Routes",
		description: "Magnitude 6.2 earthquake in Osaka region. Several highways and rail lines temporarily closed for inspection.",
		severity:    contracts.SeverityHigh,
		weatherType: "earthquake",
		location:    contracts.Location{Country: "Japan", Region: "Kansai", City: "Osaka", Coordinates: &contracts.Coordinates{Latitude: 34.69, Longitude: 135.50}},
		keywords:    []string{"earthquake", "japan", "infrastructure", "transport disruption"},
	},
	{
		title:       "Winter Storm Grounds Flights Across Northern Europe",
		description: "Heavy snowfall and blizzard conditions force closure of multiple airports. Air freight operations severely impacted.",
		severity:    contracts.SeverityMedium,
		weatherType: "storm",
		location:    contracts.Location{Country: "Germany", City: "Frankfurt", Coordinates: &contracts.Coordinates{Latitude: 50.11, Longitude: 8.68}},
		keywords:    []string{"winter storm", "airport closure", "air freight", "europe"},
	},
	{
		title:       "Hurricane Warning for Gulf of Mexico",
		description: "Category 3 hurricane forecast to make landfall near Houston within 72 hours. Energy sector facilities initiating evacuation.",
		severity:    contracts.SeverityCritical,
		weatherType: "hurricane",
		location:    contracts.Location{Country: "USA", Region: "Texas", City: "Houston", Coordinates: &contracts.Coordinates{Latitude: 29.76, Longitude: -95.37}},
		keywords:    []string{"hurricane", "gulf of mexico", "energy sector", "houston"},
	},
	{
		title:       "Cyclone Impacts Kolkata Port Operations",
		description: "Severe cyclonic storm causes port closure at Kolkata. Container terminal operations suspended for minimum 24 hours.",
		severity:    contracts.SeverityHigh,
		weatherType: "cyclone",
		location:    contracts.Location{Country: "India", Region: "West Bengal", City: "Kolkata", Coordinates: &contracts.Coordinates{Latitude: 22.57, Longitude: 88.36}},
		keywords:    []string{"cyclone", "port closure", "kolkata", "bay of bengal"},
	},
	{
		title:       "Volcanic Ash Cloud Disrupts Pacific Air Routes",
		description: "Mount Sakurajima eruption creates ash hazard zone. Trans-Pacific flights rerouting, adding 2-4 hours to journey times.",
		severity:    contracts.SeverityMedium,
		weatherType: "volcanic",
		location:    contracts.Location{Country: "Japan", Region: "Kagoshima", Coordinates: &contracts.Coordinates{Latitude: 31.58, Longitude: 130.66}},
		keywords:    []string{"volcano", "ash cloud", "air freight", "pacific routes"},
	},
	{
		title:       "Flash Floods Close Major Highway in Vietnam",
		description: "Sudden heavy rainfall causes flooding on Highway 1 between Ho Chi Minh City and Dong Nai. Truck traffic diverted.",
		severity:    contracts.SeverityMedium,
		weatherType: "flood",
		location:    contracts.Location{Country: "Vietnam", City: "Ho Chi Minh City", Coordinates: &contracts.Coordinates{Latitude: 10.82, Longitude: 106.63}},
		keywords:    []string{"flash flood", "highway closure", "vietnam", "logistics"},
	},
	{
		title:       "Dust Storm Reduces Visibility at Dubai Ports",
		description: "Severe dust storm impacts Jebel Ali port operations. Container handling reduced by 50% due to safety protocols.",
		severity:    contracts.SeverityLow,
		weatherType: "storm",
		location:    contracts.Location{Country: "UAE", City: "Dubai", Coordinates: &contracts.Coordinates{Latitude: 25.01, Longitude: 55.07}},
		keywords:    []string{"dust storm", "dubai", "jebel ali", "port operations"},
	},
	{
		title:       "Monsoon Causes Landslides on India-Nepal Border",
		description: "Heavy monsoon rains trigger multiple landslides blocking key trade routes between India and Nepal.",
		severity:    contracts.SeverityMedium,
		weatherType: "flood",
		location:    contracts.Location{Country: "Nepal", Region: "Kathmandu Valley", Coordinates: &contracts.Coordinates{Latitude: 27.70, Longitude: 85.32}},
		keywords:    []string{"landslide", "monsoon", "trade route", "nepal"},
	},
}

// WeatherAgent simulates a severe-weather watcher. Weather detections
// are rarer than news but carry higher confidence, and everything it
// emits lands in the natural_disaster category.
type WeatherAgent struct {
	enabled        bool
	monitoredTypes []string
	threshold      contracts.Severity
	rng            *rand.Rand
}

func NewWeatherAgent(cfg config.WeatherAgentConfig, rng *rand.Rand) *WeatherAgent {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &WeatherAgent{
		enabled:        cfg.Enabled,
		monitoredTypes: cfg.MonitoredTypes,
		threshold:      contracts.ParseSeverity(cfg.SeverityThreshold),
		rng:            rng,
	}
}

func (a *WeatherAgent) Name() string  { return "weather" }
func (a *WeatherAgent) Enabled() bool { return a.enabled }

func (a *WeatherAgent) Sense(ctx context.Context) ([]Event, error) {
	// At most one detection per cycle, 40% of the time.
	if a.rng.Float64() > 0.4 {
		return nil, nil
	}

	candidates := a.monitoredScenarios()
	if len(candidates) == 0 {
		return nil, nil
	}

	sc := candidates[a.rng.Intn(len(candidates))]
	if sc.severity.Rank() < a.threshold.Rank() {
		return nil, nil
	}

	now := time.Now()
	offset := time.Duration(a.rng.Intn(16)) * time.Minute
	return []Event{{
		EventID:     uuid.NewString(),
		Title:       sc.title,
		Description: sc.description,
		SourceType:  contracts.SourceWeather,
		Category:    contracts.CategoryNaturalDisaster,
		Severity:    sc.severity,
		Location:    sc.location,
		Confidence:  0.85 + a.rng.Float64()*0.13,
		Keywords:    sc.keywords,
		SourceURL:   fmt.Sprintf("https://weather.example.com/alert/%d", 1000+a.rng.Intn(9000)),
		Timestamp:   now.Add(-offset),
		DetectedAt:  now,
	}}, nil
}

func (a *WeatherAgent) monitoredScenarios() []weatherScenario {
	if len(a.monitoredTypes) == 0 {
		return weatherScenarios
	}
	out := make([]weatherScenario, 0, len(weatherScenarios))
	for _, sc := range weatherScenarios {
		for _, t := range a.monitoredTypes {
			if sc.weatherType == t {
				out = append(out, sc)
				break
			}
		}
	}
	return out
}
