package weather

import (
	"time"
)

// Condition represents a normalized high-level weather condition.
type Condition string

const (
	ConditionUnknown Condition = "unknown"
	ConditionClear   Condition = "clear"
	ConditionCloudy  Condition = "cloudy"
	ConditionRain    Condition = "rain"
	ConditionSnow    Condition = "snow"
	ConditionStorm   Condition = "storm"
	ConditionMist    Condition = "mist"
)

// Coordinate is a latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// City is a supported lookup target.
type City struct {
	Name       string     `json:"name" validate:"required"`
	Coordinate Coordinate `json:"coordinate"`
}

// Reading is the provider's current conditions for one coordinate.
// Values are passed through from the provider without range checks.
type Reading struct {
	TemperatureC float64
	HumidityPct  float64
	WindSpeedKmh float64
	WeatherCode  int
}

// Report is the normalized result of a single lookup.
type Report struct {
	City        string     `json:"city"`
	Coordinate  Coordinate `json:"coordinate"`
	Temperature float64    `json:"temperatureC"`
	Humidity    float64    `json:"humidityPercent"`
	WindSpeed   float64    `json:"windSpeedKmh"`
	WeatherCode int        `json:"weatherCode"`
	Description string     `json:"description"`
	Condition   Condition  `json:"condition"`
	RetrievedAt time.Time  `json:"retrievedAt"` // local time of assembly
}
