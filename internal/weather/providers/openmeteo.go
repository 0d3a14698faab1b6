package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/i474232898/weather-mcp/internal/weather"
	"github.com/sony/gobreaker"
)

const (
	// DefaultOpenMeteoURL is the public forecast endpoint.
	DefaultOpenMeteoURL = "https://api.open-meteo.com/v1/forecast"

	// OpenMeteoTimezone aligns provider local time with the deployment locale.
	OpenMeteoTimezone = "Asia/Seoul"
)

var openMeteoCurrentFields = []string{
	"temperature_2m",
	"relative_humidity_2m",
	"weather_code",
	"wind_speed_10m",
}

// OpenMeteoProvider implements the weather.Provider interface for Open-Meteo.
type OpenMeteoProvider struct {
	name    string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

// OpenMeteoOption customizes an OpenMeteoProvider.
type OpenMeteoOption func(*OpenMeteoProvider)

// WithBaseURL points the provider at a different forecast endpoint.
func WithBaseURL(u string) OpenMeteoOption {
	return func(p *OpenMeteoProvider) {
		p.baseURL = u
	}
}

// WithCircuitBreaker wraps each outbound call in cb.
func WithCircuitBreaker(cb *gobreaker.CircuitBreaker) OpenMeteoOption {
	return func(p *OpenMeteoProvider) {
		p.circuit = cb
	}
}

func NewOpenMeteoProvider(client *http.Client, opts ...OpenMeteoOption) *OpenMeteoProvider {
	p := &OpenMeteoProvider{
		name:    "openmeteo",
		baseURL: DefaultOpenMeteoURL,
		client:  client,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

func (p *OpenMeteoProvider) Current(ctx context.Context, coord weather.Coordinate) (weather.Reading, error) {
	buildRequest := func(ctx context.Context) (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", strconv.FormatFloat(coord.Latitude, 'f', -1, 64))
		values.Set("longitude", strconv.FormatFloat(coord.Longitude, 'f', -1, 64))
		values.Set("current", strings.Join(openMeteoCurrentFields, ","))
		values.Set("timezone", OpenMeteoTimezone)

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	}

	resp, err := doRequest(ctx, p.client, p.circuit, buildRequest)
	if err != nil {
		return weather.Reading{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Current *struct {
			Temperature *float64 `json:"temperature_2m"`
			Humidity    *float64 `json:"relative_humidity_2m"`
			WeatherCode *int     `json:"weather_code"`
			WindSpeed   *float64 `json:"wind_speed_10m"`
		} `json:"current"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Reading{}, fmt.Errorf("decode response: %w", err)
	}

	cur := payload.Current
	switch {
	case cur == nil:
		return weather.Reading{}, fmt.Errorf("%w: current", errMissingField)
	case cur.Temperature == nil:
		return weather.Reading{}, fmt.Errorf("%w: temperature_2m", errMissingField)
	case cur.Humidity == nil:
		return weather.Reading{}, fmt.Errorf("%w: relative_humidity_2m", errMissingField)
	case cur.WeatherCode == nil:
		return weather.Reading{}, fmt.Errorf("%w: weather_code", errMissingField)
	case cur.WindSpeed == nil:
		return weather.Reading{}, fmt.Errorf("%w: wind_speed_10m", errMissingField)
	}

	return weather.Reading{
		TemperatureC: *cur.Temperature,
		HumidityPct:  *cur.Humidity,
		WindSpeedKmh: *cur.WindSpeed,
		WeatherCode:  *cur.WeatherCode,
	}, nil
}
