package weather

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	ruleLine        = "━━━━━━━━━━━━━━━━━━━━"
	timestampLayout = "2006-01-02 15:04:05"
)

// Service translates a city name into a rendered weather report.
type Service struct {
	registry *Registry
	provider Provider
	logger   logrus.FieldLogger
	now      func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithClock overrides the clock used for the report timestamp.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithLogger sets the logger used for lookup diagnostics.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a new Service.
func NewService(registry *Registry, provider Provider, opts ...Option) *Service {
	s := &Service{
		registry: registry,
		provider: provider,
		logger:   logrus.StandardLogger(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Registry returns the city registry backing this service.
func (s *Service) Registry() *Registry {
	return s.registry
}

// Report resolves the city, performs one provider call and returns the
// structured result. Unknown cities fail with *UnknownCityError before any
// remote call is made.
func (s *Service) Report(ctx context.Context, city string) (Report, error) {
	coord, err := s.registry.Resolve(city)
	if err != nil {
		return Report{}, err
	}

	if s.provider == nil {
		return Report{}, errors.New("no weather provider configured")
	}

	reading, err := s.provider.Current(ctx, coord)
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", s.provider.Name(), err)
	}

	return Report{
		City:        city,
		Coordinate:  coord,
		Temperature: reading.TemperatureC,
		Humidity:    reading.HumidityPct,
		WindSpeed:   reading.WindSpeedKmh,
		WeatherCode: reading.WeatherCode,
		Description: Describe(reading.WeatherCode),
		Condition:   ConditionFromCode(reading.WeatherCode),
		RetrievedAt: s.now(),
	}, nil
}

// Lookup returns the formatted report for city. It never fails: unknown
// cities and provider errors are rendered as caller-facing text.
func (s *Service) Lookup(ctx context.Context, city string) string {
	start := time.Now()
	log := s.logger.WithFields(logrus.Fields{
		"lookup_id": uuid.NewString(),
		"city":      city,
	})

	report, err := s.Report(ctx, city)
	if err != nil {
		var unknown *UnknownCityError
		if errors.As(err, &unknown) {
			log.Info("lookup rejected: unknown city")
			return unknown.Error()
		}
		log.WithError(err).WithField("duration", time.Since(start)).Warn("lookup failed")
		return fmt.Sprintf("날씨 정보를 가져오는 중 오류가 발생했습니다: %v", err)
	}

	log.WithField("duration", time.Since(start)).Debug("lookup completed")
	return FormatReport(report)
}

// ListCities renders the supported city list with a usage hint.
func (s *Service) ListCities() string {
	var b strings.Builder
	b.WriteString("날씨 조회 가능한 도시 목록:\n")
	b.WriteString(ruleLine + "\n")
	for _, name := range s.registry.Names() {
		b.WriteString("  - " + name + "\n")
	}
	b.WriteString(ruleLine + "\n")
	b.WriteString(`사용 방법: get_weather(city="도시이름")`)
	return strings.TrimSpace(b.String())
}

// FormatReport renders a report in the fixed multi-line layout.
func FormatReport(r Report) string {
	lines := []string{
		r.City + " 날씨 정보",
		ruleLine,
		"온도: " + formatNumber(r.Temperature) + "°C",
		"습도: " + formatNumber(r.Humidity) + "%",
		"풍속: " + formatNumber(r.WindSpeed) + " km/h",
		"날씨: " + r.Description,
		ruleLine,
		"조회 시간: " + r.RetrievedAt.Format(timestampLayout),
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
