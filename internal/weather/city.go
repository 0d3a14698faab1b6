package weather

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultCity is used when a caller does not name a city.
const DefaultCity = "서울"

var validate = validator.New()

var koreanCities = []City{
	{Name: "서울", Coordinate: Coordinate{Latitude: 37.5665, Longitude: 126.9780}},
	{Name: "부산", Coordinate: Coordinate{Latitude: 35.1796, Longitude: 129.0756}},
	{Name: "인천", Coordinate: Coordinate{Latitude: 37.4563, Longitude: 126.7052}},
	{Name: "대구", Coordinate: Coordinate{Latitude: 35.8714, Longitude: 128.6014}},
	{Name: "대전", Coordinate: Coordinate{Latitude: 36.3504, Longitude: 127.3845}},
	{Name: "광주", Coordinate: Coordinate{Latitude: 35.1595, Longitude: 126.8526}},
	{Name: "울산", Coordinate: Coordinate{Latitude: 35.5384, Longitude: 129.3114}},
	{Name: "제주", Coordinate: Coordinate{Latitude: 33.4996, Longitude: 126.5312}},
}

var defaultRegistry = mustRegistry(koreanCities...)

// UnknownCityError is returned by Resolve when the name is not registered.
type UnknownCityError struct {
	Name      string
	Available []string
}

func (e *UnknownCityError) Error() string {
	return fmt.Sprintf("'%s'은(는) 지원하지 않는 도시입니다. 사용 가능한 도시: %s",
		e.Name, strings.Join(e.Available, ", "))
}

// Registry is a fixed, ordered set of cities. It is never mutated after
// construction and is safe for concurrent use.
type Registry struct {
	cities []City
	index  map[string]Coordinate
}

// NewRegistry builds a registry preserving the given order.
func NewRegistry(cities ...City) (*Registry, error) {
	if len(cities) == 0 {
		return nil, errors.New("registry requires at least one city")
	}

	r := &Registry{
		cities: make([]City, 0, len(cities)),
		index:  make(map[string]Coordinate, len(cities)),
	}
	for _, c := range cities {
		if err := validate.Struct(c); err != nil {
			return nil, fmt.Errorf("invalid city %q: %w", c.Name, err)
		}
		if _, exists := r.index[c.Name]; exists {
			return nil, fmt.Errorf("duplicate city %q", c.Name)
		}
		r.index[c.Name] = c.Coordinate
		r.cities = append(r.cities, c)
	}
	return r, nil
}

func mustRegistry(cities ...City) *Registry {
	r, err := NewRegistry(cities...)
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultRegistry returns the eight supported Korean cities.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Resolve returns the coordinate for an exact, case-sensitive name match.
func (r *Registry) Resolve(name string) (Coordinate, error) {
	coord, ok := r.index[name]
	if !ok {
		return Coordinate{}, &UnknownCityError{Name: name, Available: r.Names()}
	}
	return coord, nil
}

// Names returns city names in declaration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.cities))
	for i, c := range r.cities {
		names[i] = c.Name
	}
	return names
}

// Cities returns a copy of the registered cities in declaration order.
func (r *Registry) Cities() []City {
	out := make([]City, len(r.cities))
	copy(out, r.cities)
	return out
}
