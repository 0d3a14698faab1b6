package weather

import (
	"context"
)

// Provider abstracts the remote current-conditions source (Open-Meteo).
type Provider interface {
	Name() string
	Current(ctx context.Context, coord Coordinate) (Reading, error)
}
