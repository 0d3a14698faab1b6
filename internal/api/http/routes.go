package httpapi

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-mcp/internal/weather"
)

var validate = validator.New()

const (
	formatJSON = "json"
	formatText = "text"
)

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/cities", func(c *fiber.Ctx) error {
		q, err := parseCitiesQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if q.Format == formatText {
			return c.SendString(service.ListCities())
		}
		return c.JSON(fiber.Map{
			"cities": service.Registry().Cities(),
		})
	})

	v1.Get("/weather/current", func(c *fiber.Ctx) error {
		q, err := parseWeatherQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if q.Format == formatText {
			return c.SendString(service.Lookup(c.UserContext(), q.City))
		}

		report, err := service.Report(c.UserContext(), q.City)
		if err != nil {
			var unknown *weather.UnknownCityError
			if errors.As(err, &unknown) {
				return fiber.NewError(fiber.StatusNotFound, unknown.Error())
			}
			return fiber.NewError(fiber.StatusBadGateway, "날씨 정보를 가져오는 중 오류가 발생했습니다: "+err.Error())
		}

		return c.JSON(report)
	})
}

// weatherQuery holds query parameters for the current-weather endpoint.
type weatherQuery struct {
	City   string `validate:"required,max=64"`
	Format string `validate:"oneof=json text"`
}

func parseWeatherQuery(c *fiber.Ctx) (weatherQuery, error) {
	q := weatherQuery{
		City:   c.Query("city", weather.DefaultCity),
		Format: c.Query("format", formatJSON),
	}

	if err := validate.Struct(q); err != nil {
		return q, err
	}
	return q, nil
}

type citiesQuery struct {
	Format string `validate:"oneof=json text"`
}

func parseCitiesQuery(c *fiber.Ctx) (citiesQuery, error) {
	q := citiesQuery{Format: c.Query("format", formatJSON)}
	if err := validate.Struct(q); err != nil {
		return q, err
	}
	return q, nil
}
