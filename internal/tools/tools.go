// Package tools exposes the weather service as MCP tools.
package tools

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/i474232898/weather-mcp/internal/logging"
	"github.com/i474232898/weather-mcp/internal/weather"
)

const (
	ServerName = "weather-server"

	GetWeatherTool = "get_weather"
	ListCitiesTool = "list_cities"
)

// Handlers holds the tool handlers bound to a weather service.
type Handlers struct {
	service *weather.Service
	logger  logrus.FieldLogger
}

func NewHandlers(service *weather.Service, logger logrus.FieldLogger) *Handlers {
	return &Handlers{service: service, logger: logger}
}

// GetWeather returns the formatted report for the requested city. The
// result is always text; failures are rendered by the service.
func (h *Handlers) GetWeather(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	city := req.GetString("city", weather.DefaultCity)
	h.logger.WithField("tool", GetWeatherTool).WithField("city", city).Debug("tool called")
	return mcp.NewToolResultText(h.service.Lookup(ctx, city)), nil
}

// ListCities returns the supported city list.
func (h *Handlers) ListCities(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.logger.WithField("tool", ListCitiesTool).Debug("tool called")
	return mcp.NewToolResultText(h.service.ListCities()), nil
}

// Tools returns the tool definitions paired with their handlers.
func (h *Handlers) Tools() []server.ServerTool {
	names := h.service.Registry().Names()

	getWeather := mcp.NewTool(GetWeatherTool,
		mcp.WithDescription("특정 도시의 현재 날씨 정보를 가져옵니다."),
		mcp.WithString("city",
			mcp.Description(fmt.Sprintf("도시 이름 (%s 중 선택)", strings.Join(names, ", "))),
			mcp.DefaultString(weather.DefaultCity),
		),
	)

	listCities := mcp.NewTool(ListCitiesTool,
		mcp.WithDescription("사용 가능한 도시 목록을 반환합니다."),
	)

	return []server.ServerTool{
		{Tool: getWeather, Handler: h.GetWeather},
		{Tool: listCities, Handler: h.ListCities},
	}
}

// NewServer builds an MCP server with the weather tools registered.
func NewServer(service *weather.Service, logger logrus.FieldLogger, version string) *server.MCPServer {
	s := server.NewMCPServer(ServerName, version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	s.AddTools(NewHandlers(service, logger).Tools()...)
	return s
}

// ServeStdio runs the MCP JSON-RPC loop on in/out until ctx is done or in
// is closed. Protocol errors are logged through logger.
func ServeStdio(ctx context.Context, s *server.MCPServer, logger *logrus.Logger, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s)
	stdio.SetErrorLogger(logging.StdLogger(logger, logrus.ErrorLevel))

	logger.WithField("server", ServerName).Info("serving tools over stdio")
	if err := stdio.Listen(ctx, in, out); err != nil && ctx.Err() == nil {
		return fmt.Errorf("stdio server: %w", err)
	}
	return nil
}
