package tools

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"

	"github.com/i474232898/weather-mcp/internal/weather"
)

type stubProvider struct {
	reading weather.Reading
	err     error
	calls   int
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Current(_ context.Context, _ weather.Coordinate) (weather.Reading, error) {
	s.calls++
	return s.reading, s.err
}

func newHandlers(p weather.Provider) *Handlers {
	log := logrus.New()
	log.SetOutput(io.Discard)
	svc := weather.NewService(weather.DefaultRegistry(), p, weather.WithLogger(log))
	return NewHandlers(svc, log)
}

func callTool(t *testing.T, h *Handlers, name string, args map[string]any) string {
	t.Helper()

	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args

	var handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)
	for _, st := range h.Tools() {
		if st.Tool.Name == name {
			handler = st.Handler
		}
	}
	if handler == nil {
		t.Fatalf("tool %s not registered", name)
	}

	result, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("tool %s returned error: %v", name, err)
	}
	if result.IsError {
		t.Fatalf("tool %s flagged result as error", name)
	}
	if len(result.Content) != 1 {
		t.Fatalf("expected one content item, got %d", len(result.Content))
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text
}

func TestToolsRegistered(t *testing.T) {
	tools := newHandlers(nil).Tools()
	if len(tools) != 2 {
		t.Fatalf("expected 2 tools, got %d", len(tools))
	}
	if tools[0].Tool.Name != GetWeatherTool || tools[1].Tool.Name != ListCitiesTool {
		t.Fatalf("unexpected tools: %s, %s", tools[0].Tool.Name, tools[1].Tool.Name)
	}

	prop, ok := tools[0].Tool.InputSchema.Properties["city"].(map[string]any)
	if !ok {
		t.Fatalf("expected city property, got %#v", tools[0].Tool.InputSchema.Properties)
	}
	if prop["default"] != weather.DefaultCity {
		t.Fatalf("expected default %q, got %v", weather.DefaultCity, prop["default"])
	}
	if len(tools[0].Tool.InputSchema.Required) != 0 {
		t.Fatalf("city must be optional, required = %v", tools[0].Tool.InputSchema.Required)
	}
}

func TestGetWeatherTool(t *testing.T) {
	p := &stubProvider{reading: weather.Reading{TemperatureC: 5.2, HumidityPct: 60, WindSpeedKmh: 3.1, WeatherCode: 0}}
	text := callTool(t, newHandlers(p), GetWeatherTool, map[string]any{"city": "서울"})

	for _, want := range []string{"서울", "5.2", "60", "3.1", "맑음"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in %q", want, text)
		}
	}
}

func TestGetWeatherToolDefaultCity(t *testing.T) {
	p := &stubProvider{reading: weather.Reading{WeatherCode: 61}}
	text := callTool(t, newHandlers(p), GetWeatherTool, nil)

	if !strings.HasPrefix(text, "서울 날씨 정보") {
		t.Fatalf("expected default city report, got %q", text)
	}
}

func TestGetWeatherToolNeverErrors(t *testing.T) {
	p := &stubProvider{err: errors.New("connection refused")}
	h := newHandlers(p)

	text := callTool(t, h, GetWeatherTool, map[string]any{"city": "제주"})
	if !strings.Contains(text, "오류가 발생했습니다") {
		t.Fatalf("expected error text, got %q", text)
	}

	text = callTool(t, h, GetWeatherTool, map[string]any{"city": "평양"})
	if !strings.Contains(text, "지원하지 않는 도시") {
		t.Fatalf("expected unknown city text, got %q", text)
	}
	if p.calls != 1 {
		t.Fatalf("expected unknown city to skip provider, got %d calls", p.calls)
	}
}

func TestListCitiesTool(t *testing.T) {
	text := callTool(t, newHandlers(nil), ListCitiesTool, nil)
	if !strings.Contains(text, "  - 서울") || !strings.Contains(text, "get_weather") {
		t.Fatalf("unexpected listing: %q", text)
	}
}

func TestServeStdioStopsOnEOF(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	svc := weather.NewService(weather.DefaultRegistry(), nil, weather.WithLogger(log))
	s := NewServer(svc, log, "test")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	in := strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"ping"}` + "\n")
	var out bytes.Buffer
	if err := ServeStdio(ctx, s, log, in, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), `"id":1`) {
		t.Fatalf("expected ping response, got %q", out.String())
	}
}
