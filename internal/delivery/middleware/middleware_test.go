package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"reportsys/config"
	"reportsys/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T, logOutput io.Writer) (*echo.Echo, *prometheus.Registry) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Debug = true
	logger := slog.New(slog.NewJSONHandler(logOutput, nil))
	reg := prometheus.NewRegistry()

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.Use(NewMetricsMiddleware(metrics.NewHTTPMetrics(reg)).Handle)

	return e, reg
}

func observedStatuses(t *testing.T, reg *prometheus.Registry) []string {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	var statuses []string
	for _, family := range families {
		for _, m := range family.GetMetric() {
			for _, label := range m.GetLabel() {
				if label.GetName() == "status" {
					statuses = append(statuses, label.GetValue())
				}
			}
		}
	}

	return statuses
}

func TestAccessLog_RecordsHandlerError(t *testing.T) {
	var logs bytes.Buffer
	e, reg := newTestEcho(t, &logs)

	handlerErr := echo.NewHTTPError(http.StatusTeapot, "short and stout")
	e.GET("/kettle", func(c echo.Context) error {
		return handlerErr
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/kettle", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Contains(t, rec.Body.String(), "short and stout")
	assert.Equal(t, 1, bytes.Count(rec.Body.Bytes(), []byte("short and stout")))

	assert.Contains(t, logs.String(), `"error":`)
	assert.Contains(t, logs.String(), `"status":418`)
	assert.Contains(t, logs.String(), `"level":"WARN"`)

	assert.Equal(t, []string{"418"}, observedStatuses(t, reg))
}

func TestAccessLog_SuccessHasNoError(t *testing.T) {
	var logs bytes.Buffer
	e, reg := newTestEcho(t, &logs)

	e.GET("/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, logs.String(), `"error":`)
	assert.Contains(t, logs.String(), `"status":200`)
	assert.Equal(t, []string{"200"}, observedStatuses(t, reg))
}
