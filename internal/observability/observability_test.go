package observability

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestNewLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, "info", "json")

	logger.Debug("dropped")
	logger.Info("lookup", "city", "Recife")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "lookup", line["msg"])
	assert.Equal(t, "Recife", line["city"])
}

func TestNewLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	NewLoggerTo(&buf, "debug", "text").Debug("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestNewMetricsForTesting_Independent(t *testing.T) {
	a := NewMetricsForTesting()
	b := NewMetricsForTesting()

	a.Lookups.WithLabelValues("fresh").Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.Lookups.WithLabelValues("fresh")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Lookups.WithLabelValues("fresh")))
}
