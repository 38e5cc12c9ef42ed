//go:build integration

package integration_test

import (
	"context"
	"encoding/json"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"

	"github.com/couchcryptid/clima/internal/adapter/kafka"
	"github.com/couchcryptid/clima/internal/cache"
	"github.com/couchcryptid/clima/internal/domain"
	"github.com/couchcryptid/clima/internal/observability"
	"github.com/couchcryptid/clima/internal/store"
	"github.com/couchcryptid/clima/internal/weather"
)

const testTopic = "test-weather-lookups"

type stubGeocoder struct{ calls int }

func (g *stubGeocoder) Search(_ context.Context, name string) ([]domain.Location, error) {
	g.calls++
	return []domain.Location{{Name: name, Country: "Brasil", Latitude: -8.05, Longitude: -34.9}}, nil
}

type stubForecaster struct{}

func (stubForecaster) Forecast(_ context.Context, _, _ float64) (domain.ForecastReport, error) {
	return domain.ForecastReport{
		Current: &domain.CurrentConditions{TemperatureC: 29, WindSpeedKmh: 18, WeatherCode: 80, IsDay: true, ObservedAt: "2025-11-14T10:30"},
		Daily: &domain.DailySeries{
			Dates:           []string{"2025-11-14", "2025-11-15", "2025-11-16", "2025-11-17", "2025-11-18"},
			TempMaxC:        []float64{30, 31, 30, 29, 30},
			TempMinC:        []float64{24, 24, 23, 24, 24},
			PrecipitationMm: []float64{3.2, 0, 0, 1.1, 0},
			HumidityPct:     []float64{88, 80, 79, 85, 82},
			WeatherCodes:    []int{80, 1, 1, 61, 2},
		},
	}, nil
}

// TestWeatherClientPublishesFreshResults runs a lookup through the weather
// client with a real Kafka publisher and reads the message back.
func TestWeatherClientPublishesFreshResults(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testTopic)

	logger := observability.DiscardLogger()
	metrics := observability.NewMetricsForTesting()
	clock := clockwork.NewFakeClockAt(time.Date(2025, 11, 14, 13, 30, 0, 0, time.UTC))

	publisher := kafka.NewPublisher([]string{broker}, testTopic, clock, logger)
	t.Cleanup(func() { _ = publisher.Close() })

	geocoder := &stubGeocoder{}
	c := cache.New(store.NewMemory(10), clock, logger, metrics)
	client := weather.NewClient(geocoder, stubForecaster{}, c,
		weather.WithLogger(logger),
		weather.WithMetrics(metrics),
		weather.WithLocale("en-US"),
		weather.WithPublisher(publisher),
	)

	result, err := client.FetchWeather(ctx, "Recife")
	require.NoError(t, err)
	assert.Equal(t, domain.IconUnknown, result.Icon, "code 80 has no icon")

	// A cache hit is not published again.
	_, err = client.FetchWeather(ctx, "RECIFE")
	require.NoError(t, err)
	assert.Equal(t, 1, geocoder.calls)

	consumer := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:   []string{broker},
		Topic:     testTopic,
		Partition: 0,
		MaxWait:   500 * time.Millisecond,
	})
	t.Cleanup(func() { _ = consumer.Close() })

	readCtx, readCancel := context.WithTimeout(ctx, 30*time.Second)
	defer readCancel()
	msg, err := consumer.ReadMessage(readCtx)
	require.NoError(t, err, "read published result")

	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "clima-recife", string(msg.Key))
	assert.Equal(t, "unknown", headers["icon"])
	assert.Equal(t, "2025-11-14T13:30:00Z", headers["fetched_at"])

	var published domain.WeatherResult
	require.NoError(t, json.Unmarshal(msg.Value, &published))
	assert.Equal(t, result, published)

	// Nothing else should be on the topic.
	emptyCtx, emptyCancel := context.WithTimeout(ctx, 2*time.Second)
	defer emptyCancel()
	_, err = consumer.ReadMessage(emptyCtx)
	assert.Error(t, err, "cache hit must not produce a second message")
}

func startKafka(ctx context.Context, t *testing.T) string {
	t.Helper()

	ctr, err := tckafka.Run(ctx, "confluentinc/confluent-local:7.5.0", tckafka.WithClusterID("clima-test"))
	require.NoError(t, err, "start kafka container")
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(ctr); err != nil {
			t.Logf("terminate kafka container: %v", err)
		}
	})

	brokers, err := ctr.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers)
	return brokers[0]
}

func createTopic(t *testing.T, broker, topic string) {
	t.Helper()

	conn, err := kafkago.Dial("tcp", broker)
	require.NoError(t, err)
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err)

	ctrlConn, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	require.NoError(t, err)
	defer ctrlConn.Close()

	require.NoError(t, ctrlConn.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}))
}
