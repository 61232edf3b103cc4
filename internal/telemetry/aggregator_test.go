package telemetry

import (
	"strings"
	"sync"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"github.com/stretchr/testify/require"
)

func TestAggregator_ObserveThenRender(t *testing.T) {
	agg := NewAggregator()
	agg.Observe("GET", "/api/products", 200, 0.05)

	out, err := agg.Render()
	require.NoError(t, err)

	require.Contains(t, out, `http_request_duration_seconds_count{method="GET",route="/api/products",status_code="200"} 1`+"\n")
	require.Contains(t, out, `http_request_duration_seconds_sum{method="GET",route="/api/products",status_code="200"} 0.050000`+"\n")
	require.Contains(t, out, `http_requests_total{method="GET",route="/api/products",status_code="200"} 1`+"\n")
}

func TestAggregator_EmptyRouteIsUnknown(t *testing.T) {
	agg := NewAggregator()
	agg.Observe("GET", "", 404, 0.001)

	snapshot := agg.Snapshot()
	require.Contains(t, snapshot, Key{Method: "GET", Route: UnknownRoute, StatusCode: 404})
}

func TestAggregator_NegativeDurationCountsAsZero(t *testing.T) {
	agg := NewAggregator()
	agg.Observe("GET", "/x", 200, -3)

	b := agg.Snapshot()[Key{Method: "GET", Route: "/x", StatusCode: 200}]
	require.Zero(t, b.DurationSum)
	require.Equal(t, uint64(1), b.DurationCount)
}

func TestAggregator_OneHelpTypePairPerFamily(t *testing.T) {
	agg := NewAggregator()
	agg.Observe("GET", "/api/products", 200, 0.01)
	agg.Observe("GET", "/api/products", 500, 0.02)
	agg.Observe("POST", "/api/products", 201, 0.03)

	out, err := agg.Render()
	require.NoError(t, err)

	require.Equal(t, 1, strings.Count(out, "# HELP http_request_duration_seconds "))
	require.Equal(t, 1, strings.Count(out, "# TYPE http_request_duration_seconds summary"))
	require.Equal(t, 1, strings.Count(out, "# HELP http_requests_total "))
	require.Equal(t, 1, strings.Count(out, "# TYPE http_requests_total counter"))
	require.Equal(t, 3, strings.Count(out, "http_request_duration_seconds_sum{"))
	require.Equal(t, 3, strings.Count(out, "http_request_duration_seconds_count{"))
	require.Equal(t, 3, strings.Count(out, "http_requests_total{"))
}

func TestAggregator_RenderIsDeterministic(t *testing.T) {
	agg := NewAggregator()
	agg.Observe("POST", "/b", 201, 0.1)
	agg.Observe("GET", "/b", 200, 0.1)
	agg.Observe("GET", "/a", 500, 0.1)
	agg.Observe("GET", "/a", 200, 0.1)

	first, err := agg.Render()
	require.NoError(t, err)
	second, err := agg.Render()
	require.NoError(t, err)
	require.Equal(t, first, second)

	var counters []string
	for _, line := range strings.Split(first, "\n") {
		if strings.HasPrefix(line, "http_requests_total{") {
			counters = append(counters, line)
		}
	}
	require.Equal(t, []string{
		`http_requests_total{method="GET",route="/a",status_code="200"} 1`,
		`http_requests_total{method="GET",route="/a",status_code="500"} 1`,
		`http_requests_total{method="GET",route="/b",status_code="200"} 1`,
		`http_requests_total{method="POST",route="/b",status_code="201"} 1`,
	}, counters)
}

func TestAggregator_EscapedLabelsRoundTrip(t *testing.T) {
	agg := NewAggregator()
	route := `/api/"quoted"\path`
	agg.Observe("GET", route, 200, 0.25)
	agg.Observe("GET", route, 200, 0.5)

	out, err := agg.Render()
	require.NoError(t, err)
	require.Contains(t, out, `route="/api/\"quoted\"\\path"`)

	var parser expfmt.TextParser
	families, err := parser.TextToMetricFamilies(strings.NewReader(out))
	require.NoError(t, err)

	summary := families["http_request_duration_seconds"]
	require.NotNil(t, summary)
	require.Equal(t, dto.MetricType_SUMMARY, summary.GetType())
	require.Len(t, summary.GetMetric(), 1)

	metric := summary.GetMetric()[0]
	require.Equal(t, route, labelValue(metric, "route"))
	require.Equal(t, uint64(2), metric.GetSummary().GetSampleCount())
	require.InDelta(t, 0.75, metric.GetSummary().GetSampleSum(), 1e-9)

	counter := families["http_requests_total"]
	require.NotNil(t, counter)
	require.Equal(t, float64(2), counter.GetMetric()[0].GetCounter().GetValue())
}

func TestAggregator_ConcurrentObserve(t *testing.T) {
	agg := NewAggregator()

	const (
		workers = 32
		perG    = 250
	)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			status := 200
			if i%2 == 1 {
				status = 500
			}
			for j := 0; j < perG; j++ {
				agg.Observe("GET", "/api/products", status, 0.001)
			}
		}(i)
	}
	wg.Wait()

	var total uint64
	for _, b := range agg.Snapshot() {
		require.Equal(t, b.RequestCount, b.DurationCount)
		total += b.RequestCount
	}
	require.Equal(t, uint64(workers*perG), total)
}

func labelValue(m *dto.Metric, name string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}
