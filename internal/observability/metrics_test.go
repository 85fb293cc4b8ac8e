package observability

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/abcd-backend/internal/domain/taxonomy"
	"github.com/yungbote/abcd-backend/internal/modules/filtering"
)

func TestObserveResolution(t *testing.T) {
	m := New()

	m.ObserveResolution(filtering.Resolution{
		Registry: "taxonomy",
		Kind:     taxonomy.KindBehaviour,
		Strategy: filtering.StrategyIntersect,
		Applied:  2,
		Results:  3,
		Duration: 5 * time.Millisecond,
	})
	m.ObserveResolution(filtering.Resolution{
		Registry: "taxonomy",
		Kind:     taxonomy.KindBehaviour,
		Strategy: filtering.StrategyIntersect,
		Applied:  1,
		Err: &filtering.LookupError{
			Registry: "taxonomy",
			Target:   "behaviour",
			Facet:    "topic_ids",
			Table:    "behaviour_topic",
			Err:      errors.New("boom"),
		},
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.resolutions.WithLabelValues("taxonomy", "behaviour", "intersect", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.resolutions.WithLabelValues("taxonomy", "behaviour", "intersect", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.lookupFailures.WithLabelValues("taxonomy", "behaviour", "topic_ids")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.RequestStarted()
	m.RequestDone("GET", "/x", 200, time.Millisecond)
	m.ObserveCache("hit")
	m.ObserveResolution(filtering.Resolution{})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, 503, rec.Code)
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.RequestStarted()
	m.RequestDone("GET", "/api/catalog/:kind", 200, 10*time.Millisecond)
	m.RequestDone("GET", "", 404, time.Millisecond)
	m.ObserveCache("miss")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `abcd_http_requests_total{method="GET",route="/api/catalog/:kind",status="200"} 1`), body)
	assert.True(t, strings.Contains(body, `abcd_http_requests_total{method="GET",route="unmatched",status="404"} 1`), body)
	assert.True(t, strings.Contains(body, `abcd_filter_cache_requests_total{result="miss"} 1`))
}
