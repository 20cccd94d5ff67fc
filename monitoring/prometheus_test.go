package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordBeforeInitIsNoop(t *testing.T) {
	if clientMetrics != nil {
		t.Skip("metrics already initialised")
	}
	RecordRequest("GET", 200, time.Millisecond)
	IncreaseBroadcastCount()
	SetPendingWaits(3)
}

func TestMetrics(t *testing.T) {
	InitMetrics()
	InitMetrics()
	require.NotNil(t, clientMetrics)

	RecordRequest("GET", 200, 10*time.Millisecond)
	RecordRequest("GET", 200, 20*time.Millisecond)
	assert.Equal(t, float64(2), testutil.ToFloat64(clientMetrics.requestCount.WithLabelValues("GET", "200")))

	SetPendingWaits(5)
	assert.Equal(t, float64(5), testutil.ToFloat64(clientMetrics.pendingWaits))

	IncreaseBroadcastCount()
	assert.Equal(t, float64(1), testutil.ToFloat64(clientMetrics.broadcastCount))

	IncreaseThrottledCount()
	IncreasePanicCount()
	assert.Equal(t, float64(1), testutil.ToFloat64(clientMetrics.throttledCount))
	assert.Equal(t, float64(1), testutil.ToFloat64(clientMetrics.panicCount))

	mux := http.NewServeMux()
	RegisterMetrics(mux)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "waves_client_requests_total")
}
