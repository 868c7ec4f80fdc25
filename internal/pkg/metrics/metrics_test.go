package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(ordersPlaced)
	OrderPlaced()
	assert.InDelta(t, before+1, testutil.ToFloat64(ordersPlaced), 0.0001)

	OrderStatusChanged("confirmed")
	assert.GreaterOrEqual(t, testutil.ToFloat64(orderTransitions.WithLabelValues("confirmed")), 1.0)

	CartUpserted(CartLineIncremented)
	assert.GreaterOrEqual(t, testutil.ToFloat64(cartUpserts.WithLabelValues(CartLineIncremented)), 1.0)

	EventsPublished(2, errors.New("down"))
	assert.GreaterOrEqual(t, testutil.ToFloat64(eventsPublished.WithLabelValues("error")), 2.0)

	JobRun("expire_pending_orders", true, 30*time.Millisecond)
	assert.GreaterOrEqual(t, testutil.ToFloat64(jobRuns.WithLabelValues("expire_pending_orders", "true")), 1.0)
}

func TestHandler_ExposesRegistry(t *testing.T) {
	ObserveHTTPRequest(http.MethodGet, "/api/v1/products", http.StatusOK, 12*time.Millisecond)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `foodorder_http_requests_total{method="GET",route="/api/v1/products",status="200"}`)
}
