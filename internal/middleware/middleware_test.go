package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Arjunram-pal/portfolio/internal/telemetry/metrics"

	"github.com/go-redis/redis_rate/v9"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRequestRateLimiter struct {
	allowedByKey map[string]int
	limit        int
	keys         []string
	err          error
}

func newTestRequestRateLimiter(limit int) *testRequestRateLimiter {
	return &testRequestRateLimiter{
		allowedByKey: map[string]int{},
		limit:        limit,
	}
}

func (l *testRequestRateLimiter) Allow(_ context.Context, key string, _ redis_rate.Limit) (*redis_rate.Result, error) {
	if l.err != nil {
		return nil, l.err
	}
	l.keys = append(l.keys, key)
	l.allowedByKey[key]++
	if l.allowedByKey[key] > l.limit {
		return &redis_rate.Result{Allowed: 0, RetryAfter: 30 * time.Second}, nil
	}
	return &redis_rate.Result{Allowed: 1}, nil
}

func TestRateLimit(t *testing.T) {
	metricsManager := metrics.NewTestManager()
	limiter := newTestRequestRateLimiter(2)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	handler := RateLimit(limiter, "contact", 2, metricsManager)(next)

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		req.Header.Set("X-Real-Ip", ip)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooEarly, send("10.0.0.1"))
	// another client has its own budget
	assert.Equal(t, http.StatusOK, send("10.0.0.2"))

	assert.Equal(t, "contact||10.0.0.1", limiter.keys[0])
	assert.Equal(t, float64(1), testutil.ToFloat64(metricsManager.CounterRateLimitedRequests))
}

func TestRateLimit_LimiterError(t *testing.T) {
	limiter := newTestRequestRateLimiter(1)
	limiter.err = errors.New("redis down")
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next must not be called")
	})

	rr := httptest.NewRecorder()
	RateLimit(limiter, "contact", 1, nil)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/contact", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestLogRequest_RequestID(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r.Context())
	})
	handler := LogRequest()(next)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, rr.Header().Get(RequestIDHeader))

	// a valid incoming id is kept
	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incoming)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, incoming, seen)

	// garbage is replaced
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.NotEqual(t, "<script>", seen)
}

func TestRequestMetrics(t *testing.T) {
	metricsManager := metrics.NewTestManager()

	r := mux.NewRouter()
	r.Use(RequestMetrics(metricsManager))
	r.HandleFunc("/blog/{id}/modal", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/blog/42/modal", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	assert.Equal(t, float64(1), testutil.ToFloat64(metricsManager.CounterRequests.WithLabelValues("GET", "404")))
	assert.Equal(t, 1, testutil.CollectAndCount(metricsManager.HistogramRequestDuration))
	assert.Equal(t, float64(0), testutil.ToFloat64(metricsManager.GaugeRequests))
}

type trackingBody struct {
	io.Reader
	closed bool
}

func (b *trackingBody) Close() error {
	b.closed = true
	return nil
}

func TestDrainAndCloseRequest(t *testing.T) {
	body := &trackingBody{Reader: strings.NewReader("unread body")}
	req := httptest.NewRequest(http.MethodPost, "/contact", nil)
	req.Body = body

	DrainAndCloseRequest()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).
		ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, body.closed)
	rest, _ := io.ReadAll(body.Reader)
	assert.Empty(t, rest)
}
