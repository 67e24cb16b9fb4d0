package boundaries

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tamilNaduFeature = `{
	"type": "FeatureCollection",
	"features": [{
		"type": "Feature",
		"properties": {"name": "Tamil Nadu"},
		"geometry": {
			"type": "Polygon",
			"coordinates": [[[76.0, 8.0], [80.5, 8.0], [80.5, 13.5], [76.0, 13.5], [76.0, 8.0]]]
		}
	}]
}`

const multiPolygonFeature = `{
	"type": "FeatureCollection",
	"features": [{
		"type": "Feature",
		"properties": {"name": "Kerala"},
		"geometry": {
			"type": "MultiPolygon",
			"coordinates": [[[[74.0, 8.0], [77.5, 8.0], [77.5, 12.8], [74.0, 12.8], [74.0, 8.0]]]]
		}
	}]
}`

const emptyCollection = `{"type": "FeatureCollection", "features": []}`

func TestLookupAdminPolygon(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/boundaries", r.URL.Path)
		assert.Equal(t, "tamil nadu", r.URL.Query().Get("name"))
		w.Write([]byte(tamilNaduFeature)) //nolint:errcheck
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	region, err := c.LookupAdmin(context.Background(), "tamil nadu")
	require.NoError(t, err)

	assert.InDelta(t, 76.0, region.MinLon, 1e-9)
	assert.InDelta(t, 8.0, region.MinLat, 1e-9)
	assert.InDelta(t, 80.5, region.MaxLon, 1e-9)
	assert.InDelta(t, 13.5, region.MaxLat, 1e-9)
}

func TestLookupAdminMultiPolygon(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(multiPolygonFeature)) //nolint:errcheck
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	region, err := c.LookupAdmin(context.Background(), "kerala")
	require.NoError(t, err)
	assert.InDelta(t, 74.0, region.MinLon, 1e-9)
	assert.InDelta(t, 12.8, region.MaxLat, 1e-9)
}

func TestLookupAdminLevelFallback(t *testing.T) {
	// Level 1 has no match; level 0 does. The client must try both in order.
	var levels []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		level := r.URL.Query().Get("level")
		levels = append(levels, level)
		if level == "1" {
			w.Write([]byte(emptyCollection)) //nolint:errcheck
			return
		}
		w.Write([]byte(tamilNaduFeature)) //nolint:errcheck
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.LookupAdmin(context.Background(), "india")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "0"}, levels)
}

func TestLookupAdminNoFeatures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(emptyCollection)) //nolint:errcheck
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.LookupAdmin(context.Background(), "atlantis")
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrBoundaryUnavailable))
}

func TestLookupAdminServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.LookupAdmin(context.Background(), "anything")
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrBoundaryUnavailable))
}

func TestLookupAdminMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not": "geojson`)) //nolint:errcheck
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.LookupAdmin(context.Background(), "anything")
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrBoundaryUnavailable))
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, WithBreaker(2, time.Hour), WithRateLimit(1000))

	// Two failed lookups trip the breaker (each hits both admin levels).
	for i := 0; i < 2; i++ {
		_, err := c.LookupAdmin(context.Background(), "x")
		require.Error(t, err)
	}
	before := hits.Load()

	// Breaker open: the next call must not reach the server.
	_, err := c.LookupAdmin(context.Background(), "x")
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrBoundaryUnavailable))
	assert.Equal(t, before, hits.Load())
}

func TestBreakerClosesAfterSuccess(t *testing.T) {
	var fail atomic.Bool
	fail.Store(true)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			http.Error(w, "down", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(tamilNaduFeature)) //nolint:errcheck
	}))
	defer srv.Close()

	c := NewClient(srv.URL, WithBreaker(3, time.Hour), WithRateLimit(1000))

	_, err := c.LookupAdmin(context.Background(), "x")
	require.Error(t, err)

	fail.Store(false)
	_, err = c.LookupAdmin(context.Background(), "tamil nadu")
	assert.NoError(t, err)
}

func TestLookupAdminContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(tamilNaduFeature)) //nolint:errcheck
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(srv.URL)
	_, err := c.LookupAdmin(ctx, "tamil nadu")
	assert.Error(t, err)
}
