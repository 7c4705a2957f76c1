package edge

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazemq/souschef/internal/domain"
	"github.com/hazemq/souschef/internal/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...ClientOption) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	opts = append([]ClientOption{WithBackoffBase(time.Millisecond)}, opts...)
	return NewClient(srv.URL, "test-key", logger.New(logger.LevelOff, nil), opts...)
}

func TestExtractSuccess(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/extract", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Write([]byte(`{"title":"Pad Thai","steps":["Soak noodles","Stir fry"],"shopping_list":["200g rice noodles"]}`))
	})

	r, err := c.Extract(context.Background(), "https://example.com/pad-thai")
	require.NoError(t, err)
	assert.Equal(t, "Pad Thai", r.Title)
	assert.True(t, domain.CompleteRecipe(r))
	require.NotNil(t, r.SourceURL)
	assert.Equal(t, "https://example.com/pad-thai", *r.SourceURL)
}

func TestRetryOnServerError(t *testing.T) {
	var hits atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"caption":"golden crust"}`))
	})

	caption, err := c.Caption(context.Background(), "img://1")
	require.NoError(t, err)
	assert.Equal(t, "golden crust", caption.Caption)
	assert.Equal(t, int32(3), hits.Load())
}

func TestServerErrorExhaustsRetries(t *testing.T) {
	var hits atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.Scan(context.Background(), "img://fridge")
	var rerr *domain.RequestError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, domain.RequestServerError, rerr.Kind)
	assert.Equal(t, 3, rerr.Attempts)
	assert.Equal(t, int32(3), hits.Load())
}

func TestClientErrorIsNotRetried(t *testing.T) {
	var hits atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusUnprocessableEntity)
	})

	_, err := c.Extract(context.Background(), "not a url")
	var rerr *domain.RequestError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, domain.RequestServerError, rerr.Kind)
	assert.Equal(t, http.StatusUnprocessableEntity, rerr.Status)
	assert.False(t, rerr.Transient())
	assert.Equal(t, int32(1), hits.Load())
}

func TestTimeout(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"caption":"late"}`))
	},
		WithTimeout(EndpointCaption, 20*time.Millisecond),
		WithMaxAttempts(1),
	)

	_, err := c.Caption(context.Background(), "img://1")
	var rerr *domain.RequestError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, domain.RequestTimeout, rerr.Kind)
}

func TestNormalizationFailureIsNotTransport(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tags":["no caption key"]}`))
	})

	_, err := c.Caption(context.Background(), "img://1")
	var rerr *domain.RequestError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, domain.RequestInvalid, rerr.Kind)
	assert.Equal(t, "caption", rerr.Field)
	assert.False(t, rerr.Transient(), "validation errors must not be retried")
}

// TestLastRequestWins issues a second /caption call while the first is
// still pending. Only the second response may be applied; the first is
// discarded regardless of completion order.
func TestLastRequestWins(t *testing.T) {
	release := make(chan struct{})
	var hits atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			<-release
			w.Write([]byte(`{"caption":"stale"}`))
			return
		}
		w.Write([]byte(`{"caption":"fresh"}`))
	}, WithMaxAttempts(1))

	firstDone := make(chan error, 1)
	go func() {
		_, err := c.Caption(context.Background(), "img://old")
		firstDone <- err
	}()

	// Wait for the first request to reach the server before superseding it.
	require.Eventually(t, func() bool { return hits.Load() == 1 }, time.Second, time.Millisecond)

	caption, err := c.Caption(context.Background(), "img://new")
	require.NoError(t, err)
	assert.Equal(t, "fresh", caption.Caption)

	close(release)
	var rerr *domain.RequestError
	require.ErrorAs(t, <-firstDone, &rerr)
	assert.Equal(t, domain.RequestSuperseded, rerr.Kind, "stale response must be discarded")
}

// TestEndpointsAreIndependent verifies a pending call on one endpoint is
// not cancelled by a call to a different endpoint.
func TestEndpointsAreIndependent(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/caption":
			<-release
			w.Write([]byte(`{"caption":"slow but valid"}`))
		case "/scan":
			w.Write([]byte(`{"recipes":[{"title":"Omelette"}]}`))
		}
	}, WithMaxAttempts(1))

	captionDone := make(chan error, 1)
	go func() {
		_, err := c.Caption(context.Background(), "img://1")
		captionDone <- err
	}()

	suggestions, err := c.Scan(context.Background(), "img://fridge")
	require.NoError(t, err)
	require.Len(t, suggestions, 1)

	close(release)
	require.NoError(t, <-captionDone)
}

func TestCancelledContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.Write([]byte(`{}`))
	}, WithMaxAttempts(1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Extract(ctx, "https://example.com")
	var rerr *domain.RequestError
	require.ErrorAs(t, err, &rerr)
	assert.True(t, errors.Is(rerr.Err, context.Canceled) || rerr.Kind == domain.RequestNetworkError)
}
